package insightcache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/astro-insight/internal/domain/insight"
	"github.com/yanqian/astro-insight/pkg/util"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache keeps serialized insights in process memory. Entries are only
// evicted when a read finds them expired.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     util.Clock
}

// Option customises a MemoryCache.
type Option func(*MemoryCache)

// WithClock overrides the time source used for expiry.
func WithClock(clock util.Clock) Option {
	return func(c *MemoryCache) {
		if clock != nil {
			c.now = clock
		}
	}
}

// NewMemoryCache constructs a cache backed by process memory.
func NewMemoryCache(opts ...Option) *MemoryCache {
	c := &MemoryCache{
		entries: make(map[string]entry),
		now:     util.NowUTC,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get implements insight.Cache.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	record, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if c.now().After(record.expiresAt) {
		c.mu.Lock()
		// a concurrent Set may have refreshed the entry
		if current, still := c.entries[key]; still && c.now().After(current.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	return append([]byte(nil), record.value...), true, nil
}

// Set stores value until now+ttl, replacing any existing entry.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		value:     append([]byte(nil), value...),
		expiresAt: c.now().Add(ttl),
	}
	return nil
}

// Len reports the number of stored entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ insight.Cache = (*MemoryCache)(nil)

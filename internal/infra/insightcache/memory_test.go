package insightcache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestCache() (*MemoryCache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	return NewMemoryCache(WithClock(clock.Now)), clock
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "ritika_1995-08-20_en", []byte(`{"zodiac":"Leo"}`), time.Hour))

	got, ok, err := cache.Get(ctx, "ritika_1995-08-20_en")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`{"zodiac":"Leo"}`), got)
}

func TestMemoryCacheMissWhenNeverSet(t *testing.T) {
	cache, _ := newTestCache()
	got, ok, err := cache.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	cache, clock := newTestCache()
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "k", []byte("v"), 10*time.Second))

	clock.Advance(10 * time.Second)
	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok, "entry is valid while now equals expiry")
	require.Equal(t, 1, cache.Len())

	clock.Advance(time.Nanosecond)
	_, ok, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0, cache.Len(), "expired entry is deleted on read")
}

func TestMemoryCacheExpiredEntriesStayUntilRead(t *testing.T) {
	cache, clock := newTestCache()
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "a", []byte("1"), time.Second))
	require.NoError(t, cache.Set(ctx, "b", []byte("2"), time.Second))

	clock.Advance(time.Minute)
	require.Equal(t, 2, cache.Len())

	_, ok, _ := cache.Get(ctx, "a")
	require.False(t, ok)
	require.Equal(t, 1, cache.Len())
}

func TestMemoryCacheOverwrite(t *testing.T) {
	cache, clock := newTestCache()
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "k", []byte("old"), time.Second))
	require.NoError(t, cache.Set(ctx, "k", []byte("new"), time.Hour))

	clock.Advance(time.Minute)
	got, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("new"), got)
}

func TestMemoryCacheCopiesValues(t *testing.T) {
	cache, _ := newTestCache()
	ctx := context.Background()
	value := []byte("abc")
	require.NoError(t, cache.Set(ctx, "k", value, time.Hour))
	value[0] = 'z'

	got, _, _ := cache.Get(ctx, "k")
	require.Equal(t, []byte("abc"), got)
	got[1] = 'z'

	again, _, _ := cache.Get(ctx, "k")
	require.Equal(t, []byte("abc"), again)
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	cache, _ := newTestCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = cache.Set(ctx, "shared", []byte("v"), time.Hour)
			_, _, _ = cache.Get(ctx, "shared")
		}()
	}
	wg.Wait()
	require.Equal(t, 1, cache.Len())
}

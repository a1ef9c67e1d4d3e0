package metrics

import "sync/atomic"

// CacheStats captures how requests were served by the result cache.
type CacheStats struct {
	Hits         int64 `json:"hits"`
	Misses       int64 `json:"misses"`
	Computations int64 `json:"computations"`
}

// IsZero reports whether no request has been observed.
func (s CacheStats) IsZero() bool {
	return s.Hits == 0 && s.Misses == 0 && s.Computations == 0
}

// Recorder accumulates CacheStats from concurrent requests.
type Recorder struct {
	hits         atomic.Int64
	misses       atomic.Int64
	computations atomic.Int64
}

func (r *Recorder) Hit()     { r.hits.Add(1) }
func (r *Recorder) Miss()    { r.misses.Add(1) }
func (r *Recorder) Compute() { r.computations.Add(1) }

// Snapshot returns the current counters.
func (r *Recorder) Snapshot() CacheStats {
	return CacheStats{
		Hits:         r.hits.Load(),
		Misses:       r.misses.Load(),
		Computations: r.computations.Load(),
	}
}

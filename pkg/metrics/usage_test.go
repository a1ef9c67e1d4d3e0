package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecorderSnapshot(t *testing.T) {
	var rec Recorder
	require.True(t, rec.Snapshot().IsZero())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.Hit()
			rec.Miss()
		}()
	}
	wg.Wait()
	rec.Compute()

	require.Equal(t, CacheStats{Hits: 50, Misses: 50, Computations: 1}, rec.Snapshot())
}

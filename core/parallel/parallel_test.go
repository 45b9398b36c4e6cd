package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelizeCoversEveryItemOnce(t *testing.T) {
	for _, items := range []int{1, 7, 100, 1001} {
		hits := make([]int32, items)
		Parallelize(items, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			assert.EqualValues(t, 1, h, "items=%d index=%d", items, i)
		}
	}
}

func TestParallelizeZeroItems(t *testing.T) {
	called := false
	Parallelize(0, func(start, end int) { called = true })
	assert.False(t, called)
}

func TestParallelizeWorkersChunkCount(t *testing.T) {
	var mu sync.Mutex
	chunks := 0
	ParallelizeWorkers(10, 3, func(start, end int) {
		mu.Lock()
		chunks++
		mu.Unlock()
	})
	assert.Equal(t, 3, chunks)
}

func TestParallelizeWithThresholdRunsSequentiallyBelowThreshold(t *testing.T) {
	var calls []int
	ParallelizeWithThreshold(5, 10, 4, func(start, end int) {
		calls = append(calls, start, end)
	})
	assert.Equal(t, []int{0, 5}, calls)

	calls = nil
	ParallelizeWithThreshold(50, 10, 1, func(start, end int) {
		calls = append(calls, start, end)
	})
	assert.Equal(t, []int{0, 50}, calls)
}

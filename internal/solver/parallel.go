// internal/solver/parallel.go
//
// Fork-join evaluation of a guess pool.
//
// Each guess is scored independently against the immutable candidate
// set, so the pool is split across workers. Results land in a slice
// indexed by guess position and every reduction afterwards is a plain
// sequential scan, which keeps tie-breaking identical to sequential
// evaluation (first-encountered wins) no matter how the work was
// scheduled. The join completes before any reduction starts; there are
// no partial results.

package solver

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/mfriedel/wordle-solver/internal/core"
)

// parallelThreshold is the pool size below which the scheduling
// overhead outweighs the fan-out.
const parallelThreshold = 64

// evalPool computes score(guess) for every guess in the pool, preserving
// pool order in the returned slice.
func evalPool[T any](guessPool []core.Word, score func(core.Word) T) []T {
	results := make([]T, len(guessPool))
	if len(guessPool) < parallelThreshold {
		for i, g := range guessPool {
			results[i] = score(g)
		}
		return results
	}

	workers := runtime.NumCPU()
	if workers > len(guessPool) {
		workers = len(guessPool)
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= len(guessPool) {
					return
				}
				results[i] = score(guessPool[i])
			}
		}()
	}
	wg.Wait()
	return results
}

// EvalMetrics scores every guess in guessPool against candidates,
// in parallel for large pools. Results align with guessPool indices.
func EvalMetrics(guessPool, candidates []core.Word) []GuessMetrics {
	return evalPool(guessPool, func(g core.Word) GuessMetrics {
		return ComputeMetrics(g, candidates)
	})
}

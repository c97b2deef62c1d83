// Package utils holds small helpers shared by the engine's hot loops.
package utils

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// MultiThread runs f for every integer in [start, end), spread over a pool of goroutines, and
// returns once every index has been handled. It should be called sequentially, not from several
// goroutines at once; the per-neuron work inside a layer has no cross-index dependencies, which
// is what makes this safe there.
//
// 'opsPerThread' is the number of consecutive indexes a goroutine claims at a time;
// 'threadsPerCPU' scales the pool size. Both must be >= 1.
func MultiThread(start, end int, f func(int), opsPerThread, threadsPerCPU int) {
	if end <= start {
		return
	}

	numThreads := runtime.NumCPU() * threadsPerCPU
	if span := end - start; numThreads > span {
		numThreads = span
	}

	next := int64(start)

	var wg sync.WaitGroup
	wg.Add(numThreads)

	for t := 0; t < numThreads; t++ {
		go func() {
			defer wg.Done()

			for {
				i := int(atomic.AddInt64(&next, int64(opsPerThread))) - opsPerThread
				if i >= end {
					return
				}

				e := i + opsPerThread
				if e > end {
					e = end
				}

				for ; i < e; i++ {
					f(i)
				}
			}
		}()
	}

	wg.Wait()
}

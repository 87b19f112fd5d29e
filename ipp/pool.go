package ipp

import "sync"

// OnJobDone is invoked once per successfully completed projection job.
// Under nCores > 1, invocations are serialized by the pool's mutex but
// their order relative to the input coordinate order is unspecified.
type OnJobDone func(refCoord Coords, projection CoordProjection)

// runProjectCoord is the per-job unit of work the pool fans out: the
// closure form lets the pool stay ignorant of Store's internals.
type runProjectCoord func(refCoord Coords) (CoordProjection, error)

// projectCoordsPool is the worker pool. With nCores<=1 it runs every
// job sequentially on the calling goroutine. With nCores>1 it spawns
// nCores goroutines pulling from a shared LIFO job stack under one mutex,
// which also covers the onJobDone call so callbacks never overlap. A job
// failure stops only the worker that hit it from taking further jobs;
// every other worker keeps draining the stack to completion, and the
// first recorded failure is returned after every goroutine has exited.
func projectCoordsPool(jobs []Coords, nCores int, run runProjectCoord, onJobDone OnJobDone) error {
	if nCores <= 1 {
		for _, c := range jobs {
			projection, err := run(c)
			if err != nil {
				return &WorkerFailureError{RefCoord: c, Inner: err}
			}
			onJobDone(c, projection)
		}
		return nil
	}

	var mu sync.Mutex
	stack := append([]Coords(nil), jobs...)
	var firstErr error

	worker := func() {
		for {
			mu.Lock()
			if len(stack) == 0 {
				mu.Unlock()
				return
			}
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			mu.Unlock()

			projection, err := run(c)

			mu.Lock()
			if err != nil {
				if firstErr == nil {
					firstErr = &WorkerFailureError{RefCoord: c, Inner: err}
				}
				mu.Unlock()
				return
			}
			onJobDone(c, projection)
			mu.Unlock()
		}
	}

	var wg sync.WaitGroup
	wg.Add(nCores)
	for i := 0; i < nCores; i++ {
		go func() {
			defer wg.Done()
			worker()
		}()
	}
	wg.Wait()

	return firstErr
}

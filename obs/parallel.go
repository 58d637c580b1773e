package obs

import (
	"runtime"
)

// eachQuery runs f over n independent query indices on a fixed pool of
// workers. Every integral is computed whole by a single worker, so
// summation order never depends on the worker count. The first error
// any worker hits is returned.
func eachQuery(n int, f func(i int) error) error {
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}

	errs := make([]error, workers)
	out := make(chan int, workers)
	for id := 0; id < workers; id++ {
		go func(id int) {
			for i := id; i < n; i += workers {
				if err := f(i); err != nil {
					errs[id] = err
					break
				}
			}
			out <- id
		}(id)
	}
	for i := 0; i < workers; i++ {
		<-out
	}

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

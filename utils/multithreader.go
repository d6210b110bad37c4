// Package utils provides the worker pool that the network uses to spread the per-neuron work of a
// single layer across goroutines.
package utils

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
	"github.com/pkg/errors"
)

// DefaultWorkers returns the number of goroutines a pool should use when none is specified: the
// number of logical cores reported by the CPU, or runtime.NumCPU() if that can't be detected.
func DefaultWorkers() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}

	return runtime.NumCPU()
}

// PanicError is returned by MultiThread when 'f' panics for some index. Value is the value that
// was recovered.
type PanicError struct {
	Index int
	Value interface{}
}

func (err PanicError) Error() string {
	return fmt.Sprintf("task %d panicked: %v", err.Index, err.Value)
}

// Multithreads an operation on a range of integers, returning once every index has been handled.
//
// should be run sequentially, not in a separate thread
//
// the range includes 'start' and excludes 'end'
//  - MultiThread assumes that end ≥ start
// 'f' is the function that should be run for each value in the range
// 'opsPerThread' is the number of operations that each goroutine will handle before requesting another set
// 'threads' is the number of goroutines to use. Values < 1 are replaced by DefaultWorkers()
//
// If 'f' returns an error or panics for any index, no further sets are handed out and the first
// error (in order of occurrence) is returned after all running goroutines have stopped. A panic is
// returned as type PanicError.
func MultiThread(start, end int, f func(int) error, opsPerThread, threads int) error {
	if end <= start {
		return nil
	}

	if opsPerThread < 1 {
		opsPerThread = 1
	}

	if threads < 1 {
		threads = DefaultWorkers()
	}

	// no need for more goroutines than there are sets of work
	if sets := (end - start + opsPerThread - 1) / opsPerThread; threads > sets {
		threads = sets
	}

	index := start
	var firstErr error
	var indexMux sync.Mutex

	fail := func(err error) {
		indexMux.Lock()
		if firstErr == nil {
			firstErr = err
		}
		indexMux.Unlock()
	}

	run := func(i int) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = PanicError{i, r}
			}
		}()

		return f(i)
	}

	// a single goroutine may as well be this one
	if threads == 1 {
		for i := start; i < end; i++ {
			if err := run(i); err != nil {
				return errors.Wrapf(err, "index %d", i)
			}
		}

		return nil
	}

	var wg sync.WaitGroup

	wg.Add(threads)
	for thread := 0; thread < threads; thread++ {
		go func() {
			defer wg.Done()

			for {
				indexMux.Lock()
				if index >= end || firstErr != nil {
					indexMux.Unlock()
					return
				}

				i := index
				index += opsPerThread
				indexMux.Unlock()

				e := i + opsPerThread
				if e > end {
					e = end
				}

				for ; i < e; i++ {
					if err := run(i); err != nil {
						fail(errors.Wrapf(err, "index %d", i))
						return
					}
				}
			}
		}()
	}

	wg.Wait()

	return firstErr
}

// Package workerpool runs a function over a list of items with bounded concurrency.
package workerpool

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrPanic wraps a panic raised by a process function.
var ErrPanic = errors.New("worker panic")

// ProcessAll calls process once for every item, even after ctx is done, so callers
// can rely on per-item cleanup inside process. Failures do not stop other items;
// they are joined into the returned error.
func ProcessAll[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) error {
	if workerCount < 1 {
		workerCount = 1
	}

	tasks := make(chan T)
	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if err := safeCall(ctx, item, process); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
			}
		}()
	}

	for _, item := range items {
		tasks <- item
	}
	close(tasks)
	wg.Wait()

	return errors.Join(errs...)
}

func safeCall[T any](ctx context.Context, item T, process func(context.Context, T) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return process(ctx, item)
}

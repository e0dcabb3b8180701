// Package asyncx holds the small concurrency helpers the service layer
// needs for fan-out work with first-class context support.
package asyncx

import (
	"context"
	"sync"
)

// Result holds the outcome of a single settled async operation.
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the result carries no error.
func (r Result[T]) OK() bool { return r.Err == nil }

// AllSettled runs all fns concurrently and waits for every one to finish.
// It never short-circuits: it always returns one Result per fn, in the
// same order as the input functions, so callers can inspect individual
// outcomes.
func AllSettled[T any](ctx context.Context, fns ...func(context.Context) (T, error)) []Result[T] {
	results := make([]Result[T], len(fns))

	var wg sync.WaitGroup
	wg.Add(len(fns))

	for i, fn := range fns {
		go func() {
			defer wg.Done()
			v, err := fn(ctx)
			results[i] = Result[T]{Value: v, Err: err}
		}()
	}
	wg.Wait()

	return results
}

// Do fires fn in a goroutine and forgets it (fire-and-forget).
func Do(fn func()) {
	go fn()
}

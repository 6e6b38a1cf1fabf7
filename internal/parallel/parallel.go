// Package parallel provides small errgroup-based helpers for running a
// fixed, known number of independent subtasks concurrently and collecting
// their results, the same concurrency shape orchestration.ExecuteDivisions
// and ExecuteMultiplications use for racing whole strategies, but scaled
// down to the two halves of a single FFT-based multiplication's transform
// step.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ExecuteTwo runs a and b concurrently and waits for both. If either
// returns a non-nil error, ExecuteTwo returns the first one observed;
// the other goroutine is still allowed to run to completion since neither
// closure is expected to honor cancellation mid-transform.
func ExecuteTwo(ctx context.Context, a, b func() error) error {
	g, _ := errgroup.WithContext(ctx)
	g.Go(a)
	g.Go(b)
	return g.Wait()
}

// ExecuteN runs every fn concurrently and waits for all of them, returning
// the first error encountered (if any). It is the variable-arity sibling
// of ExecuteTwo, used when the number of independent subtasks isn't fixed
// at two (for instance, transforming more than two polynomials for a
// multi-operand FFT batch).
func ExecuteN(ctx context.Context, fns ...func() error) error {
	g, _ := errgroup.WithContext(ctx)
	for _, fn := range fns {
		g.Go(fn)
	}
	return g.Wait()
}

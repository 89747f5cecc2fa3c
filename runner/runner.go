package runner

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Runnable represents a component that can be run with a context.
type Runnable interface {
	Run(ctx context.Context) error
}

// RunnableFunc adapts a plain function to a Runnable.
type RunnableFunc func(ctx context.Context) error

func (f RunnableFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// RunAll runs all the provided runnables concurrently and waits for all of them to finish.
// At most limit runnables are in flight at the same time, a limit lower than 1 means no limit.
//
// This method is blocking and returns the first error returned by a runnable, the context
// given to the other runnables is cancelled as soon as one fails.
func RunAll(parentCtx context.Context, limit int, runnables ...Runnable) error {
	group, ctx := errgroup.WithContext(parentCtx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for _, runnable := range runnables {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return runnable.Run(ctx)
		})
	}

	return group.Wait()
}

// Package parallel runs indexed jobs on a bounded number of goroutines.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool bounds how many jobs run at once.
//
// A Pool holds no goroutines between calls; each ForEach starts its own
// group and waits for it. Pool is safe for concurrent use.
type Pool struct {
	// workers is the maximum number of concurrent jobs.
	workers int
}

// NewPool creates a pool running at most workers jobs at a time.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Workers returns the concurrency limit.
func (p *Pool) Workers() int {
	return p.workers
}

// ForEach calls fn for every index in [0, n) and waits for all calls to
// return. The first error cancels the context passed to the remaining calls
// and is returned; jobs not yet started are skipped.
//
// Each call owns its index, so fn may write to slot i of a shared slice
// without locking.
func (p *Pool) ForEach(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Map applies fn to every element of in and returns the results in input
// order.
func Map[In, Out any](ctx context.Context, p *Pool, in []In, fn func(ctx context.Context, v In) (Out, error)) ([]Out, error) {
	out := make([]Out, len(in))
	err := p.ForEach(ctx, len(in), func(ctx context.Context, i int) error {
		v, err := fn(ctx, in[i])
		if err != nil {
			return err
		}
		out[i] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Package parallel runs independent work over slices concurrently.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map maps a list of ~[]T to []R using a provided map function f.
// It does this in parallel with at most workers calls to f in flight.
// If workers <= 0, the number in flight is not limited.
// result[i] is always f(i, list[i]), no matter which call finishes first.
//
// f receives a context that is canceled as soon as any call to f returns
// an error, or ctx is canceled. Map stops starting new calls at that
// point, waits for the calls in flight to return, then returns the first
// error. If ctx is canceled, that error is ctx.Err().
func Map[S ~[]T, T, R any](
	ctx context.Context, list S, f func(context.Context, int, T) (R, error), workers int,
) ([]R, error) {
	result := make([]R, len(list))

	eg, egctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}

	for i, v := range list {
		if egctx.Err() != nil {
			break
		}

		eg.Go(func() error {
			r, err := f(egctx, i, v)
			if err != nil {
				return err
			}
			result[i] = r
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// canceled before anything failed
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

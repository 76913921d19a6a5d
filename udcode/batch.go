package udcode

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CheckFunc decides one code. ctx is cancelled as soon as another code
// in the same batch fails.
type CheckFunc func(ctx context.Context, code *Code) (Verdict, error)

// Batch applies check to every code concurrently, at most limit at a time
// (limit <= 0 means GOMAXPROCS). Results are returned in input order.
// The first failure cancels the remaining work and is returned with the
// index of the offending code.
func Batch(ctx context.Context, codes []*Code, check CheckFunc, limit int) ([]Verdict, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	out := make([]Verdict, len(codes))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, code := range codes {
		i, code := i, code
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			v, err := check(gCtx, code)
			if err != nil {
				return fmt.Errorf("udcode: code %d: %w", i, err)
			}
			out[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// CheckAll runs Check on every code concurrently with the given options.
// Each run observes the batch context, so cancelling ctx or a failure in
// another run stops runs in flight.
func CheckAll(ctx context.Context, codes []*Code, opts ...Option) ([]Verdict, error) {
	return Batch(ctx, codes, func(runCtx context.Context, code *Code) (Verdict, error) {
		runOpts := append(append([]Option(nil), opts...), WithContext(runCtx))

		return Check(code, runOpts...)
	}, 0)
}

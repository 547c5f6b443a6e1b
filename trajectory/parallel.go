// SPDX-License-Identifier: MIT

package trajectory

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/worldline/spacetime"
	"github.com/katalvlaran/worldline/units"
)

// minChunk is the smallest block of samples handed to one worker.
const minChunk = 1024

// GenerateParallel returns exactly what Generate returns for the same
// arguments, computing contiguous blocks of samples on up to workers
// goroutines (workers ≤ 0 means GOMAXPROCS). Each worker writes only its own
// block of the preallocated result, so output order is by index, i.e. by τ.
//
// ctx cancellation stops the remaining blocks and returns ctx.Err().
func GenerateParallel(ctx context.Context, x0, t0, v0, alpha, tauF float64, n, workers int, opts ...units.Option) ([]spacetime.Point, error) {
	const op = "trajectory.GenerateParallel"
	o := units.NewOptions(opts...)
	s, n, err := prepareFixedCount(op, x0, t0, v0, alpha, tauF, n, auto, o)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	out := make([]spacetime.Point, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fillRange(s, out, lo, hi, tauF)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

package pareto

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/dapfront/dap"
	"github.com/katalvlaran/dapfront/matrix"
)

// Samples solves k = 0..n on s and returns the n+1 scored points in k
// order. The context is checked between k values; a cancelled sweep
// returns the context error and no points.
func Samples(ctx context.Context, s *dap.Solver, opts *Options) ([]Point, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	n := s.N()
	points := make([]Point, 0, n+1)
	for k := 0; k <= n; k++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pareto: sweep stopped at k=%d: %w", k, err)
		}
		sol, err := s.Solve(k)
		if err != nil {
			return nil, err
		}
		if o.Logger != nil {
			o.Logger.LogAttrs(ctx, slog.LevelDebug, "sweep step",
				slog.Int("n", n),
				slog.Int("k", k),
				slog.Float64("cost", sol.Cost),
				slog.Float64("diversity", sol.Diversity))
		}
		points = append(points, Point{Cost: sol.Cost, Diversity: sol.Diversity})
	}

	return points, nil
}

// Sweep validates (G, D), runs Samples and returns the dominating set of
// the n+1 points.
func Sweep(ctx context.Context, g, d matrix.Matrix, opts *Options) ([]Point, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	s, err := dap.NewSolver(g, d, &o.Solver)
	if err != nil {
		return nil, err
	}
	points, err := Samples(ctx, s, &o)
	if err != nil {
		return nil, err
	}

	return DominatingSet(points, &o), nil
}

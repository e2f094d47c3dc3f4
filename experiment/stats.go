// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/dapfront/dap"
	"github.com/katalvlaran/dapfront/dataset"
	"github.com/katalvlaran/dapfront/pareto"
	"github.com/katalvlaran/dapfront/store"
)

// Stats files written below store.StatsDir.
const (
	ParetoFractionFile = "pareto_fraction"
	PointsApproxFile   = "points_approximation"
	PointsExactFile    = "points_exact"
)

// Stats holds per-(strategy, size) averages; rows follow Strategies and
// columns follow Sizes.
type Stats struct {
	Strategies []dataset.Strategy
	Sizes      []int

	// ParetoFraction is the mean of area(approx)/area(exact) as computed
	// by Compare.
	ParetoFraction [][]float64

	// PointsApprox and PointsExact are the mean front sizes.
	PointsApprox [][]float64
	PointsExact  [][]float64
}

// Compare returns area(approx)/area(exact) for two fronts oriented as in
// opts. Both fronts are mapped onto the maximize/maximize axes with
// pareto.Orient and measured from the worst corner of the instance: the
// minimum of a maximized coordinate, the negated maximum of a minimized one.
// A zero exact area yields 1 when the approximate area is zero too.
func Compare(s *dap.Solver, approx, exact []pareto.Point, opts *pareto.Options) (ratio float64, err error) {
	o := pareto.DefaultOptions()
	if opts != nil {
		o = *opts
	}
	cx, err := corner(o.Cost, s.MinimumCost, s.MaximumCost)
	if err != nil {
		return 0, err
	}
	cy, err := corner(o.Diversity, s.MinimumDiversity, s.MaximumDiversity)
	if err != nil {
		return 0, err
	}
	a, err := pareto.SetArea(pareto.Orient(approx, &o), cx, cy)
	if err != nil {
		return 0, err
	}
	e, err := pareto.SetArea(pareto.Orient(exact, &o), cx, cy)
	if err != nil {
		return 0, err
	}
	if e == 0 {
		if a == 0 {
			return 1, nil
		}
		return 0, fmt.Errorf("experiment: approx area %g over zero exact area: %w", a, ErrDegenerate)
	}

	return a / e, nil
}

// corner is the worst value of one coordinate on the maximization axis.
func corner(dir pareto.Direction, lower, upper func() (float64, error)) (float64, error) {
	if dir == pareto.Minimize {
		v, err := upper()
		return -v, err
	}

	return lower()
}

// Stats reads the stored approximate and exact fronts of count instances per
// (strategy, size), averages them and writes the three tables.
func (r *Runner) Stats(ctx context.Context, sizes []int, strategies []dataset.Strategy, count int) (*Stats, error) {
	out := &Stats{
		Strategies:     strategies,
		Sizes:          sizes,
		ParetoFraction: make([][]float64, len(strategies)),
		PointsApprox:   make([][]float64, len(strategies)),
		PointsExact:    make([][]float64, len(strategies)),
	}
	log := r.logger()

	for si, s := range strategies {
		out.ParetoFraction[si] = make([]float64, len(sizes))
		out.PointsApprox[si] = make([]float64, len(sizes))
		out.PointsExact[si] = make([]float64, len(sizes))

		for ni, n := range sizes {
			fracs := make([]float64, 0, count)
			na := make([]float64, 0, count)
			ne := make([]float64, 0, count)
			for i := 0; i < count; i++ {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				name := dataset.Name(s, n, i)
				frac, a, e, err := r.compareOne(name)
				if err != nil {
					return nil, fmt.Errorf("experiment: stats %s: %w", name, err)
				}
				fracs = append(fracs, frac)
				na = append(na, float64(a))
				ne = append(ne, float64(e))
			}
			out.ParetoFraction[si][ni] = stat.Mean(fracs, nil)
			out.PointsApprox[si][ni] = stat.Mean(na, nil)
			out.PointsExact[si][ni] = stat.Mean(ne, nil)
			log.Info("stats",
				"strategy", string(s),
				"size", n,
				"fraction", out.ParetoFraction[si][ni],
				"points_approx", out.PointsApprox[si][ni],
				"points_exact", out.PointsExact[si][ni])
		}
	}

	tables := []struct {
		file  string
		table [][]float64
	}{
		{ParetoFractionFile, out.ParetoFraction},
		{PointsApproxFile, out.PointsApprox},
		{PointsExactFile, out.PointsExact},
	}
	for _, t := range tables {
		if err := r.Store.WriteArray(store.StatsDir+"/"+t.file, t.table); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (r *Runner) compareOne(name string) (float64, int, int, error) {
	approx, err := r.Store.ReadPoints(approxPath(name))
	if err != nil {
		return 0, 0, 0, err
	}
	exact, err := r.Store.ReadPoints(exactPath(name))
	if err != nil {
		return 0, 0, 0, err
	}
	in, err := dataset.Load(r.Instances, name)
	if err != nil {
		return 0, 0, 0, err
	}
	g, d, err := in.Matrices()
	if err != nil {
		return 0, 0, 0, err
	}
	solver, err := dap.NewSolver(g, d, &r.Options.Solver)
	if err != nil {
		return 0, 0, 0, err
	}
	frac, err := Compare(solver, approx, exact, &r.Options)
	if err != nil {
		return 0, 0, 0, err
	}

	return frac, len(approx), len(exact), nil
}

// SPDX-License-Identifier: MIT

package dap

import (
	"fmt"

	"github.com/katalvlaran/dapfront/flow"
	"github.com/katalvlaran/dapfront/matching"
	"github.com/katalvlaran/dapfront/matrix"
)

// MinimumCost returns the smallest Σ x[i][j]·G[i][j] over all assignments
// with every row and column summing to 2, ignoring diversity. It bounds the
// cost axis of the frontier from below.
func (s *Solver) MinimumCost() (float64, error) {
	return s.costBound(-1, "minimum cost")
}

// MaximumCost is the largest such cost; it bounds the cost axis from above.
func (s *Solver) MaximumCost() (float64, error) {
	return s.costBound(1, "maximum cost")
}

// MinimumDiversity returns the weight, under D, of a minimum-weight perfect
// 2-matching (cardinality n). It bounds the diversity axis from below.
func (s *Solver) MinimumDiversity() (float64, error) {
	return s.diversityBound(-1, "minimum diversity")
}

// MaximumDiversity returns the weight of a maximum-weight perfect
// 2-matching, the upper bound of the diversity axis.
func (s *Solver) MaximumDiversity() (float64, error) {
	return s.diversityBound(1, "maximum diversity")
}

// costBound maximizes sign·G over the doubly-2 transportation polytope and
// scores the plan on the float G.
func (s *Solver) costBound(sign int64, what string) (float64, error) {
	w := make([][]int64, s.n)
	two := make([]int64, s.n)
	for i := range w {
		w[i] = make([]int64, s.n)
		for j, v := range s.gi[i] {
			w[i][j] = sign * v
		}
		two[i] = SlotsPerItem
	}

	plan, err := flow.Transportation(w, two, two, nil)
	if err != nil {
		return 0, fmt.Errorf("dap: %s: %w: %w", what, ErrInvariant, err)
	}

	var cost float64
	for i := range plan.Flow {
		for j, f := range plan.Flow[i] {
			cost += float64(f) * s.g[i][j]
		}
	}

	return cost, nil
}

func (s *Solver) diversityBound(sign int64, what string) (float64, error) {
	w := make([][]int64, s.n)
	for i := range w {
		w[i] = make([]int64, s.n)
		for j, v := range s.di[i] {
			w[i][j] = sign * v
		}
	}

	tm, err := matching.KCardTwoMatching(w, s.n)
	if err != nil {
		return 0, fmt.Errorf("dap: %s: %w: %w", what, ErrInvariant, err)
	}

	return tm.Weight(s.d), nil
}

// MinimumCost is NewSolver followed by Solver.MinimumCost.
func MinimumCost(g, d matrix.Matrix, opts *Options) (float64, error) {
	s, err := NewSolver(g, d, opts)
	if err != nil {
		return 0, err
	}

	return s.MinimumCost()
}

// MinimumDiversity is NewSolver followed by Solver.MinimumDiversity.
func MinimumDiversity(g, d matrix.Matrix, opts *Options) (float64, error) {
	s, err := NewSolver(g, d, opts)
	if err != nil {
		return 0, err
	}

	return s.MinimumDiversity()
}

// SPDX-License-Identifier: MIT

package dap

import (
	"fmt"

	"github.com/katalvlaran/dapfront/flow"
	"github.com/katalvlaran/dapfront/matching"
	"github.com/katalvlaran/dapfront/matrix"
)

// Solver holds one validated DAP instance. G and D are copied on
// construction and only read afterwards, so a Solver may be reused for every
// k of a sweep.
type Solver struct {
	n    int
	g, d [][]float64 // input weights, used for scoring
	gi   [][]int64   // scaled integer G, used as flow weights
	di   [][]int64   // scaled integer D, used as matching weights
}

// NewSolver validates G (n×n, finite) and D (n×n, finite, symmetric) and
// prepares their integer network weights.
//
// Errors: ErrBadInput wrapping the matrix sentinel that failed.
// Complexity: O(n²).
func NewSolver(g, d matrix.Matrix, opts *Options) (*Solver, error) {
	o := DefaultOptions()
	if opts != nil && opts.Scale > 0 {
		o.Scale = opts.Scale
	}

	if err := matrix.ValidateSquare(g); err != nil {
		return nil, fmt.Errorf("dap: G: %w: %w", ErrBadInput, err)
	}
	if err := matrix.ValidateSymmetric(d, DefaultSymmetryTol); err != nil {
		return nil, fmt.Errorf("dap: D: %w: %w", ErrBadInput, err)
	}
	if err := matrix.ValidateSameShape(g, d); err != nil {
		return nil, fmt.Errorf("dap: G vs D: %w: %w", ErrBadInput, err)
	}

	s := &Solver{n: g.Rows()}
	var err error
	if s.g, err = matrix.ToRows(g); err != nil {
		return nil, fmt.Errorf("dap: G: %w: %w", ErrBadInput, err)
	}
	if s.d, err = matrix.ToRows(d); err != nil {
		return nil, fmt.Errorf("dap: D: %w: %w", ErrBadInput, err)
	}
	if s.gi, err = matrix.ScaleToInt64(g, o.Scale); err != nil {
		return nil, fmt.Errorf("dap: G: %w: %w", ErrBadInput, err)
	}
	if s.di, err = matrix.ScaleToInt64(d, o.Scale); err != nil {
		return nil, fmt.Errorf("dap: D: %w: %w", ErrBadInput, err)
	}

	return s, nil
}

// N returns the number of items.
func (s *Solver) N() int { return s.n }

// Solve is NewSolver followed by Solver.Solve.
func Solve(g, d matrix.Matrix, k int, opts *Options) (*Solution, error) {
	s, err := NewSolver(g, d, opts)
	if err != nil {
		return nil, err
	}

	return s.Solve(k)
}

// Solve builds a full assignment whose 2-factor contains the k pair slots
// of a maximum-diversity k-cardinality 2-matching, then scores it.
//
// Errors: ErrBadInput (k outside [0,n]); ErrInvariant wrapping the failing
// stage, always annotated with k and n.
func (s *Solver) Solve(k int) (*Solution, error) {
	if k < 0 || k > s.n {
		return nil, fmt.Errorf("dap: k=%d outside [0,%d]: %w", k, s.n, ErrBadInput)
	}
	fail := func(stage string, err error) error {
		return fmt.Errorf("dap: %s (k=%d n=%d): %w: %w", stage, k, s.n, ErrInvariant, err)
	}

	// Stage 1: diversity structure.
	tm, err := matching.KCardTwoMatching(s.di, k)
	if err != nil {
		return nil, fail("two-matching", err)
	}

	a := newAssignment(s.n)
	assigned := make([]bool, s.n)
	leafDemand := make([]int64, s.n)
	for j := range leafDemand {
		leafDemand[j] = SlotsPerItem
	}

	// Stage 2: centers onto the fixed pairs.
	if err = s.assignPairs(tm, a, assigned, leafDemand); err != nil {
		return nil, fail("pair transportation", err)
	}

	// Stage 3: leftover centers onto leftover leaf slots.
	if err = s.completeLeaves(a, assigned, leafDemand); err != nil {
		return nil, fail("leaf transportation", err)
	}

	if err = a.validate(); err != nil {
		return nil, fail("assignment", err)
	}

	cost, diversity, err := Score(a, s.g, s.d)
	if err != nil {
		return nil, fail("score", err)
	}

	return &Solution{K: k, Assignment: a, Cost: cost, Diversity: diversity}, nil
}

// assignPairs solves centers (supply 1) → pairs (demand = multiplicity)
// with weight G[i][u]+G[i][v] and records every shipped unit in a.
func (s *Solver) assignPairs(tm *matching.TwoMatching, a *Assignment, assigned []bool, leafDemand []int64) error {
	pairs := tm.Pairs()
	if len(pairs) == 0 {
		return nil
	}

	h := make([][]int64, s.n)
	supplies := make([]int64, s.n)
	demands := make([]int64, len(pairs))
	for i := 0; i < s.n; i++ {
		supplies[i] = 1
		h[i] = make([]int64, len(pairs))
		for c, p := range pairs {
			h[i][c] = s.gi[i][p.U] + s.gi[i][p.V]
		}
	}
	for c, p := range pairs {
		demands[c] = int64(tm.Multiplicity(p.U, p.V))
	}

	plan, err := flow.Transportation(h, supplies, demands, nil)
	if err != nil {
		return err
	}
	if plan.Volume != int64(tm.Size()) {
		return fmt.Errorf("dap: shipped %d of %d pair slots", plan.Volume, tm.Size())
	}

	for i := 0; i < s.n; i++ {
		for c, p := range pairs {
			f := plan.Flow[i][c]
			if f == 0 {
				continue
			}
			a.x[i][p.U] += int(f)
			a.x[i][p.V] += int(f)
			leafDemand[p.U] -= f
			leafDemand[p.V] -= f
			assigned[i] = true
		}
	}

	return nil
}

// completeLeaves solves the unassigned centers (supply 2) → leaves with
// remaining slots (demand 2 − used) directly on G.
func (s *Solver) completeLeaves(a *Assignment, assigned []bool, leafDemand []int64) error {
	supplies := make([]int64, s.n)
	var want int64
	for i := 0; i < s.n; i++ {
		if !assigned[i] {
			supplies[i] = SlotsPerItem
			want += SlotsPerItem
		}
	}
	if want == 0 {
		return nil
	}
	for j, dmd := range leafDemand {
		if dmd < 0 {
			return fmt.Errorf("dap: leaf %d over-used by %d", j, -dmd)
		}
	}

	plan, err := flow.Transportation(s.gi, supplies, leafDemand, nil)
	if err != nil {
		return err
	}
	if plan.Volume != want {
		return fmt.Errorf("dap: shipped %d of %d leaf slots", plan.Volume, want)
	}

	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			a.x[i][j] += int(plan.Flow[i][j])
		}
	}

	return nil
}

// Score returns (Σ a[i][j]·g[i][j], Σ_i d[j][k]) where (j,k) are the leaves
// of center i. g and d must be n×n with n = a.N().
//
// Errors: ErrBadInput on shape mismatch, ErrInvariant if a row does not
// hold exactly two slots.
func Score(a *Assignment, g, d [][]float64) (cost, diversity float64, err error) {
	n := a.N()
	if len(g) != n || len(d) != n {
		return 0, 0, fmt.Errorf("dap: score %d×%d assignment: %w", n, n, ErrBadInput)
	}
	for i := 0; i < n; i++ {
		if len(g[i]) != n || len(d[i]) != n {
			return 0, 0, fmt.Errorf("dap: score row %d: %w", i, ErrBadInput)
		}
		for j := 0; j < n; j++ {
			cost += float64(a.x[i][j]) * g[i][j]
		}
		u, v, lerr := a.Leaves(i)
		if lerr != nil {
			return 0, 0, lerr
		}
		diversity += d[u][v]
	}

	return cost, diversity, nil
}

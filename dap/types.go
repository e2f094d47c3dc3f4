// SPDX-License-Identifier: MIT

package dap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dapfront/matrix"
)

var (
	// ErrBadInput reports a precondition violation (shape, NaN/Inf, asymmetric D,
	// k outside [0,n]); nothing has been solved when it is returned.
	ErrBadInput = errors.New("dap: bad input")

	// ErrInvariant reports that a sub-reduction produced a structure violating
	// its construction invariants (short flow volume, row or column sum != 2).
	// It signals a solver defect, not a caller error.
	ErrInvariant = errors.New("dap: invariant violated")
)

// SlotsPerItem is the number of leaf slots every center consumes and every
// leaf offers in a 2-factor.
const SlotsPerItem = 2

// DefaultSymmetryTol is the tolerance used when checking that D is symmetric.
const DefaultSymmetryTol = 1e-9

// Options configures the Solver.
//   - Scale: multiplier applied to G and D before rounding to integer network
//     weights (default 1, i.e. integer-valued inputs are used verbatim).
type Options struct {
	Scale int64
}

// DefaultOptions returns Options{Scale: 1}.
func DefaultOptions() Options {
	return Options{Scale: 1}
}

// Solution is the outcome of one Solve(k).
type Solution struct {
	// K is the cardinality of the forced diversity structure.
	K int

	// Assignment[i][j] is how many of center i's two slots use leaf j.
	Assignment *Assignment

	// Cost is Σ Assignment[i][j]·G[i][j].
	Cost float64

	// Diversity is Σ_i D[j][k] over the pair (j,k) assigned to center i.
	Diversity float64
}

// Assignment is an n×n multiplicity table: row i lists the (at most two)
// leaves center i is paired with. It is read-only once returned by Solve.
type Assignment struct {
	x [][]int
}

// newAssignment allocates an all-zero n×n assignment.
func newAssignment(n int) *Assignment {
	a := &Assignment{x: make([][]int, n)}
	for i := range a.x {
		a.x[i] = make([]int, n)
	}

	return a
}

// N returns the number of items.
func (a *Assignment) N() int { return len(a.x) }

// At returns the multiplicity of (center i, leaf j).
func (a *Assignment) At(i, j int) int { return a.x[i][j] }

// RowSum returns the number of slots assigned to center i.
func (a *Assignment) RowSum(i int) int {
	s := 0
	for _, v := range a.x[i] {
		s += v
	}

	return s
}

// ColSum returns the number of slots of leaf j in use.
func (a *Assignment) ColSum(j int) int {
	s := 0
	for i := range a.x {
		s += a.x[i][j]
	}

	return s
}

// Leaves returns the pair of leaves assigned to center i, expanded by
// multiplicity and in ascending order (j == k for a doubled leaf).
func (a *Assignment) Leaves(i int) (int, int, error) {
	r := make([]int, 0, SlotsPerItem)
	for j, m := range a.x[i] {
		for c := 0; c < m; c++ {
			r = append(r, j)
		}
	}
	if len(r) != SlotsPerItem {
		return 0, 0, fmt.Errorf("dap: center %d holds %d slots: %w", i, len(r), ErrInvariant)
	}

	return r[0], r[1], nil
}

// Matrix exports the table as a *matrix.Dense for persistence.
func (a *Assignment) Matrix() *matrix.Dense {
	m, _ := matrix.NewDense(a.N(), a.N()) // N() ≥ 1 for every solved instance
	for i := range a.x {
		for j, v := range a.x[i] {
			_ = m.Set(i, j, float64(v))
		}
	}

	return m
}

// validate checks the 2-factor invariants: every row and column sums to 2.
func (a *Assignment) validate() error {
	for i := range a.x {
		if s := a.RowSum(i); s != SlotsPerItem {
			return fmt.Errorf("dap: row %d sums to %d: %w", i, s, ErrInvariant)
		}
		if s := a.ColSum(i); s != SlotsPerItem {
			return fmt.Errorf("dap: column %d sums to %d: %w", i, s, ErrInvariant)
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dapfront/dap"
	"github.com/katalvlaran/dapfront/matrix"
)

var (
	// ErrUnknownStrategy is returned for a diversity strategy name that is not
	// one of Strategies().
	ErrUnknownStrategy = errors.New("dataset: unknown diversity strategy")

	// ErrBadSize is returned for n < 1 or a negative instance count.
	ErrBadSize = errors.New("dataset: bad instance size")

	// ErrMalformed is returned when a stored instance does not describe an
	// n×n pair of matrices.
	ErrMalformed = errors.New("dataset: malformed instance")
)

// Strategy names how D is drawn.
type Strategy string

const (
	Disjoint Strategy = "disjoint"
	Distance Strategy = "distance"
	Uniform  Strategy = "uniform"
	Random   Strategy = "random"
)

// Strategies lists every strategy in the canonical experiment order.
func Strategies() []Strategy {
	return []Strategy{Disjoint, Distance, Uniform, Random}
}

// ParseStrategy accepts a strategy name with or without the "_div" suffix.
func ParseStrategy(s string) (Strategy, error) {
	name := Strategy(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "_div"))
	for _, st := range Strategies() {
		if st == name {
			return st, nil
		}
	}

	return "", fmt.Errorf("dataset: %q: %w", s, ErrUnknownStrategy)
}

// Name returns the canonical instance name "<strategy>_div_<n>_<i>".
func Name(s Strategy, n, i int) string {
	return fmt.Sprintf("%s_div_%d_%d", s, n, i)
}

// Instance is one DAP input.
type Instance struct {
	Name     string      `yaml:"name"`
	Strategy Strategy    `yaml:"strategy,omitempty"`
	N        int         `yaml:"n"`
	G        [][]float64 `yaml:"g,flow"`
	D        [][]float64 `yaml:"d,flow"`
}

// Validate checks that G and D are n×n; D is checked for symmetry by
// Matrices.
func (in *Instance) Validate() error {
	if in.N < 1 {
		return fmt.Errorf("dataset: %s: n=%d: %w", in.Name, in.N, ErrMalformed)
	}
	if err := checkSquare(in.Name, "g", in.G, in.N); err != nil {
		return err
	}

	return checkSquare(in.Name, "d", in.D, in.N)
}

func checkSquare(name, label string, m [][]float64, n int) error {
	if len(m) != n {
		return fmt.Errorf("dataset: %s: %s has %d rows, want %d: %w", name, label, len(m), n, ErrMalformed)
	}
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("dataset: %s: %s row %d has %d entries, want %d: %w",
				name, label, i, len(row), n, ErrMalformed)
		}
	}

	return nil
}

// Matrices returns G and D as dense matrices after validating their shape,
// finiteness and the symmetry of D.
func (in *Instance) Matrices() (*matrix.Dense, *matrix.Dense, error) {
	if err := in.Validate(); err != nil {
		return nil, nil, err
	}
	g, err := matrix.NewDenseFrom(in.G)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: %s: g: %w: %w", in.Name, ErrMalformed, err)
	}
	d, err := matrix.NewDenseFrom(in.D)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: %s: d: %w: %w", in.Name, ErrMalformed, err)
	}
	if err = matrix.ValidateSymmetric(d, dap.DefaultSymmetryTol); err != nil {
		return nil, nil, fmt.Errorf("dataset: %s: d: %w: %w", in.Name, ErrMalformed, err)
	}

	return g, d, nil
}

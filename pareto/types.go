// SPDX-License-Identifier: MIT

package pareto

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/dapfront/dap"
	"github.com/katalvlaran/dapfront/matrix"
)

// ErrEmpty is returned by SetArea for an empty point set.
var ErrEmpty = errors.New("pareto: empty point set")

// ErrBadDirection is returned by ParseDirection for an unknown name.
var ErrBadDirection = errors.New("pareto: unknown direction")

// Point is one (cost, diversity) outcome in the units of G and D.
type Point struct {
	Cost      float64 `yaml:"cost"`
	Diversity float64 `yaml:"diversity"`
}

// String renders the point as "(cost, diversity)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.Cost, p.Diversity)
}

// Direction says whether a coordinate is to be maximized or minimized.
// The zero value is Maximize.
type Direction int

const (
	Maximize Direction = iota
	Minimize
)

// String returns "max" or "min".
func (d Direction) String() string {
	if d == Minimize {
		return "min"
	}

	return "max"
}

// sign maps a value onto the maximization axis.
func (d Direction) sign() float64 {
	if d == Minimize {
		return -1
	}

	return 1
}

// ParseDirection accepts "max"/"maximize" and "min"/"minimize" (any case).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "":
		return Maximize, nil
	case "min", "minimize":
		return Minimize, nil
	}

	return Maximize, fmt.Errorf("pareto: %q: %w", s, ErrBadDirection)
}

// Options configures DominatingSet and Sweep.
//   - Cost, Diversity: orientation of each coordinate (default Maximize).
//   - Solver: options passed to dap.NewSolver.
//   - Logger: if non-nil, Samples emits one debug record per k.
type Options struct {
	Cost      Direction
	Diversity Direction
	Solver    dap.Options
	Logger    *slog.Logger
}

// DefaultOptions maximizes both coordinates with the default solver options.
func DefaultOptions() Options {
	return Options{Cost: Maximize, Diversity: Maximize, Solver: dap.DefaultOptions()}
}

// Orient maps points onto the maximize/maximize axes of opts by negating
// every minimized coordinate. A nil opts means DefaultOptions.
func Orient(points []Point, opts *Options) []Point {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{Cost: o.Cost.sign() * p.Cost, Diversity: o.Diversity.sign() * p.Diversity}
	}

	return out
}

// Baseline produces a reference (typically exact) frontier for the same
// instance, in the same units and orientation as Sweep.
type Baseline interface {
	ParetoFront(ctx context.Context, g, d matrix.Matrix) ([]Point, error)
}

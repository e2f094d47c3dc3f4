// SPDX-License-Identifier: MIT

package experiment

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"

	"github.com/katalvlaran/dapfront/dataset"
	"github.com/katalvlaran/dapfront/pareto"
	"github.com/katalvlaran/dapfront/store"
)

// ErrNoBaseline is returned by Exact when the Runner has no Baseline.
var ErrNoBaseline = errors.New("experiment: no exact baseline configured")

// ErrDegenerate is returned by Stats when the exact front spans no area
// while the approximate one does.
var ErrDegenerate = errors.New("experiment: degenerate exact front")

// Key identifies one instance of the grid.
type Key struct {
	Name     string
	Strategy dataset.Strategy
	N        int
	Index    int
}

// Grid lists the instances in size, strategy, ordinal order.
func Grid(sizes []int, strategies []dataset.Strategy, count int) []Key {
	keys := make([]Key, 0, len(sizes)*len(strategies)*count)
	for _, n := range sizes {
		for _, s := range strategies {
			for i := 0; i < count; i++ {
				keys = append(keys, Key{Name: dataset.Name(s, n, i), Strategy: s, N: n, Index: i})
			}
		}
	}

	return keys
}

// Runner holds everything an experiment needs. Zero Workers means one per CPU.
type Runner struct {
	Store     *store.Store
	Instances string // directory of YAML instances
	Options   pareto.Options
	Workers   int
	Logger    *slog.Logger
	Baseline  pareto.Baseline
	Metrics   *Metrics
}

func (r *Runner) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}

	return runtime.GOMAXPROCS(0)
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}

	return slog.New(slog.DiscardHandler)
}

func approxPath(name string) string { return store.ApproxDir + "/" + name }

func exactPath(name string) string { return store.ExactDir + "/" + name }

func timingPath(n int) string { return store.TimingDir + "/" + strconv.Itoa(n) }

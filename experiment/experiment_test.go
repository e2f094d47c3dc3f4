// SPDX-License-Identifier: MIT

package experiment_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dapfront/dap"
	"github.com/katalvlaran/dapfront/dataset"
	"github.com/katalvlaran/dapfront/experiment"
	"github.com/katalvlaran/dapfront/matrix"
	"github.com/katalvlaran/dapfront/pareto"
	"github.com/katalvlaran/dapfront/store"
)

// bruteBaseline enumerates every assignment of a tiny instance and keeps the
// front under opts.
type bruteBaseline struct {
	opts *pareto.Options
}

func (b bruteBaseline) ParetoFront(_ context.Context, g, d matrix.Matrix) ([]pareto.Point, error) {
	gr, err := matrix.ToRows(g)
	if err != nil {
		return nil, err
	}
	dr, err := matrix.ToRows(d)
	if err != nil {
		return nil, err
	}
	n := len(gr)

	var leaves [][2]int
	for u := 0; u < n; u++ {
		for v := u; v < n; v++ {
			leaves = append(leaves, [2]int{u, v})
		}
	}

	var (
		pts  []pareto.Point
		pick = make([][2]int, n)
		used = make([]int, n)
		rec  func(i int)
	)
	rec = func(i int) {
		if i == n {
			var cost, div float64
			for c, p := range pick {
				cost += gr[c][p[0]] + gr[c][p[1]]
				div += dr[p[0]][p[1]]
			}
			pts = append(pts, pareto.Point{Cost: cost, Diversity: div})
			return
		}
		for _, p := range leaves {
			used[p[0]]++
			used[p[1]]++
			if used[p[0]] <= 2 && used[p[1]] <= 2 {
				pick[i] = p
				rec(i + 1)
			}
			used[p[0]]--
			used[p[1]]--
		}
	}
	rec(0)

	return pareto.DominatingSet(pts, b.opts), nil
}

type RunnerSuite struct {
	suite.Suite
	runner *experiment.Runner
	keys   []experiment.Key
	sizes  []int
	strats []dataset.Strategy
}

func (s *RunnerSuite) SetupTest() {
	root := s.T().TempDir()
	instances := filepath.Join(root, "data")
	s.sizes = []int{3}
	s.strats = []dataset.Strategy{dataset.Random, dataset.Distance}

	set, err := dataset.GenerateSet(s.sizes, s.strats, 2, 5)
	s.Require().NoError(err)
	for _, in := range set {
		_, err = dataset.Save(instances, in)
		s.Require().NoError(err)
	}

	s.keys = experiment.Grid(s.sizes, s.strats, 2)
	s.runner = &experiment.Runner{
		Store:     store.New(root),
		Instances: instances,
		Options:   pareto.DefaultOptions(),
		Workers:   2,
		Metrics:   experiment.NewMetrics(),
	}
}

func (s *RunnerSuite) TestGrid() {
	s.Len(s.keys, 4)
	s.Equal("random_div_3_0", s.keys[0].Name)
	s.Equal("distance_div_3_1", s.keys[3].Name)
}

func (s *RunnerSuite) TestApproxMatchesSweep() {
	s.Require().NoError(s.runner.Approx(context.Background(), s.keys))
	s.Equal(4.0, testutil.ToFloat64(s.runner.Metrics.Sweeps.WithLabelValues("approx", "ok")))

	for _, k := range s.keys {
		in, err := dataset.Load(s.runner.Instances, k.Name)
		s.Require().NoError(err)
		g, d, err := in.Matrices()
		s.Require().NoError(err)
		want, err := pareto.Sweep(context.Background(), g, d, nil)
		s.Require().NoError(err)

		got, err := s.runner.Store.ReadPoints(store.ApproxDir + "/" + k.Name)
		s.Require().NoError(err)
		s.Equal(want, got)
	}
}

func (s *RunnerSuite) TestApproxMissingInstance() {
	err := s.runner.Approx(context.Background(), []experiment.Key{{Name: "uniform_div_9_0"}})
	s.Error(err)
	s.Equal(1.0, testutil.ToFloat64(s.runner.Metrics.Sweeps.WithLabelValues("approx", "error")))
}

func (s *RunnerSuite) TestExactRequiresBaseline() {
	s.ErrorIs(s.runner.Exact(context.Background(), s.keys), experiment.ErrNoBaseline)
}

// TestStatsAgainstBruteForce: the approximate front can never dominate more
// area than the exact one.
func (s *RunnerSuite) TestStatsAgainstBruteForce() {
	ctx := context.Background()
	s.runner.Baseline = bruteBaseline{}
	s.Require().NoError(s.runner.Approx(ctx, s.keys))
	s.Require().NoError(s.runner.Exact(ctx, s.keys))

	st, err := s.runner.Stats(ctx, s.sizes, s.strats, 2)
	s.Require().NoError(err)
	s.Require().Len(st.ParetoFraction, 2)
	for si := range s.strats {
		f := st.ParetoFraction[si][0]
		s.Greater(f, 0.0)
		s.LessOrEqual(f, 1.0+1e-9)
		s.GreaterOrEqual(st.PointsApprox[si][0], 1.0)
		s.GreaterOrEqual(st.PointsExact[si][0], 1.0)
	}

	stored, err := s.runner.Store.ReadArray(store.StatsDir + "/" + experiment.ParetoFractionFile)
	s.Require().NoError(err)
	s.Equal(st.ParetoFraction, stored)
}

// TestStatsMinimizeCost: with cost minimized both fronts are measured on the
// flipped cost axis, so the exact front still bounds the ratio by 1.
func (s *RunnerSuite) TestStatsMinimizeCost() {
	ctx := context.Background()
	s.runner.Options.Cost = pareto.Minimize
	s.runner.Baseline = bruteBaseline{opts: &s.runner.Options}
	s.Require().NoError(s.runner.Approx(ctx, s.keys))
	s.Require().NoError(s.runner.Exact(ctx, s.keys))

	st, err := s.runner.Stats(ctx, s.sizes, s.strats, 2)
	s.Require().NoError(err)
	for si := range s.strats {
		f := st.ParetoFraction[si][0]
		s.GreaterOrEqual(f, 0.0)
		s.LessOrEqual(f, 1.0+1e-9)
	}
}

func (s *RunnerSuite) TestTiming() {
	ctx := context.Background()
	s.Require().NoError(s.runner.Timing(ctx, s.keys))

	rows, err := s.runner.TimingSummary(s.sizes)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(3, rows[0].Size)
	s.Equal(4, rows[0].Samples)
	s.GreaterOrEqual(rows[0].Mean, 0.0)
	s.Equal(1, testutil.CollectAndCount(s.runner.Metrics.SweepDuration))

	path := filepath.Join(s.T().TempDir(), "dapfront.prom")
	s.Require().NoError(s.runner.Metrics.WriteTextfile(path))
	raw, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Contains(string(raw), `dapfront_sweep_duration_seconds_count{size="3"} 4`)
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func TestCompare_Degenerate(t *testing.T) {
	g := matrix.MustDense([][]float64{{1, 1}, {1, 1}})
	d := matrix.MustDense([][]float64{{0, 0}, {0, 0}})
	s, err := dap.NewSolver(g, d, nil)
	require.NoError(t, err)

	same := []pareto.Point{{Cost: 4, Diversity: 0}}
	r, err := experiment.Compare(s, same, same, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)

	_, err = experiment.Compare(s, []pareto.Point{{Cost: 5, Diversity: 1}}, same, nil)
	assert.ErrorIs(t, err, experiment.ErrDegenerate)
}

func TestCompare_MinimizedCost(t *testing.T) {
	g := matrix.MustDense([][]float64{{0, 1}, {1, 0}})
	d := matrix.MustDense([][]float64{{0, 5}, {5, 0}})
	s, err := dap.NewSolver(g, d, nil)
	require.NoError(t, err)

	opts := pareto.DefaultOptions()
	opts.Cost = pareto.Minimize
	exact := []pareto.Point{{Cost: 2, Diversity: 10}}

	// corner (−MaximumCost, MinimumDiversity) = (−4, 0):
	// exact (−2, 10) spans 2·10, the costlier (−3, 10) spans 1·10.
	r, err := experiment.Compare(s, []pareto.Point{{Cost: 3, Diversity: 10}}, exact, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r, 1e-12)

	r, err = experiment.Compare(s, exact, exact, &opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)
}

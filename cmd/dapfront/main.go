// SPDX-License-Identifier: MIT

// Command dapfront generates DAP instances, computes approximate
// cost/diversity frontiers and summarizes them.
//
// Usage:
//
//	dapfront <command> [flags]
//
//	generate   draw instances for every (size, strategy, ordinal)
//	approx     sweep every instance and store its approximate front
//	stats      compare stored approximate and exact fronts
//	timing     time one sweep per instance and summarize per size
//	plot       render a frontier (--instance) or the timing charts (--timings)
//
// Settings come from --config (TOML), DAPFRONT_* variables and flags.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/dapfront/config"
	"github.com/katalvlaran/dapfront/dataset"
	"github.com/katalvlaran/dapfront/experiment"
	"github.com/katalvlaran/dapfront/logging"
	"github.com/katalvlaran/dapfront/report"
	"github.com/katalvlaran/dapfront/store"
)

const usage = `usage: dapfront <generate|approx|stats|timing|plot> [flags]`

var errUsage = errors.New(usage)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "dapfront:", err)
		os.Exit(1)
	}
}

// app bundles what every command needs.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	runner *experiment.Runner
	out    io.Writer
}

func newFlagSet(cmd string, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("config", "", "TOML configuration file")
	fs.String("log-level", "info", "debug|info|warn|error")
	fs.String("log-format", "json", "json|text")
	fs.String("log-file", "", "rotated log file (default stderr)")
	fs.String("instances", "data", "instance directory")
	fs.String("results", ".", "result store root")
	fs.String("plots", "plots", "plot directory")
	fs.String("metrics", "", "Prometheus textfile written after timing")
	fs.IntSlice("sizes", []int{4, 8, 16}, "instance sizes")
	fs.StringSlice("divs", []string{"disjoint", "distance", "uniform", "random"}, "diversity strategies")
	fs.Int("count", 10, "instances per (size, strategy)")
	fs.Int64("seed", 1, "generation seed")
	fs.Int("workers", 0, "concurrent instances (0: one per CPU)")
	fs.Int64("scale", 1, "weight scale before integer rounding")
	fs.String("cost", "max", "cost direction: max|min")
	fs.String("diversity", "max", "diversity direction: max|min")

	return fs
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd := args[0]

	fs := newFlagSet(cmd, stderr)
	instance := fs.String("instance", "", "plot: instance name")
	timings := fs.Bool("timings", false, "plot: render timing charts")
	format := fs.String("format", "png", "plot: output format (png, svg, pdf)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	cfgPath, _ := fs.GetString("config")

	cfg, err := config.Load(cfgPath, fs)
	if err != nil {
		return err
	}
	log, closer := logging.New(cfg.Log, stderr)
	defer closer.Close()

	a, err := newApp(cfg, log, stdout)
	if err != nil {
		return err
	}

	switch cmd {
	case "generate":
		return a.generate()
	case "approx":
		return a.approx(ctx)
	case "stats":
		return a.stats(ctx)
	case "timing":
		return a.timing(ctx)
	case "plot":
		return a.plot(*instance, *timings, *format)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func newApp(cfg *config.Config, log *slog.Logger, out io.Writer) (*app, error) {
	opts, err := cfg.ParetoOptions()
	if err != nil {
		return nil, err
	}

	return &app{
		cfg: cfg,
		log: log,
		out: out,
		runner: &experiment.Runner{
			Store:     store.New(cfg.Data.Results),
			Instances: cfg.Data.Instances,
			Options:   opts,
			Workers:   cfg.Experiment.Workers,
			Logger:    log,
			Metrics:   experiment.NewMetrics(),
		},
	}, nil
}

func (a *app) grid() ([]experiment.Key, error) {
	strategies, err := a.cfg.Strategies()
	if err != nil {
		return nil, err
	}

	return experiment.Grid(a.cfg.Experiment.Sizes, strategies, a.cfg.Experiment.Count), nil
}

func (a *app) generate() error {
	strategies, err := a.cfg.Strategies()
	if err != nil {
		return err
	}
	set, err := dataset.GenerateSet(a.cfg.Experiment.Sizes, strategies, a.cfg.Experiment.Count, a.cfg.Experiment.Seed)
	if err != nil {
		return err
	}
	for _, in := range set {
		if _, err = dataset.Save(a.cfg.Data.Instances, in); err != nil {
			return err
		}
	}
	a.log.Info("generated", slog.Int("instances", len(set)), slog.String("dir", a.cfg.Data.Instances))

	return nil
}

func (a *app) approx(ctx context.Context) error {
	keys, err := a.grid()
	if err != nil {
		return err
	}

	return a.runner.Approx(ctx, keys)
}

func (a *app) stats(ctx context.Context) error {
	strategies, err := a.cfg.Strategies()
	if err != nil {
		return err
	}
	st, err := a.runner.Stats(ctx, a.cfg.Experiment.Sizes, strategies, a.cfg.Experiment.Count)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "strategy\tsize\tfraction\tpoints approx\tpoints exact")
	for si, s := range st.Strategies {
		for ni, n := range st.Sizes {
			fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.1f\t%.1f\n",
				s, n, st.ParetoFraction[si][ni], st.PointsApprox[si][ni], st.PointsExact[si][ni])
		}
	}

	return tw.Flush()
}

func (a *app) timing(ctx context.Context) error {
	keys, err := a.grid()
	if err != nil {
		return err
	}
	if err = a.runner.Timing(ctx, keys); err != nil {
		return err
	}
	if a.cfg.Data.Metrics != "" {
		if err = a.runner.Metrics.WriteTextfile(a.cfg.Data.Metrics); err != nil {
			return err
		}
	}

	rows, err := a.runner.TimingSummary(a.cfg.Experiment.Sizes)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "size\tsamples\tmean (s)\tstddev (s)")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%d\t%.3g\t%.3g\n", r.Size, r.Samples, r.Mean, r.StdDev)
	}

	return tw.Flush()
}

func (a *app) plot(instance string, timings bool, format string) error {
	if instance == "" && !timings {
		return fmt.Errorf("plot needs --instance or --timings: %w", errUsage)
	}
	st := a.runner.Store

	if instance != "" {
		approx, err := st.ReadPoints(store.ApproxDir + "/" + instance)
		if err != nil {
			return err
		}
		exact, err := st.ReadPoints(store.ExactDir + "/" + instance)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		p, err := report.Frontier(instance, approx, exact)
		if err != nil {
			return err
		}
		path := filepath.Join(a.cfg.Data.Plots, instance+"."+format)
		if err = report.Save(p, path); err != nil {
			return err
		}
		a.log.Info("plotted", slog.String("file", path))
	}

	if timings {
		rows, err := a.runner.TimingSummary(a.cfg.Experiment.Sizes)
		if err != nil {
			return err
		}
		s := report.Series{Label: "Approximation"}
		for _, r := range rows {
			s.X = append(s.X, float64(r.Size))
			s.Y = append(s.Y, r.Mean)
		}
		for _, logScale := range []bool{false, true} {
			p, err := report.Timings([]report.Series{s}, logScale)
			if err != nil {
				return err
			}
			name := "timings." + format
			if logScale {
				name = "timings_log." + format
			}
			path := filepath.Join(a.cfg.Data.Plots, name)
			if err = report.Save(p, path); err != nil {
				return err
			}
			a.log.Info("plotted", slog.String("file", path))
		}
	}

	return nil
}

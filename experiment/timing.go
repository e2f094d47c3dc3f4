// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/dapfront/dataset"
	"github.com/katalvlaran/dapfront/pareto"
)

// TimingRow summarizes the stored timings of one size.
type TimingRow struct {
	Size    int
	Samples int
	Mean    float64 // seconds
	StdDev  float64 // seconds; 0 with fewer than two samples
}

// Timing sweeps every instance sequentially, appends the wall time in
// seconds to timing/approx/<n> and records it in Metrics when set.
func (r *Runner) Timing(ctx context.Context, keys []Key) error {
	log := r.logger()
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		in, err := dataset.Load(r.Instances, key.Name)
		if err != nil {
			return err
		}
		g, d, err := in.Matrices()
		if err != nil {
			return err
		}

		opts := r.Options
		opts.Logger = nil
		start := time.Now()
		_, err = pareto.Sweep(ctx, g, d, &opts)
		elapsed := time.Since(start)
		r.Metrics.done("timing", err)
		if err != nil {
			return fmt.Errorf("experiment: timing %s: %w", key.Name, err)
		}

		if r.Metrics != nil {
			r.Metrics.SweepDuration.WithLabelValues(strconv.Itoa(in.N)).Observe(elapsed.Seconds())
		}
		if err = r.Store.AppendNum(timingPath(in.N), elapsed.Seconds()); err != nil {
			return err
		}
		log.Info("timed", slog.String("instance", key.Name), slog.Duration("elapsed", elapsed))
	}

	return nil
}

// TimingSummary reads the stored timings of every size.
func (r *Runner) TimingSummary(sizes []int) ([]TimingRow, error) {
	rows := make([]TimingRow, 0, len(sizes))
	for _, n := range sizes {
		xs, err := r.Store.ReadNums(timingPath(n))
		if err != nil {
			return nil, err
		}
		row := TimingRow{Size: n, Samples: len(xs)}
		switch len(xs) {
		case 0:
		case 1:
			row.Mean = xs[0]
		default:
			row.Mean, row.StdDev = stat.MeanStdDev(xs, nil)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

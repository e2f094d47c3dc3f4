// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/dapfront/dataset"
	"github.com/katalvlaran/dapfront/pareto"
)

// Approx sweeps every instance and writes its front to pareto/approx/<name>.
// The first failure cancels the remaining work and is returned.
func (r *Runner) Approx(ctx context.Context, keys []Key) error {
	return r.each(ctx, keys, "approx", func(ctx context.Context, in *dataset.Instance) error {
		g, d, err := in.Matrices()
		if err != nil {
			return err
		}
		opts := r.Options
		opts.Logger = r.logger().With(slog.String("instance", in.Name))
		front, err := pareto.Sweep(ctx, g, d, &opts)
		if err != nil {
			return err
		}

		return r.Store.WritePoints(approxPath(in.Name), front)
	})
}

// Exact asks the Baseline for every instance's front and writes it to
// pareto/exact/<name>.
func (r *Runner) Exact(ctx context.Context, keys []Key) error {
	if r.Baseline == nil {
		return ErrNoBaseline
	}

	return r.each(ctx, keys, "exact", func(ctx context.Context, in *dataset.Instance) error {
		g, d, err := in.Matrices()
		if err != nil {
			return err
		}
		front, err := r.Baseline.ParetoFront(ctx, g, d)
		if err != nil {
			return err
		}

		return r.Store.WritePoints(exactPath(in.Name), front)
	})
}

// each loads every instance and runs fn on a bounded pool.
func (r *Runner) each(ctx context.Context, keys []Key, stage string, fn func(context.Context, *dataset.Instance) error) error {
	log := r.logger()
	p := pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(r.workers())

	for i, key := range keys {
		p.Go(func(ctx context.Context) error {
			in, err := dataset.Load(r.Instances, key.Name)
			if err == nil {
				err = fn(ctx, in)
			}
			r.Metrics.done(stage, err)
			if err != nil {
				log.Error("instance failed", slog.String("stage", stage), slog.String("instance", key.Name), slog.Any("err", err))
				return fmt.Errorf("experiment: %s %s: %w", stage, key.Name, err)
			}
			log.Info("instance done",
				slog.String("stage", stage),
				slog.String("instance", key.Name),
				slog.Int("index", i),
				slog.Int("total", len(keys)))

			return nil
		})
	}

	return p.Wait()
}

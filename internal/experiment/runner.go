package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"ndca/internal/storage"
)

// Runner executes experiments on a bounded pool of goroutines. Each
// experiment is evolved by a single goroutine; parallelism is across
// experiments only.
//
// When Store is set, every finished experiment is saved together with a
// snapshot of its final grid. The store must already be initialized.
type Runner struct {
	Workers int
	Logger  *slog.Logger
	Store   storage.Store
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default().With(slog.String("component", "experiment"))
}

func (r *Runner) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Run executes one experiment and persists it when a store is attached.
func (r *Runner) Run(ctx context.Context, cfg Config) (Result, error) {
	logger := r.logger()
	res, err := Run(ctx, cfg)
	if err != nil {
		logger.Warn("experiment failed",
			slog.String("dims", FormatDims(cfg.Dimensions)),
			slog.Int64("seed", cfg.Seed),
			slog.String("error", err.Error()),
		)
		return Result{}, err
	}
	logger.Info("experiment finished",
		slog.String("id", res.ID),
		slog.String("rule", res.Rule.String()),
		slog.String("dims", FormatDims(cfg.Dimensions)),
		slog.Int64("seed", cfg.Seed),
		slog.String("outcome", string(res.Classification.Outcome)),
		slog.String("class", string(res.Classification.Class)),
		slog.Float64("confidence", res.Classification.Confidence),
		slog.Duration("elapsed", res.Elapsed),
	)
	if err := r.persist(ctx, res); err != nil {
		return Result{}, err
	}
	return res, nil
}

// RunAll executes cfgs concurrently and returns the results in input order.
// The first failure cancels the experiments still running and is returned.
func (r *Runner) RunAll(ctx context.Context, cfgs []Config) ([]Result, error) {
	results := make([]Result, len(cfgs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for i, cfg := range cfgs {
		g.Go(func() error {
			res, err := r.Run(gctx, cfg)
			if err != nil {
				return fmt.Errorf("experiment %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) persist(ctx context.Context, res Result) error {
	if r.Store == nil {
		return nil
	}
	if err := r.Store.SaveExperiment(ctx, res.Record()); err != nil {
		return fmt.Errorf("save experiment %s: %w", res.ID, err)
	}
	if err := r.Store.SaveSnapshot(ctx, res.Snapshot()); err != nil {
		return fmt.Errorf("save snapshot %s: %w", res.ID, err)
	}
	return nil
}

// Package experiment wires the automaton core into runnable experiments: it
// builds a seeded grid and rule from a Config, evolves it with cancellation,
// classifies the history and converts the outcome into persistable records.
package experiment

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"ndca/internal/classify"
	"ndca/internal/core"
	"ndca/internal/model"
	"ndca/internal/neighborhood"
	"ndca/internal/rule"
	"ndca/internal/stepper"
	"ndca/internal/storage"
	pkgcore "ndca/pkg/core"
)

// Setup is the initial state and dynamics of an experiment.
type Setup struct {
	Grid    *core.Grid
	Rule    rule.Rule
	Offsets neighborhood.Offsets
}

// Result is a finished experiment.
type Result struct {
	ID             string
	Config         Config
	Rule           rule.Rule
	FinalGrid      *core.Grid
	Steps          int
	History        []stepper.EnhancedMetrics
	Classification classify.Result
	StartedAt      time.Time
	Elapsed        time.Duration
}

// Build validates cfg and produces the seeded initial grid together with the
// rule and neighborhood it evolves under.
func Build(cfg Config) (Setup, error) {
	r, offsets, err := dynamics(cfg)
	if err != nil {
		return Setup{}, err
	}
	grid, err := core.NewGrid(cfg.Dimensions...)
	if err != nil {
		return Setup{}, configErr("dims", FormatDims(cfg.Dimensions), err)
	}
	if err := core.Randomize(grid, pkgcore.NewRNG(cfg.Seed), cfg.Density); err != nil {
		return Setup{}, configErr("density", fmt.Sprint(cfg.Density), err)
	}
	return Setup{Grid: grid, Rule: r, Offsets: offsets}, nil
}

func dynamics(cfg Config) (rule.Rule, neighborhood.Offsets, error) {
	if err := cfg.Validate(); err != nil {
		return rule.Rule{}, nil, err
	}
	topology, _ := neighborhood.ParseTopology(string(cfg.Topology))
	offsets, err := neighborhood.Generate(cfg.Dimensions, neighborhood.Spec{Topology: topology, Range: cfg.Range})
	if err != nil {
		return rule.Rule{}, nil, err
	}
	maxNeighbors, err := neighborhood.MaxNeighborCount(cfg.Dimensions, topology, cfg.Range)
	if err != nil {
		return rule.Rule{}, nil, err
	}
	r, err := rule.FromThresholds(cfg.Birth, cfg.Survival, maxNeighbors)
	if err != nil {
		return rule.Rule{}, nil, configErr("rule", "B"+cfg.Birth.String()+"/S"+cfg.Survival.String(), err)
	}
	return r, offsets, nil
}

// Run builds and evolves cfg for cfg.Steps generations, then classifies the
// sampled history. The context is checked before every step; a cancelled run
// returns the context error and no result.
func Run(ctx context.Context, cfg Config) (Result, error) {
	setup, err := Build(cfg)
	if err != nil {
		return Result{}, err
	}
	s, err := stepper.New(setup.Grid, setup.Rule, setup.Offsets)
	if err != nil {
		return Result{}, err
	}
	return evolve(ctx, uuid.New().String(), cfg, setup.Rule, s, nil, cfg.Steps)
}

// Resume restores snap and evolves it for another steps generations under
// cfg's dynamics. The returned history is the snapshot's history followed by
// the new samples, and the classification covers all of it. Resuming k steps
// and then m steps produces the same grid and history as running k+m.
func Resume(ctx context.Context, cfg Config, snap model.Snapshot, steps int) (Result, error) {
	if !slices.Equal(snap.Dimensions, cfg.Dimensions) {
		return Result{}, fmt.Errorf("%w: snapshot %s, config %s", ErrSnapshotShape,
			FormatDims(snap.Dimensions), FormatDims(cfg.Dimensions))
	}
	if steps < 0 {
		return Result{}, configErr("steps", fmt.Sprint(steps), ErrNegativeSteps)
	}
	r, offsets, err := dynamics(cfg)
	if err != nil {
		return Result{}, err
	}
	grid, err := core.GridFromCells(snap.Dimensions, snap.Cells)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrSnapshotShape, err)
	}
	s, err := stepper.Resume(grid, r, offsets, snap.Step)
	if err != nil {
		return Result{}, err
	}
	id := snap.ExperimentID
	if id == "" {
		id = uuid.New().String()
	}
	return evolve(ctx, id, cfg, r, s, slices.Clone(snap.History), steps)
}

func evolve(ctx context.Context, id string, cfg Config, r rule.Rule, s *stepper.Stepper, history []stepper.EnhancedMetrics, steps int) (Result, error) {
	started := time.Now()
	if history == nil {
		history = make([]stepper.EnhancedMetrics, 0, steps/cfg.Interval)
	}
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		m := s.StepEnhanced()
		if m.Step%cfg.Interval == 0 {
			history = append(history, m)
		}
	}
	return Result{
		ID:             id,
		Config:         cfg,
		Rule:           r,
		FinalGrid:      s.Grid(),
		Steps:          s.Steps(),
		History:        history,
		Classification: classify.Classify(history),
		StartedAt:      started,
		Elapsed:        time.Since(started),
	}, nil
}

// Snapshot captures the final grid byte-for-byte so the run can be resumed.
func (r Result) Snapshot() model.Snapshot {
	return model.Snapshot{
		VersionedRecord: storage.CurrentVersion(),
		ExperimentID:    r.ID,
		Dimensions:      r.FinalGrid.Dimensions(),
		Cells:           slices.Clone(r.FinalGrid.Cells()),
		Step:            r.Steps,
		History:         slices.Clone(r.History),
	}
}

// Record is the persisted summary of the run.
func (r Result) Record() model.ExperimentRecord {
	return model.ExperimentRecord{
		VersionedRecord: storage.CurrentVersion(),
		ID:              r.ID,
		Params:          r.Config.ToMap(),
		Rule:            r.Rule.String(),
		Steps:           r.Steps,
		Classification:  r.Classification,
		History:         r.History,
		StartedAt:       r.StartedAt,
		Elapsed:         r.Elapsed,
	}
}

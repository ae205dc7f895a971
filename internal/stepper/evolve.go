package stepper

import (
	"fmt"

	"ndca/internal/core"
	"ndca/internal/neighborhood"
	"ndca/internal/rule"
)

// Result is the outcome of Evolve.
type Result struct {
	FinalGrid *core.Grid
	History   []Metrics
}

// EnhancedResult is the outcome of EvolveEnhanced.
type EnhancedResult struct {
	FinalGrid *core.Grid
	History   []EnhancedMetrics
}

// Evolve runs steps generations starting from a copy of initial and samples
// the metrics of every interval-th step into the history.
func Evolve(initial *core.Grid, r rule.Rule, offsets neighborhood.Offsets, steps, interval int) (Result, error) {
	s, err := prepare(initial, r, offsets, steps, interval)
	if err != nil {
		return Result{}, err
	}
	history := make([]Metrics, 0, steps/interval)
	for i := 0; i < steps; i++ {
		m := s.Step()
		if m.Step%interval == 0 {
			history = append(history, m)
		}
	}
	return Result{FinalGrid: s.Grid().Clone(), History: history}, nil
}

// EvolveEnhanced is Evolve with entropy and fingerprint computed every step.
func EvolveEnhanced(initial *core.Grid, r rule.Rule, offsets neighborhood.Offsets, steps, interval int) (EnhancedResult, error) {
	s, err := prepare(initial, r, offsets, steps, interval)
	if err != nil {
		return EnhancedResult{}, err
	}
	history := make([]EnhancedMetrics, 0, steps/interval)
	for i := 0; i < steps; i++ {
		m := s.StepEnhanced()
		if m.Step%interval == 0 {
			history = append(history, m)
		}
	}
	return EnhancedResult{FinalGrid: s.Grid().Clone(), History: history}, nil
}

func prepare(initial *core.Grid, r rule.Rule, offsets neighborhood.Offsets, steps, interval int) (*Stepper, error) {
	if err := ValidateRun(steps, interval); err != nil {
		return nil, err
	}
	return New(initial, r, offsets)
}

// ValidateRun checks the step count and sampling interval of a run.
func ValidateRun(steps, interval int) error {
	if steps < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}
	if interval < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidInterval, interval)
	}
	return nil
}

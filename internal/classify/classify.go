// Package classify labels the long-run behavior of an automaton run from its
// metrics history.
//
// Classify evaluates an ordered list of checks and stops at the first match:
//
//  1. extinction (empty history or final population 0)
//  2. homogeneous state (entropy 0 with live cells)
//  3. a verified repeat in the fingerprint sequence (fixed point or cycle)
//  4. high, fluctuating entropy without a cycle (chaotic)
//  5. sustained population growth (explosive)
//  6. steady mid-range entropy over a long run (edge of chaos)
//  7. anything else (stable)
//
// The order matters: later checks assume earlier ones failed. Check 6 is a
// weak signal and reports a confidence of 0.50 on purpose.
package classify

import (
	"fmt"
	"math"

	"ndca/internal/stepper"
)

// Outcome is the coarse label of a run.
type Outcome string

const (
	OutcomeExtinct     Outcome = "extinct"
	OutcomeStable      Outcome = "stable"
	OutcomeOscillating Outcome = "oscillating"
	OutcomeExplosive   Outcome = "explosive"
)

// WolframClass is the finer qualitative label of a run.
type WolframClass string

const (
	ClassExtinct   WolframClass = "extinct"
	Class1         WolframClass = "class1" // homogeneous
	Class2Stable   WolframClass = "class2_stable"
	Class2Periodic WolframClass = "class2_periodic"
	Class3         WolframClass = "class3" // chaotic
	Class4         WolframClass = "class4" // complex, edge of chaos
)

// Trend describes the direction of a signal over the tail of the history.
type Trend string

const (
	TrendStable      Trend = "stable"
	TrendGrowing     Trend = "growing"
	TrendShrinking   Trend = "shrinking"
	TrendOscillating Trend = "oscillating"
	TrendIncreasing  Trend = "increasing"
	TrendDecreasing  Trend = "decreasing"
	TrendFluctuating Trend = "fluctuating"
)

// Details carries the signals behind a classification.
type Details struct {
	CycleDetected   bool  `json:"cycle_detected"`
	CyclePeriod     int   `json:"cycle_period,omitempty"` // 0 when no cycle was found
	EntropyTrend    Trend `json:"entropy_trend"`
	PopulationTrend Trend `json:"population_trend"`
}

// Result is the classification of one run.
type Result struct {
	Outcome    Outcome      `json:"outcome"`
	Class      WolframClass `json:"wolfram_class"`
	Confidence float64      `json:"confidence"`
	Details    Details      `json:"details"`
	Reason     string       `json:"reason"`
}

const (
	chaoticEntropyVariance = 0.02
	explosiveGrowthRatio   = 1.5
	growthWindow           = 0.3
	complexEntropyLow      = 0.3
	complexEntropyHigh     = 0.8
	complexMinSamples      = 50
)

// Classify labels a run from its full enhanced metrics history.
func Classify(history []stepper.EnhancedMetrics) Result {
	n := len(history)
	if n == 0 {
		return Result{
			Outcome:    OutcomeExtinct,
			Class:      ClassExtinct,
			Confidence: 1.0,
			Details:    Details{EntropyTrend: TrendStable, PopulationTrend: TrendStable},
			Reason:     "empty history",
		}
	}

	fingerprints := make([]uint32, n)
	populations := make([]float64, n)
	entropies := make([]float64, n)
	for i, m := range history {
		fingerprints[i] = m.Fingerprint
		populations[i] = float64(m.Population)
		entropies[i] = m.Entropy
	}
	period, cycle := DetectCycle(fingerprints)
	details := Details{
		CycleDetected:   cycle,
		CyclePeriod:     period,
		EntropyTrend:    EntropyTrend(entropies),
		PopulationTrend: PopulationTrend(populations),
	}
	result := func(o Outcome, c WolframClass, conf float64, reason string) Result {
		return Result{Outcome: o, Class: c, Confidence: conf, Details: details, Reason: reason}
	}

	last := history[n-1]
	if last.Population == 0 {
		return result(OutcomeExtinct, ClassExtinct, 1.0, fmt.Sprintf("population reached 0 by step %d", last.Step))
	}
	if last.Entropy == 0 {
		return result(OutcomeStable, Class1, 0.95, "all cells identical")
	}
	if cycle {
		if period == 1 {
			return result(OutcomeStable, Class2Stable, 0.95, "fixed point: state repeats every step")
		}
		return result(OutcomeOscillating, Class2Periodic, 0.90, fmt.Sprintf("state cycles with period %d", period))
	}

	entropyVar := variance(entropies)
	if entropyVar > chaoticEntropyVariance && details.EntropyTrend == TrendFluctuating {
		return result(OutcomeOscillating, Class3, 0.75, fmt.Sprintf("entropy variance %.4f with fluctuating trend", entropyVar))
	}

	if details.PopulationTrend == TrendGrowing {
		if ratio := growthRatio(populations); ratio > explosiveGrowthRatio {
			return result(OutcomeExplosive, Class3, 0.80, fmt.Sprintf("late/early population ratio %.2f", ratio))
		}
	}

	if meanEntropy := mean(entropies); details.EntropyTrend == TrendStable &&
		meanEntropy > complexEntropyLow && meanEntropy < complexEntropyHigh &&
		n >= complexMinSamples {
		return result(OutcomeStable, Class4, 0.50, fmt.Sprintf("steady mid-range entropy %.3f without a cycle", meanEntropy))
	}

	return result(OutcomeStable, Class2Stable, 0.70, "no distinguishing signal")
}

// growthRatio compares the mean of the last 30% of samples against the mean
// of the first 30%. A run that starts empty and ends populated is +Inf.
func growthRatio(values []float64) float64 {
	k := int(math.Ceil(float64(len(values)) * growthWindow))
	if k < 1 {
		k = 1
	}
	if k > len(values) {
		k = len(values)
	}
	early := mean(values[:k])
	late := mean(values[len(values)-k:])
	if early == 0 {
		if late > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return late / early
}

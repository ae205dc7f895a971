package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndca/internal/classify"
	"ndca/internal/core"
	"ndca/internal/neighborhood"
	"ndca/internal/rule"
	"ndca/internal/stepper"
)

// synthetic builds a history with unique fingerprints unless fps is given.
func synthetic(pops []int, entropies []float64, fps []uint32) []stepper.EnhancedMetrics {
	out := make([]stepper.EnhancedMetrics, len(pops))
	for i := range pops {
		fp := uint32(1000 + i)
		if fps != nil {
			fp = fps[i]
		}
		out[i] = stepper.EnhancedMetrics{
			Metrics:     stepper.Metrics{Step: i + 1, Population: pops[i]},
			Entropy:     entropies[i],
			Fingerprint: fp,
		}
	}
	return out
}

func constant[T any](n int, v T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func conwayRun(t *testing.T, steps int, alive ...[]int) []stepper.EnhancedMetrics {
	t.Helper()
	dims := []int{5, 5}
	g, err := core.NewGrid(dims...)
	require.NoError(t, err)
	for _, c := range alive {
		g.Set(c, 1)
	}
	offsets, err := neighborhood.Generate(dims, neighborhood.Spec{Topology: neighborhood.Moore, Range: 1})
	require.NoError(t, err)
	res, err := stepper.EvolveEnhanced(g, rule.Conway(), offsets, steps, 1)
	require.NoError(t, err)
	return res.History
}

func TestClassifyEmptyHistory(t *testing.T) {
	res := classify.Classify(nil)
	assert.Equal(t, classify.OutcomeExtinct, res.Outcome)
	assert.Equal(t, classify.ClassExtinct, res.Class)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestClassifySingleCellExtinct(t *testing.T) {
	history := conwayRun(t, 1, []int{2, 2})
	require.Equal(t, 0, history[0].Population)
	res := classify.Classify(history)
	assert.Equal(t, classify.OutcomeExtinct, res.Outcome)
	assert.Equal(t, classify.ClassExtinct, res.Class)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestClassifyBlockStillLife(t *testing.T) {
	history := conwayRun(t, 30, []int{1, 1}, []int{1, 2}, []int{2, 1}, []int{2, 2})
	res := classify.Classify(history)
	assert.Equal(t, classify.OutcomeStable, res.Outcome)
	assert.Equal(t, classify.Class2Stable, res.Class)
	assert.Equal(t, 0.95, res.Confidence)
	assert.True(t, res.Details.CycleDetected)
	assert.Equal(t, 1, res.Details.CyclePeriod)
}

func TestClassifyBlinker(t *testing.T) {
	history := conwayRun(t, 20, []int{1, 2}, []int{2, 2}, []int{3, 2})
	res := classify.Classify(history)
	assert.True(t, res.Details.CycleDetected)
	assert.Equal(t, 2, res.Details.CyclePeriod)
	assert.Equal(t, classify.OutcomeOscillating, res.Outcome)
	assert.Equal(t, classify.Class2Periodic, res.Class)
	assert.Equal(t, 0.90, res.Confidence)
}

func TestClassifyHomogeneous(t *testing.T) {
	history := synthetic([]int{10, 25, 25}, []float64{0.8, 0, 0}, nil)
	res := classify.Classify(history)
	assert.Equal(t, classify.OutcomeStable, res.Outcome)
	assert.Equal(t, classify.Class1, res.Class)
	assert.Equal(t, 0.95, res.Confidence)
}

func TestClassifyChaotic(t *testing.T) {
	n := 40
	pops := constant(n, 100)
	entropies := make([]float64, n)
	for i := range entropies {
		entropies[i] = 0.2
		if i%2 == 1 {
			entropies[i] = 0.9
		}
	}
	res := classify.Classify(synthetic(pops, entropies, nil))
	assert.False(t, res.Details.CycleDetected)
	assert.Equal(t, classify.TrendFluctuating, res.Details.EntropyTrend)
	assert.Equal(t, classify.OutcomeOscillating, res.Outcome)
	assert.Equal(t, classify.Class3, res.Class)
	assert.Equal(t, 0.75, res.Confidence)
}

func TestClassifyExplosive(t *testing.T) {
	n := 30
	pops := make([]int, n)
	for i := range pops {
		pops[i] = 10 * (i + 1)
	}
	res := classify.Classify(synthetic(pops, constant(n, 0.5), nil))
	assert.Equal(t, classify.TrendGrowing, res.Details.PopulationTrend)
	assert.Equal(t, classify.OutcomeExplosive, res.Outcome)
	assert.Equal(t, classify.Class3, res.Class)
	assert.Equal(t, 0.80, res.Confidence)
}

func TestClassifyGrowingBelowRatioFallsThrough(t *testing.T) {
	n := 30
	pops := make([]int, n)
	for i := range pops {
		pops[i] = 1000 + i
	}
	res := classify.Classify(synthetic(pops, constant(n, 0.5), nil))
	assert.Equal(t, classify.TrendGrowing, res.Details.PopulationTrend)
	assert.Equal(t, classify.Class2Stable, res.Class)
	assert.Equal(t, 0.70, res.Confidence)
}

func TestClassifyEdgeOfChaos(t *testing.T) {
	n := 60
	res := classify.Classify(synthetic(constant(n, 100), constant(n, 0.5), nil))
	assert.Equal(t, classify.OutcomeStable, res.Outcome)
	assert.Equal(t, classify.Class4, res.Class)
	assert.Equal(t, 0.50, res.Confidence)
}

func TestClassifyDefault(t *testing.T) {
	cases := []struct {
		name    string
		n       int
		entropy float64
	}{
		{"ShortHistory", 49, 0.5},
		{"LowEntropy", 60, 0.2},
		{"HighEntropy", 60, 0.9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := classify.Classify(synthetic(constant(tc.n, 100), constant(tc.n, tc.entropy), nil))
			assert.Equal(t, classify.OutcomeStable, res.Outcome)
			assert.Equal(t, classify.Class2Stable, res.Class)
			assert.Equal(t, 0.70, res.Confidence)
			assert.False(t, res.Details.CycleDetected)
		})
	}
}

func TestDetectCycle(t *testing.T) {
	cases := []struct {
		name   string
		fps    []uint32
		period int
		ok     bool
	}{
		{"FixedPoint", []uint32{7, 7, 7, 7}, 1, true},
		{"PeriodThree", []uint32{1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3}, 3, true},
		{"RepeatFailsVerification", []uint32{1, 2, 1, 3, 4, 5, 6, 7, 8, 9}, 0, false},
		{"RepeatTooLateToVerify", []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 7}, 2, true},
		{"NoRepeat", []uint32{1, 2, 3, 4, 5}, 0, false},
		{"Empty", nil, 0, false},
		{
			"RepeatOutsideWindow",
			[]uint32{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34},
			0, false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			period, ok := classify.DetectCycle(tc.fps)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.period, period)
		})
	}
}

func TestPopulationTrend(t *testing.T) {
	assert.Equal(t, classify.TrendOscillating, classify.PopulationTrend([]float64{10, 100, 10, 100, 10, 100}))
	assert.Equal(t, classify.TrendShrinking, classify.PopulationTrend([]float64{100, 99, 98, 97, 96, 95, 94, 93, 92, 91}))
	assert.Equal(t, classify.TrendGrowing, classify.PopulationTrend([]float64{91, 92, 93, 94, 95, 96, 97, 98, 99, 100}))
	assert.Equal(t, classify.TrendStable, classify.PopulationTrend([]float64{50, 50, 50, 50}))
	assert.Equal(t, classify.TrendStable, classify.PopulationTrend([]float64{0, 0, 0}))
	assert.Equal(t, classify.TrendStable, classify.PopulationTrend([]float64{5}))
}

func TestEntropyTrend(t *testing.T) {
	assert.Equal(t, classify.TrendIncreasing, classify.EntropyTrend([]float64{0.40, 0.41, 0.42, 0.43, 0.44, 0.45, 0.46, 0.47, 0.48, 0.49}))
	assert.Equal(t, classify.TrendDecreasing, classify.EntropyTrend([]float64{0.49, 0.48, 0.47, 0.46, 0.45, 0.44, 0.43, 0.42, 0.41, 0.40}))
	assert.Equal(t, classify.TrendFluctuating, classify.EntropyTrend([]float64{0.1, 0.9, 0.1, 0.9}))
	assert.Equal(t, classify.TrendStable, classify.EntropyTrend([]float64{0.5, 0.5005, 0.501}))
}

package classify

import "math"

const (
	cycleWindowFraction = 0.5
	cycleWindowMin      = 10

	trendWindowFraction = 0.3
	trendWindowMin      = 2

	populationCoVLimit   = 0.3
	populationTrendShare = 0.6

	entropyStdDevLimit = 0.1
	entropyTrendShare  = 0.7
	entropyDeadband    = 0.001
)

// DetectCycle looks for a repeated fingerprint in the trailing half of the
// sequence (at least 10 samples) and returns the period of the first repeat
// that verifies. A repeat at i of a value first seen at j verifies when
// [j, j+p) equals [j+p, j+2p), or when two periods do not fit in the window.
func DetectCycle(fingerprints []uint32) (period int, ok bool) {
	window := tail(fingerprints, cycleWindowFraction, cycleWindowMin)
	first := make(map[uint32]int, len(window))
	for i, fp := range window {
		j, seen := first[fp]
		if !seen {
			first[fp] = i
			continue
		}
		p := i - j
		if verifyCycle(window, j, p) {
			return p, true
		}
	}
	return 0, false
}

func verifyCycle(seq []uint32, start, period int) bool {
	if start+2*period > len(seq) {
		return true
	}
	for k := 0; k < period; k++ {
		if seq[start+k] != seq[start+period+k] {
			return false
		}
	}
	return true
}

// PopulationTrend classifies the trailing 30% of population samples.
func PopulationTrend(populations []float64) Trend {
	w := tail(populations, trendWindowFraction, trendWindowMin)
	if len(w) < trendWindowMin {
		return TrendStable
	}
	m := mean(w)
	if m == 0 {
		return TrendStable
	}
	if math.Sqrt(variance(w))/m > populationCoVLimit {
		return TrendOscillating
	}
	inc, dec := 0, 0
	for i := 1; i < len(w); i++ {
		switch {
		case w[i] > w[i-1]:
			inc++
		case w[i] < w[i-1]:
			dec++
		}
	}
	pairs := float64(len(w) - 1)
	switch {
	case float64(inc)/pairs > populationTrendShare:
		return TrendGrowing
	case float64(dec)/pairs > populationTrendShare:
		return TrendShrinking
	}
	return TrendStable
}

// EntropyTrend classifies the trailing 30% of entropy samples.
func EntropyTrend(entropies []float64) Trend {
	w := tail(entropies, trendWindowFraction, trendWindowMin)
	if len(w) < trendWindowMin {
		return TrendStable
	}
	if math.Sqrt(variance(w)) > entropyStdDevLimit {
		return TrendFluctuating
	}
	inc, dec := 0, 0
	for i := 1; i < len(w); i++ {
		d := w[i] - w[i-1]
		switch {
		case d > entropyDeadband:
			inc++
		case d < -entropyDeadband:
			dec++
		}
	}
	pairs := float64(len(w) - 1)
	switch {
	case float64(inc)/pairs > entropyTrendShare:
		return TrendIncreasing
	case float64(dec)/pairs > entropyTrendShare:
		return TrendDecreasing
	}
	return TrendStable
}

// tail returns the last max(ceil(fraction*len), minimum) elements, capped at len.
func tail[T any](values []T, fraction float64, minimum int) []T {
	k := int(math.Ceil(float64(len(values)) * fraction))
	if k < minimum {
		k = minimum
	}
	if k > len(values) {
		k = len(values)
	}
	return values[len(values)-k:]
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	s := 0.0
	for _, v := range values {
		s += v
	}
	return s / float64(len(values))
}

// variance is the population variance.
func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	s := 0.0
	for _, v := range values {
		d := v - m
		s += d * d
	}
	return s / float64(len(values))
}

// Package rule implements totalistic birth/survival rules: the next state of a
// cell depends only on whether it is alive and how many of its neighbors are.
package rule

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ThresholdKind tags whether a ThresholdSpec holds neighbor counts or
// fractions of the maximum neighbor count.
type ThresholdKind uint8

const (
	// KindAbsolute thresholds are plain neighbor counts.
	KindAbsolute ThresholdKind = iota
	// KindRelative thresholds are fractions in [0, 1] of the maximum neighbor count.
	KindRelative
)

// ThresholdSpec lists the neighbor counts of one set of a rule. A spec is
// either all absolute or all relative.
type ThresholdSpec struct {
	Kind     ThresholdKind
	Counts   []int
	Fraction []float64
}

// Absolute builds a spec from neighbor counts.
func Absolute(counts ...int) ThresholdSpec {
	return ThresholdSpec{Kind: KindAbsolute, Counts: counts}
}

// Relative builds a spec from fractions of the maximum neighbor count.
func Relative(fractions ...float64) ThresholdSpec {
	return ThresholdSpec{Kind: KindRelative, Fraction: fractions}
}

// ParseThresholds reads a comma separated list. Items containing a decimal
// point are fractions, all others are counts. An empty string is an empty set.
func ParseThresholds(s string) (ThresholdSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Absolute(), nil
	}
	var counts []int
	var fractions []float64
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if strings.Contains(item, ".") {
			f, err := strconv.ParseFloat(item, 64)
			if err != nil {
				return ThresholdSpec{}, fmt.Errorf("rule: threshold %q: %w", item, err)
			}
			fractions = append(fractions, f)
			continue
		}
		n, err := strconv.Atoi(item)
		if err != nil {
			return ThresholdSpec{}, fmt.Errorf("rule: threshold %q: %w", item, err)
		}
		counts = append(counts, n)
	}
	if len(counts) > 0 && len(fractions) > 0 {
		return ThresholdSpec{}, fmt.Errorf("%w: %q", ErrMixedThresholds, s)
	}
	if len(fractions) > 0 {
		return Relative(fractions...), nil
	}
	return Absolute(counts...), nil
}

// String renders the spec in the form ParseThresholds accepts.
func (s ThresholdSpec) String() string {
	parts := make([]string, 0, len(s.Counts)+len(s.Fraction))
	if s.Kind == KindRelative {
		for _, f := range s.Fraction {
			str := strconv.FormatFloat(f, 'f', -1, 64)
			if !strings.Contains(str, ".") {
				str += ".0"
			}
			parts = append(parts, str)
		}
	} else {
		for _, c := range s.Counts {
			parts = append(parts, strconv.Itoa(c))
		}
	}
	return strings.Join(parts, ",")
}

// resolve converts the spec into absolute neighbor counts.
func (s ThresholdSpec) resolve(set string, maxNeighbors int) ([]int, error) {
	switch s.Kind {
	case KindAbsolute:
		if len(s.Fraction) > 0 {
			return nil, fmt.Errorf("%w: %s set carries fractions in an absolute spec", ErrMixedThresholds, set)
		}
		for _, c := range s.Counts {
			if c < 0 || c > maxNeighbors {
				return nil, fmt.Errorf("%w: %s count %d not in [0, %d]", ErrThresholdRange, set, c, maxNeighbors)
			}
		}
		return s.Counts, nil
	case KindRelative:
		if len(s.Counts) > 0 {
			return nil, fmt.Errorf("%w: %s set carries counts in a relative spec", ErrMixedThresholds, set)
		}
		out := make([]int, 0, len(s.Fraction))
		for _, f := range s.Fraction {
			if math.IsNaN(f) || f < 0 || f > 1 {
				return nil, fmt.Errorf("%w: %s fraction %v not in [0, 1]", ErrThresholdRange, set, f)
			}
			out = append(out, int(math.Round(f*float64(maxNeighbors))))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("rule: %s set has unknown threshold kind %d", set, s.Kind)
	}
}

// Rule is an immutable totalistic birth/survival rule.
type Rule struct {
	birth        []bool
	survival     []bool
	maxNeighbors int
}

// FromThresholds normalizes both specs against maxNeighbors and builds a Rule.
func FromThresholds(birth, survival ThresholdSpec, maxNeighbors int) (Rule, error) {
	if maxNeighbors < 0 {
		return Rule{}, fmt.Errorf("%w: got %d", ErrMaxNeighbors, maxNeighbors)
	}
	b, err := birth.resolve("birth", maxNeighbors)
	if err != nil {
		return Rule{}, err
	}
	s, err := survival.resolve("survival", maxNeighbors)
	if err != nil {
		return Rule{}, err
	}
	r := Rule{
		birth:        make([]bool, maxNeighbors+1),
		survival:     make([]bool, maxNeighbors+1),
		maxNeighbors: maxNeighbors,
	}
	for _, c := range b {
		r.birth[c] = true
	}
	for _, c := range s {
		r.survival[c] = true
	}
	return r, nil
}

// Conway returns B3/S23 over the 8-cell Moore neighborhood.
func Conway() Rule {
	r, _ := FromThresholds(Absolute(3), Absolute(2, 3), 8)
	return r
}

// ShouldBeAlive applies the rule to a single cell.
func (r Rule) ShouldBeAlive(current uint8, neighbors int) bool {
	if neighbors < 0 || neighbors > r.maxNeighbors {
		return false
	}
	if current != 0 {
		return r.survival[neighbors]
	}
	return r.birth[neighbors]
}

// MaxNeighbors reports the neighbor count the rule was normalized against.
func (r Rule) MaxNeighbors() int { return r.maxNeighbors }

// Birth lists the neighbor counts that bring a dead cell to life, ascending.
func (r Rule) Birth() []int { return members(r.birth) }

// Survival lists the neighbor counts that keep a live cell alive, ascending.
func (r Rule) Survival() []int { return members(r.survival) }

// String renders the rule in B/S notation, in the form Parse reads back.
// When every count of both sets is a single digit the counts are
// concatenated ("B3/S23"). Otherwise both sets are comma separated and a
// one-count set carries a trailing comma so it is not read as digits
// ("B10,/S4,5").
func (r Rule) String() string {
	birth, survival := r.Birth(), r.Survival()
	wide := slices.ContainsFunc(birth, multiDigit) || slices.ContainsFunc(survival, multiDigit)
	return "B" + joinCounts(birth, wide) + "/S" + joinCounts(survival, wide)
}

func multiDigit(c int) bool { return c > 9 }

func members(set []bool) []int {
	var out []int
	for c, ok := range set {
		if ok {
			out = append(out, c)
		}
	}
	return out
}

func joinCounts(counts []int, wide bool) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = strconv.Itoa(c)
	}
	if !wide {
		return strings.Join(parts, "")
	}
	out := strings.Join(parts, ",")
	if len(counts) == 1 {
		out += ","
	}
	return out
}

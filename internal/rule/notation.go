package rule

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a rule in B/S notation, e.g. "B3/S23" or "B5,6,7/S4,5,6,10",
// and normalizes it against maxNeighbors.
func Parse(s string, maxNeighbors int) (Rule, error) {
	birth, survival, err := ParseNotation(s)
	if err != nil {
		return Rule{}, err
	}
	return FromThresholds(birth, survival, maxNeighbors)
}

// ParseNotation splits B/S notation into absolute birth and survival specs.
// Digit runs without commas are read one count per digit; a comma anywhere
// switches to comma separated counts, and a single trailing comma is allowed
// so a lone multi-digit count can be written ("B10,/S4"). Either part may be
// empty ("B3/S") and the parts may appear in either order.
func ParseNotation(s string) (birth, survival ThresholdSpec, err error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return ThresholdSpec{}, ThresholdSpec{}, fmt.Errorf("%w: %q", ErrNotation, s)
	}
	var seenB, seenS bool
	for _, part := range parts {
		if part == "" {
			return ThresholdSpec{}, ThresholdSpec{}, fmt.Errorf("%w: %q", ErrNotation, s)
		}
		counts, err := parseCounts(part[1:])
		if err != nil {
			return ThresholdSpec{}, ThresholdSpec{}, fmt.Errorf("%w: %q: %v", ErrNotation, s, err)
		}
		switch part[0] {
		case 'B', 'b':
			if seenB {
				return ThresholdSpec{}, ThresholdSpec{}, fmt.Errorf("%w: %q repeats the birth set", ErrNotation, s)
			}
			seenB, birth = true, Absolute(counts...)
		case 'S', 's':
			if seenS {
				return ThresholdSpec{}, ThresholdSpec{}, fmt.Errorf("%w: %q repeats the survival set", ErrNotation, s)
			}
			seenS, survival = true, Absolute(counts...)
		default:
			return ThresholdSpec{}, ThresholdSpec{}, fmt.Errorf("%w: %q", ErrNotation, s)
		}
	}
	return birth, survival, nil
}

func parseCounts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var out []int
	if strings.Contains(s, ",") {
		s = strings.TrimSuffix(s, ",")
		for _, item := range strings.Split(s, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(item))
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("unexpected %q", ch)
		}
		out = append(out, int(ch-'0'))
	}
	return out, nil
}

package rule

import "errors"

var (
	// ErrMixedThresholds indicates a set mixing absolute counts and fractions.
	ErrMixedThresholds = errors.New("rule: absolute and relative thresholds cannot be mixed in one set")
	// ErrThresholdRange indicates a count outside [0, maxNeighbors] or a fraction outside [0, 1].
	ErrThresholdRange = errors.New("rule: threshold out of range")
	// ErrMaxNeighbors indicates a negative maximum neighbor count.
	ErrMaxNeighbors = errors.New("rule: max neighbor count must be non-negative")
	// ErrNotation indicates malformed B/S rule notation.
	ErrNotation = errors.New("rule: malformed B/S notation")
)

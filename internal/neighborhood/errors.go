package neighborhood

import "errors"

var (
	// ErrInvalidDimension indicates a missing or non-positive axis size.
	ErrInvalidDimension = errors.New("neighborhood: dimensions must be positive")
	// ErrInvalidRange indicates a range below 1.
	ErrInvalidRange = errors.New("neighborhood: range must be at least 1")
	// ErrUnknownTopology indicates a topology other than Moore or von Neumann.
	ErrUnknownTopology = errors.New("neighborhood: unknown topology")
)

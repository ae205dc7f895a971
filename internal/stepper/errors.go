package stepper

import "errors"

var (
	// ErrNilGrid indicates a missing initial grid.
	ErrNilGrid = errors.New("stepper: initial grid is nil")
	// ErrRankMismatch indicates offsets whose length differs from the grid rank.
	ErrRankMismatch = errors.New("stepper: neighborhood rank does not match grid rank")
	// ErrInvalidSteps indicates a negative step count.
	ErrInvalidSteps = errors.New("stepper: steps must be non-negative")
	// ErrInvalidInterval indicates a metrics interval below 1.
	ErrInvalidInterval = errors.New("stepper: metrics interval must be at least 1")
)

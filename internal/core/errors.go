package core

import "errors"

var (
	// ErrInvalidDimension indicates a missing or non-positive axis size.
	ErrInvalidDimension = errors.New("core: dimensions must be positive")
	// ErrCellCount indicates a cell buffer whose length does not match the dimensions.
	ErrCellCount = errors.New("core: cell buffer length does not match dimensions")
	// ErrInvalidDensity indicates an initial density outside [0, 1].
	ErrInvalidDensity = errors.New("core: density must be within [0, 1]")
)

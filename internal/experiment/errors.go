package experiment

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDimensions is returned when a config names no grid axes.
	ErrNoDimensions = errors.New("experiment: at least one dimension is required")
	// ErrNonPositiveDimension is returned for an axis length below 1.
	ErrNonPositiveDimension = errors.New("experiment: dimensions must be positive")
	// ErrDensityRange is returned when the seed density is outside [0, 1].
	ErrDensityRange = errors.New("experiment: density must be within [0, 1]")
	// ErrNegativeSteps is returned for a negative step count.
	ErrNegativeSteps = errors.New("experiment: steps must be non-negative")
	// ErrInterval is returned for a metrics interval below 1.
	ErrInterval = errors.New("experiment: interval must be at least 1")
	// ErrSnapshotShape is returned when a snapshot does not fit the config's grid.
	ErrSnapshotShape = errors.New("experiment: snapshot shape does not match config")
)

// ConfigError reports which configuration key was rejected.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("experiment: invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(field, value string, err error) error {
	return &ConfigError{Field: field, Value: value, Err: err}
}

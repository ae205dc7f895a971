package model

import (
	"time"

	"ndca/internal/classify"
	"ndca/internal/stepper"
)

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// ExperimentRecord is the persisted summary of one experiment. Params holds
// the configuration in its flag-style key/value form.
type ExperimentRecord struct {
	VersionedRecord
	ID             string                    `json:"id"`
	Params         map[string]string         `json:"params"`
	Rule           string                    `json:"rule"`
	Steps          int                       `json:"steps"`
	Classification classify.Result           `json:"classification"`
	History        []stepper.EnhancedMetrics `json:"history"`
	StartedAt      time.Time                 `json:"started_at"`
	Elapsed        time.Duration             `json:"elapsed"`
}

// Snapshot is everything needed to restore a grid byte-for-byte and resume
// its evolution.
type Snapshot struct {
	VersionedRecord
	ExperimentID string                    `json:"experiment_id"`
	Dimensions   []int                     `json:"dimensions"`
	Cells        []byte                    `json:"cells"`
	Step         int                       `json:"step"`
	History      []stepper.EnhancedMetrics `json:"history"`
}

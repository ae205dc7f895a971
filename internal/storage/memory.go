package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"ndca/internal/model"
)

var errNotInitialized = errors.New("store is not initialized")

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	experiments map[string]model.ExperimentRecord
	snapshots   map[string]model.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.experiments = make(map[string]model.ExperimentRecord)
	s.snapshots = make(map[string]model.Snapshot)
	return nil
}

func (s *MemoryStore) SaveExperiment(_ context.Context, record model.ExperimentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	s.experiments[record.ID] = record
	return nil
}

func (s *MemoryStore) GetExperiment(_ context.Context, id string) (model.ExperimentRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return model.ExperimentRecord{}, false, errNotInitialized
	}
	record, ok := s.experiments[id]
	return record, ok, nil
}

// ListExperiments returns every record ordered by start time, then ID.
func (s *MemoryStore) ListExperiments(_ context.Context) ([]model.ExperimentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, errNotInitialized
	}
	out := make([]model.ExperimentRecord, 0, len(s.experiments))
	for _, record := range s.experiments {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.Before(out[j].StartedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) SaveSnapshot(_ context.Context, snapshot model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	snapshot.Cells = append([]byte(nil), snapshot.Cells...)
	s.snapshots[snapshot.ExperimentID] = snapshot
	return nil
}

func (s *MemoryStore) GetSnapshot(_ context.Context, experimentID string) (model.Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return model.Snapshot{}, false, errNotInitialized
	}
	snapshot, ok := s.snapshots[experimentID]
	if ok {
		snapshot.Cells = append([]byte(nil), snapshot.Cells...)
	}
	return snapshot, ok, nil
}

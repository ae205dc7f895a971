package storage

import (
	"errors"
	"fmt"
	"io"
)

// Backend names accepted by NewStore and the rule-sweep -store flag.
const (
	KindMemory = "memory"
	KindSQLite = "sqlite"
)

var (
	// ErrUnknownStore is returned by NewStore for a backend name it does not
	// recognise.
	ErrUnknownStore = errors.New("unknown experiment store")
	// ErrSQLiteUnavailable is returned when the sqlite backend is requested
	// from a binary built without the sqlite tag.
	ErrSQLiteUnavailable = errors.New("experiment store built without sqlite support (rebuild with -tags sqlite)")
)

// NewStore picks the backend that persists experiment records and
// snapshots. An empty kind means memory. dbPath is only read by sqlite.
// The store still needs Init before use.
func NewStore(kind, dbPath string) (Store, error) {
	switch kind {
	case "", KindMemory:
		return NewMemoryStore(), nil
	case KindSQLite:
		return newSQLiteStore(dbPath)
	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", ErrUnknownStore, kind, KindMemory, KindSQLite)
	}
}

// CloseStore releases the backend's handle, if it holds one. The memory
// store has nothing to release.
func CloseStore(store Store) error {
	if c, ok := store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

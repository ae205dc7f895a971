//go:build !sqlite

package storage

import "fmt"

func newSQLiteStore(dbPath string) (Store, error) {
	return nil, fmt.Errorf("open %s: %w", dbPath, ErrSQLiteUnavailable)
}

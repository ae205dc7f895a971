//go:build sqlite

package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"ndca/internal/model"
)

func TestSQLiteStoreExperimentAndSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "ndca.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	base := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	for i, id := range []string{"late", "early"} {
		record := sampleRecord(id, base.Add(time.Duration(1-i)*time.Minute))
		if err := store.SaveExperiment(ctx, record); err != nil {
			t.Fatalf("save experiment %s: %v", id, err)
		}
	}

	loaded, ok, err := store.GetExperiment(ctx, "early")
	if err != nil {
		t.Fatalf("get experiment: %v", err)
	}
	if !ok {
		t.Fatal("expected experiment early")
	}
	if loaded.Classification.Class != "class2_stable" || len(loaded.History) != 2 {
		t.Fatalf("unexpected experiment loaded: %+v", loaded)
	}

	list, err := store.ListExperiments(ctx)
	if err != nil {
		t.Fatalf("list experiments: %v", err)
	}
	if len(list) != 2 || list[0].ID != "early" {
		t.Fatalf("expected start-time ordering, got %+v", list)
	}

	snap := model.Snapshot{
		VersionedRecord: CurrentVersion(),
		ExperimentID:    "early",
		Dimensions:      []int{2, 3},
		Cells:           []byte{1, 0, 1, 0, 1, 0},
		Step:            40,
		History:         loaded.History,
	}
	if err := store.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}
	gotSnap, ok, err := store.GetSnapshot(ctx, "early")
	if err != nil || !ok {
		t.Fatalf("get snapshot: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(gotSnap.Cells, snap.Cells) || gotSnap.Step != 40 {
		t.Fatalf("unexpected snapshot: %+v", gotSnap)
	}

	if _, ok, err := store.GetSnapshot(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected missing snapshot, ok=%v err=%v", ok, err)
	}
}

func TestNewStoreSQLite(t *testing.T) {
	store, err := NewStore(KindSQLite, filepath.Join(t.TempDir(), "factory.db"))
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := CloseStore(store); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestSQLiteStoreConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "concurrent.db"))
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	const writers, perWriter = 8, 25
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	errs := make(chan error, writers*perWriter*2)
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				id := fmt.Sprintf("w%d-%d", w, i)
				if err := store.SaveExperiment(ctx, sampleRecord(id, base.Add(time.Duration(i)*time.Second))); err != nil {
					errs <- err
				}
				snap := model.Snapshot{VersionedRecord: CurrentVersion(), ExperimentID: id, Dimensions: []int{2}, Cells: []byte{1, 0}, Step: i}
				if err := store.SaveSnapshot(ctx, snap); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent save: %v", err)
	}

	list, err := store.ListExperiments(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != writers*perWriter {
		t.Fatalf("expected %d experiments, got %d", writers*perWriter, len(list))
	}
}

package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitd.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	defer store.Close()

	if _, err := store.Load(t.Context()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}

	blob := []byte(`{"habits":[],"history":{},"viewMode":"week"}`)
	if err := store.Save(t.Context(), blob); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := store.Load(t.Context())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(got) != string(blob) {
		t.Fatalf("round trip mismatch: %s", got)
	}

	// Saving again overwrites the single snapshot row.
	updated := []byte(`{"habits":[],"history":{},"viewMode":"month"}`)
	if err := store.Save(t.Context(), updated); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	got, err = store.Load(t.Context())
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if string(got) != string(updated) {
		t.Fatalf("overwrite mismatch: %s", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}

	if _, err := store.Load(t.Context()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first save, got %v", err)
	}

	blob := []byte(`{"habits":[]}`)
	if err := store.Save(t.Context(), blob); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := store.Load(t.Context())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(got) != string(blob) {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

func TestFileStoreRejectsEmptyPath(t *testing.T) {
	if _, err := NewFileStore("   "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestMemoryStoreSeedAndFail(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Load(t.Context()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	store.Seed([]byte("seeded"))
	got, err := store.Load(t.Context())
	if err != nil || string(got) != "seeded" {
		t.Fatalf("seeded load = %q, %v", got, err)
	}

	boom := errors.New("disk full")
	store.FailSaves(boom)
	if err := store.Save(t.Context(), []byte("x")); !errors.Is(err, boom) {
		t.Fatalf("expected injected failure, got %v", err)
	}
	got, _ = store.Load(t.Context())
	if string(got) != "seeded" {
		t.Fatal("failed save must not clobber the stored blob")
	}
}

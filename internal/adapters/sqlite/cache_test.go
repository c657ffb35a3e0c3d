package sqlite

import (
	"reflect"
	"testing"

	"notelink/internal/domain"
)

func openCache(t *testing.T, vault string) *Cache {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	c := NewCache()
	if err := c.Open(vault); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestLoad_EmptyCacheReturnsNil(t *testing.T) {
	c := openCache(t, t.TempDir())

	snap, err := c.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap != nil {
		t.Errorf("expected nil snapshot from an empty cache, got %+v", snap)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c := openCache(t, t.TempDir())

	saved := domain.IndexSnapshot{
		Entries: []domain.TitleEntry{
			{Title: "Project Alpha", Path: "work/Project Alpha.md"},
			{Title: "Beta", Path: "Beta.md"},
		},
		Fresh: true,
	}
	if err := c.Save(saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := c.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a snapshot")
	}
	if !loaded.Fresh {
		t.Error("freshness not persisted")
	}
	if !reflect.DeepEqual(loaded.Entries, saved.Entries) {
		t.Errorf("entries differ:\nsaved  %v\nloaded %v", saved.Entries, loaded.Entries)
	}
}

func TestSave_ReplacesPreviousSnapshot(t *testing.T) {
	c := openCache(t, t.TempDir())

	if err := c.Save(domain.IndexSnapshot{
		Entries: []domain.TitleEntry{{Title: "Old", Path: "old.md"}},
		Fresh:   true,
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := c.Save(domain.IndexSnapshot{
		Entries: []domain.TitleEntry{{Title: "New", Path: "new.md"}},
		Fresh:   false,
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := c.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Entries) != 1 || loaded.Entries[0].Path != "new.md" {
		t.Errorf("expected only the new snapshot, got %v", loaded.Entries)
	}
	if loaded.Fresh {
		t.Error("expected a stale snapshot")
	}
}

func TestClear(t *testing.T) {
	c := openCache(t, t.TempDir())

	if err := c.Save(domain.IndexSnapshot{
		Entries: []domain.TitleEntry{{Title: "Alpha", Path: "a.md"}},
		Fresh:   true,
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	snap, err := c.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap != nil {
		t.Errorf("expected nil snapshot after Clear, got %+v", snap)
	}
}

func TestOpen_SeparateDatabasesPerVault(t *testing.T) {
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)

	vaultA, vaultB := t.TempDir(), t.TempDir()

	a := NewCache()
	if err := a.Open(vaultA); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer a.Close()

	b := NewCache()
	if err := b.Open(vaultB); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer b.Close()

	if err := a.Save(domain.IndexSnapshot{
		Entries: []domain.TitleEntry{{Title: "Alpha", Path: "a.md"}},
		Fresh:   true,
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	snap, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap != nil {
		t.Errorf("vaults must not share cache state, got %+v", snap)
	}
}

func TestOpen_SnapshotSurvivesReopen(t *testing.T) {
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)
	vault := t.TempDir()

	c := NewCache()
	if err := c.Open(vault); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := c.Save(domain.IndexSnapshot{
		Entries: []domain.TitleEntry{{Title: "Alpha", Path: "a.md"}},
		Fresh:   true,
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	c.Close()

	reopened := NewCache()
	if err := reopened.Open(vault); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	snap, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap == nil || len(snap.Entries) != 1 {
		t.Errorf("expected the snapshot to survive a reopen, got %+v", snap)
	}
}

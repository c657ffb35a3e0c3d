package commands

import (
	"context"
	"testing"

	"notelink/internal/domain"
)

func TestRefreshCommand_NoopWhenFresh(t *testing.T) {
	ix := domain.NewTitleIndex()
	if err := ix.Rebuild(context.Background(), nil, domain.ScanConfig{}, nil); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}

	collection := &fakeCollection{err: contextErr()}
	cmd := NewRefreshCommand(collection, ix, nil, domain.ScanConfig{})

	// A fresh index must not touch the collection at all.
	if err := cmd.Execute(context.Background()); err != nil {
		t.Errorf("expected a no-op, got %v", err)
	}
}

func contextErr() error {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx.Err()
}

func TestRefreshCommand_AdoptsFreshSnapshot(t *testing.T) {
	cache := &fakeCache{snap: &domain.IndexSnapshot{
		Entries: []domain.TitleEntry{{Title: "Alpha", Path: "a.md"}},
		Fresh:   true,
	}}
	collection := &fakeCollection{err: contextErr()}
	ix := domain.NewTitleIndex()

	cmd := NewRefreshCommand(collection, ix, cache, domain.ScanConfig{})
	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if ix.Len() != 1 || !ix.IsFresh() {
		t.Errorf("expected the snapshot to be adopted, len=%d fresh=%t", ix.Len(), ix.IsFresh())
	}
}

func TestRefreshCommand_RebuildsOnStaleSnapshot(t *testing.T) {
	cache := &fakeCache{snap: &domain.IndexSnapshot{
		Entries: []domain.TitleEntry{{Title: "Old", Path: "old.md"}},
		Fresh:   false,
	}}
	collection := &fakeCollection{docs: []domain.Document{
		{Path: "a.md", Basename: "Alpha", Extension: "md"},
	}}
	ix := domain.NewTitleIndex()

	cmd := NewRefreshCommand(collection, ix, cache, domain.ScanConfig{})
	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if ix.Len() != 1 || ix.Entries()[0].Title != "Alpha" {
		t.Errorf("expected a rebuild from the collection, got %v", ix.Entries())
	}
	if cache.saves != 1 {
		t.Errorf("rebuild should persist a new snapshot, saves=%d", cache.saves)
	}
}

func TestRefreshCommand_RebuildsWithoutCache(t *testing.T) {
	collection := &fakeCollection{docs: []domain.Document{
		{Path: "a.md", Basename: "Alpha", Extension: "md"},
	}}
	ix := domain.NewTitleIndex()

	cmd := NewRefreshCommand(collection, ix, nil, domain.ScanConfig{})
	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !ix.IsFresh() {
		t.Error("expected a fresh index after rebuild")
	}
}

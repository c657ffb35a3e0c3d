package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"notelink/internal/domain"
)

func waitForEvent(t *testing.T, events <-chan domain.DocumentEvent, path string) domain.DocumentEvent {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatal("event channel closed before the expected event")
			}
			if ev.Path == path {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for an event on %s", path)
		}
	}
}

func TestWatcher_FileCreateAndRemove(t *testing.T) {
	root := t.TempDir()

	w := New(root)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	notePath := filepath.Join(root, "Project Alpha.md")
	if err := os.WriteFile(notePath, []byte("hello"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	ev := waitForEvent(t, w.Events(), "Project Alpha.md")
	if ev.Kind != domain.EventAdded {
		t.Errorf("expected an added event, got %s", ev.Kind)
	}
	if ev.Doc.Basename != "Project Alpha" || ev.Doc.Extension != "md" {
		t.Errorf("unexpected document: %+v", ev.Doc)
	}

	if err := os.Remove(notePath); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	ev = waitForEvent(t, w.Events(), "Project Alpha.md")
	if ev.Kind != domain.EventRemoved {
		t.Errorf("expected a removed event, got %s", ev.Kind)
	}
}

func TestWatcher_NewDirectoryIsWatched(t *testing.T) {
	root := t.TempDir()

	w := New(root)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.Mkdir(filepath.Join(root, "work"), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	// Give fsnotify a moment to register the new directory.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(root, "work", "Beta.md"), []byte("x"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	ev := waitForEvent(t, w.Events(), "work/Beta.md")
	if ev.Kind != domain.EventAdded {
		t.Errorf("expected an added event, got %s", ev.Kind)
	}
}

func TestWatcher_StopClosesEvents(t *testing.T) {
	root := t.TempDir()

	w := New(root)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	w.Stop()
	w.Stop() // safe to call twice

	select {
	case _, ok := <-w.Events():
		if ok {
			t.Error("expected the channel to close without events")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("event channel not closed after Stop")
	}
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"note.md", false},
		{"work/note.md", false},
		{".obsidian/app.json", true},
		{"work/.trash/old.md", true},
		{".hidden", true},
	}

	for _, tt := range tests {
		if got := isHidden(tt.path); got != tt.want {
			t.Errorf("isHidden(%q): expected %t, got %t", tt.path, tt.want, got)
		}
	}
}

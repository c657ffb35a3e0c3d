package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"notelink/internal/adapters/filesystem"
	"notelink/internal/domain"
	"notelink/internal/ports"
)

// eventBufferSize is the capacity of the outgoing event channel.
const eventBufferSize = 256

// Watcher emits document added/removed events for a vault directory using
// fsnotify. Directories are registered recursively; new directories are
// picked up as they appear. Content writes are ignored since titles depend
// only on filenames.
type Watcher struct {
	root string

	fsw    *fsnotify.Watcher
	events chan domain.DocumentEvent

	stopOnce sync.Once
	stopped  chan struct{}
}

var _ ports.CollectionWatcher = (*Watcher)(nil)

// New creates a watcher for the vault rooted at root.
func New(root string) *Watcher {
	return &Watcher{
		root:    root,
		events:  make(chan domain.DocumentEvent, eventBufferSize),
		stopped: make(chan struct{}),
	}
}

// Start registers the vault's directory tree and begins emitting events.
// The watcher runs until Stop is called or the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	w.fsw = fsw

	if err := w.addTree(w.root); err != nil {
		fsw.Close()
		return err
	}

	go w.run(ctx)
	return nil
}

// Events returns the change event stream. The channel is closed when the
// watcher stops.
func (w *Watcher) Events() <-chan domain.DocumentEvent {
	return w.events
}

// Stop stops the watcher. Safe to call more than once.
func (w *Watcher) Stop() error {
	w.stopOnce.Do(func() { close(w.stopped) })
	return nil
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.events)
	defer w.fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopped:
			return

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("watch error", slog.String("error", err.Error()))

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ctx, ev)
		}
	}
}

func (w *Watcher) handle(ctx context.Context, ev fsnotify.Event) {
	relPath, err := filepath.Rel(w.root, ev.Name)
	if err != nil || isHidden(relPath) {
		return
	}

	switch {
	case ev.Op.Has(fsnotify.Create):
		info, err := os.Stat(ev.Name)
		if err != nil {
			return
		}
		if info.IsDir() {
			// A directory created with contents yields no per-file events,
			// so walk it once.
			if err := w.addTree(ev.Name); err != nil {
				slog.Warn("failed to watch new directory",
					slog.String("path", relPath),
					slog.String("error", err.Error()))
			}
			w.emitExisting(ctx, ev.Name)
			return
		}
		w.emit(ctx, domain.DocumentEvent{
			Kind: domain.EventAdded,
			Doc:  filesystem.DescribeFile(relPath),
			Path: filepath.ToSlash(relPath),
		})

	case ev.Op.Has(fsnotify.Remove), ev.Op.Has(fsnotify.Rename):
		// The entry is already gone; report the path and let the index
		// discard whatever it holds for it.
		w.emit(ctx, domain.DocumentEvent{
			Kind: domain.EventRemoved,
			Path: filepath.ToSlash(relPath),
		})
	}
}

// addTree registers dir and every non-hidden subdirectory.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != w.root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// emitExisting reports files that already exist under a newly created
// directory.
func (w *Watcher) emitExisting(ctx context.Context, dir string) {
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		relPath, err := filepath.Rel(w.root, path)
		if err != nil {
			return nil
		}
		w.emit(ctx, domain.DocumentEvent{
			Kind: domain.EventAdded,
			Doc:  filesystem.DescribeFile(relPath),
			Path: filepath.ToSlash(relPath),
		})
		return nil
	})
}

func (w *Watcher) emit(ctx context.Context, ev domain.DocumentEvent) {
	select {
	case w.events <- ev:
	case <-ctx.Done():
	case <-w.stopped:
	}
}

// isHidden reports whether any path segment is a dotfile.
func isHidden(relPath string) bool {
	for _, part := range strings.Split(filepath.ToSlash(relPath), "/") {
		if strings.HasPrefix(part, ".") && part != "." {
			return true
		}
	}
	return false
}

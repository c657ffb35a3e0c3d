package commands

import (
	"context"
	"log/slog"

	"notelink/internal/domain"
	"notelink/internal/ports"
)

// WatchCommand consumes collection change events and keeps the index and
// its persisted snapshot in step with the vault.
type WatchCommand struct {
	watcher ports.CollectionWatcher
	index   *domain.TitleIndex
	cache   ports.IndexCache // may be nil
	Config  domain.ScanConfig
}

// NewWatchCommand creates a new WatchCommand
func NewWatchCommand(watcher ports.CollectionWatcher, index *domain.TitleIndex, cache ports.IndexCache, cfg domain.ScanConfig) *WatchCommand {
	return &WatchCommand{
		watcher: watcher,
		index:   index,
		cache:   cache,
		Config:  cfg,
	}
}

// Execute runs until the context is cancelled or the watcher stops. Each
// event is applied incrementally; the index stays marked stale, which the
// next scan consumes as a signal to reconcile.
func (c *WatchCommand) Execute(ctx context.Context) error {
	if err := c.watcher.Start(ctx); err != nil {
		return err
	}
	defer c.watcher.Stop()

	for ev := range c.watcher.Events() {
		switch ev.Kind {
		case domain.EventAdded:
			c.index.OnDocumentAdded(ev.Doc, c.Config)
		case domain.EventRemoved:
			c.index.OnDocumentRemoved(ev.Path)
		}
		slog.Debug("collection change",
			slog.String("kind", ev.Kind.String()),
			slog.String("path", ev.Path))

		if c.cache != nil {
			if err := c.cache.Save(c.index.Snapshot()); err != nil {
				slog.Warn("failed to save index cache", slog.String("error", err.Error()))
			}
		}
	}
	return ctx.Err()
}

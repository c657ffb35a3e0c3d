package commands

import (
	"context"

	"notelink/internal/domain"
	"notelink/internal/ports"
)

// RefreshCommand brings the index up to date before a scan: a fresh
// persisted snapshot is adopted directly, anything else triggers a full
// rebuild.
type RefreshCommand struct {
	collection ports.DocumentCollection
	index      *domain.TitleIndex
	cache      ports.IndexCache // may be nil
	Config     domain.ScanConfig
	Progress   domain.ProgressSink // may be nil
}

// NewRefreshCommand creates a new RefreshCommand
func NewRefreshCommand(collection ports.DocumentCollection, index *domain.TitleIndex, cache ports.IndexCache, cfg domain.ScanConfig) *RefreshCommand {
	return &RefreshCommand{
		collection: collection,
		index:      index,
		cache:      cache,
		Config:     cfg,
	}
}

// Execute does nothing when the index is already fresh.
func (c *RefreshCommand) Execute(ctx context.Context) error {
	if c.index.IsFresh() {
		return nil
	}

	if c.cache != nil {
		if snap, err := c.cache.Load(); err == nil && snap != nil && snap.Fresh {
			c.index.Adopt(*snap)
			return nil
		}
	}

	rebuild := NewRebuildCommand(c.collection, c.index, c.cache, c.Config)
	rebuild.Progress = c.Progress
	return rebuild.Execute(ctx)
}

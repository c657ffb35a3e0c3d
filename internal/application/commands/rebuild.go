package commands

import (
	"context"
	"fmt"
	"log/slog"

	"notelink/internal/domain"
	"notelink/internal/ports"
)

// RebuildCommand rebuilds the title index from the full collection and
// persists the resulting snapshot.
type RebuildCommand struct {
	collection ports.DocumentCollection
	index      *domain.TitleIndex
	cache      ports.IndexCache // may be nil
	Config     domain.ScanConfig
	Progress   domain.ProgressSink // may be nil
}

// NewRebuildCommand creates a new RebuildCommand
func NewRebuildCommand(collection ports.DocumentCollection, index *domain.TitleIndex, cache ports.IndexCache, cfg domain.ScanConfig) *RebuildCommand {
	return &RebuildCommand{
		collection: collection,
		index:      index,
		cache:      cache,
		Config:     cfg,
	}
}

// Execute lists the collection and rebuilds the index in batches,
// reporting progress along the way. A cancelled rebuild leaves the index
// stale and drops the persisted snapshot so the next startup rebuilds.
func (c *RebuildCommand) Execute(ctx context.Context) error {
	docs, err := c.collection.ListDocuments()
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if err := c.index.Rebuild(ctx, docs, c.Config, c.Progress); err != nil {
		if c.cache != nil {
			if clearErr := c.cache.Clear(); clearErr != nil {
				slog.Warn("failed to clear index cache", slog.String("error", clearErr.Error()))
			}
		}
		return err
	}

	if c.cache != nil {
		if err := c.cache.Save(c.index.Snapshot()); err != nil {
			slog.Warn("failed to save index cache", slog.String("error", err.Error()))
		}
	}
	return nil
}

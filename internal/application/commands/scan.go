package commands

import (
	"context"
	"fmt"

	"notelink/internal/domain"
	"notelink/internal/ports"
)

// ScanCommand finds linkable title occurrences in one document.
type ScanCommand struct {
	index   *domain.TitleIndex
	content ports.ContentProvider
	Path    string
	Config  domain.ScanConfig
}

// NewScanCommand creates a new ScanCommand
func NewScanCommand(index *domain.TitleIndex, content ports.ContentProvider, path string, cfg domain.ScanConfig) *ScanCommand {
	return &ScanCommand{
		index:   index,
		content: content,
		Path:    path,
		Config:  cfg,
	}
}

// Execute reads the document and scans it against the current index.
// Returns ErrNoActiveDocument when no path is set and ErrEmptyResult when
// the scan finds nothing; neither mutates any state.
func (c *ScanCommand) Execute(ctx context.Context) ([]domain.Occurrence, error) {
	if c.Path == "" {
		return nil, domain.ErrNoActiveDocument
	}

	text, err := c.content.Read(c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	occurrences := domain.Scan(text, c.index.Entries(), c.Config)
	if len(occurrences) == 0 {
		return nil, domain.ErrEmptyResult
	}
	return occurrences, nil
}

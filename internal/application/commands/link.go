package commands

import (
	"context"
	"fmt"

	"notelink/internal/domain"
	"notelink/internal/ports"
)

// LinkCommand rewrites a document, converting the selected occurrences
// into bracketed references, and persists the result.
type LinkCommand struct {
	content  ports.ContentProvider
	Path     string
	Selected []domain.Occurrence
	Config   domain.ScanConfig
}

// NewLinkCommand creates a new LinkCommand
func NewLinkCommand(content ports.ContentProvider, path string, selected []domain.Occurrence, cfg domain.ScanConfig) *LinkCommand {
	return &LinkCommand{
		content:  content,
		Path:     path,
		Selected: selected,
		Config:   cfg,
	}
}

// Execute applies the selected replacements and writes the document back.
// With an empty selection the document is left untouched. On a write
// failure the document on disk is unchanged and the error is surfaced.
func (c *LinkCommand) Execute(ctx context.Context) (string, error) {
	if c.Path == "" {
		return "", domain.ErrNoActiveDocument
	}

	text, err := c.content.Read(c.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	rewritten := domain.Rewrite(text, c.Selected, c.Config)
	if rewritten == text {
		return rewritten, nil
	}

	if err := c.content.Write(c.Path, rewritten); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}
	return rewritten, nil
}

package ports

import (
	"context"

	"notelink/internal/domain"
)

// DocumentCollection lists the documents of the note collection.
type DocumentCollection interface {
	// ListDocuments returns every document in the collection, in a stable
	// traversal order.
	ListDocuments() ([]domain.Document, error)
}

// CollectionWatcher emits added/removed events as the collection changes
// on disk.
type CollectionWatcher interface {
	// Start begins watching. The watcher runs until Stop is called or the
	// context is cancelled.
	Start(ctx context.Context) error

	// Events returns the change event stream. The channel is closed when
	// the watcher stops.
	Events() <-chan domain.DocumentEvent

	// Stop stops the watcher and releases resources. Safe to call more
	// than once.
	Stop() error
}

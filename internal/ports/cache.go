package ports

import "notelink/internal/domain"

// IndexCache persists a TitleIndex snapshot between runs. Load returns
// nil when no snapshot exists; callers adopt a loaded snapshot only when
// it is fresh, otherwise they rebuild.
type IndexCache interface {
	Load() (*domain.IndexSnapshot, error)
	Save(snap domain.IndexSnapshot) error
	Clear() error
}

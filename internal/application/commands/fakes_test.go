package commands

import (
	"errors"
	"sync"

	"notelink/internal/domain"
)

// fakeCollection serves a fixed document list.
type fakeCollection struct {
	docs []domain.Document
	err  error
}

func (f *fakeCollection) ListDocuments() ([]domain.Document, error) {
	return f.docs, f.err
}

// fakeContent is an in-memory content provider.
type fakeContent struct {
	mu       sync.Mutex
	files    map[string]string
	writeErr error
	writes   int
}

func newFakeContent(files map[string]string) *fakeContent {
	if files == nil {
		files = make(map[string]string)
	}
	return &fakeContent{files: files}
}

func (f *fakeContent) Read(path string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	text, ok := f.files[path]
	if !ok {
		return "", errors.New("no such file: " + path)
	}
	return text, nil
}

func (f *fakeContent) Write(path, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.files[path] = text
	f.writes++
	return nil
}

// fakeCache records snapshot operations.
type fakeCache struct {
	mu      sync.Mutex
	snap    *domain.IndexSnapshot
	loadErr error
	saves   int
	clears  int
}

func (f *fakeCache) Load() (*domain.IndexSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap, f.loadErr
}

func (f *fakeCache) Save(snap domain.IndexSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap = &snap
	f.saves++
	return nil
}

func (f *fakeCache) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap = nil
	f.clears++
	return nil
}

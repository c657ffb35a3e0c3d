package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"notelink/internal/domain"
	"notelink/internal/ports"
)

// Repository provides the document collection and document contents from a
// vault directory on disk.
type Repository struct {
	vaultPath string
}

var (
	_ ports.DocumentCollection = (*Repository)(nil)
	_ ports.ContentProvider    = (*Repository)(nil)
)

// NewRepository creates a repository rooted at vaultPath. A leading ~ is
// expanded to the user's home directory.
func NewRepository(vaultPath string) *Repository {
	if strings.HasPrefix(vaultPath, "~") {
		home, _ := os.UserHomeDir()
		vaultPath = filepath.Join(home, vaultPath[1:])
	}
	return &Repository{vaultPath: vaultPath}
}

// VaultPath returns the expanded vault root.
func (r *Repository) VaultPath() string {
	return r.vaultPath
}

// ListDocuments walks the vault and returns every file as a document with
// vault-relative path, basename, and lowercase extension. Hidden
// directories are skipped. Traversal follows filepath.WalkDir's lexical
// order, so repeated calls list documents in the same order.
func (r *Repository) ListDocuments() ([]domain.Document, error) {
	var docs []domain.Document

	err := filepath.WalkDir(r.vaultPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}
		if d.IsDir() {
			if path != r.vaultPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(r.vaultPath, path)
		if err != nil {
			return nil
		}
		docs = append(docs, DescribeFile(relPath))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk vault: %w", err)
	}

	return docs, nil
}

// Read returns the content of the document at the vault-relative path.
func (r *Repository) Read(path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(r.vaultPath, path))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// Write replaces the content of the document at the vault-relative path.
func (r *Repository) Write(path, text string) error {
	full := filepath.Join(r.vaultPath, path)
	if err := os.WriteFile(full, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// DescribeFile splits a vault-relative file path into a document record.
func DescribeFile(relPath string) domain.Document {
	relPath = filepath.ToSlash(relPath)
	name := relPath
	if i := strings.LastIndex(relPath, "/"); i >= 0 {
		name = relPath[i+1:]
	}
	ext := ""
	if i := strings.LastIndex(name, "."); i > 0 {
		ext = strings.ToLower(name[i+1:])
		name = name[:i]
	}
	return domain.Document{Path: relPath, Basename: name, Extension: ext}
}

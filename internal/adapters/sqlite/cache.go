package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"notelink/internal/domain"
	"notelink/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Cache implements ports.IndexCache using SQLite. One database file exists
// per vault, keyed by a hash of the vault path.
type Cache struct {
	db        *sql.DB
	vaultPath string
	dbPath    string
}

// Ensure Cache implements IndexCache
var _ ports.IndexCache = (*Cache)(nil)

// NewCache creates a new SQLite cache
func NewCache() *Cache {
	return &Cache{}
}

// Open initializes the cache for the given vault path
func (c *Cache) Open(vaultPath string) error {
	// Expand ~ in path
	if len(vaultPath) > 0 && vaultPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		vaultPath = filepath.Join(home, vaultPath[1:])
	}

	c.vaultPath = vaultPath
	c.dbPath = databasePath(vaultPath)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(c.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", c.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS titles (
			position INTEGER PRIMARY KEY,
			path TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_titles_title ON titles(title);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	// A schema bump or vault move invalidates whatever was stored.
	if c.needsReset() {
		if err := c.Clear(); err != nil {
			db.Close()
			return fmt.Errorf("failed to reset cache: %w", err)
		}
	}

	// Update metadata
	if err := c.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// needsReset reports whether the stored snapshot belongs to another schema
// version or vault path.
func (c *Cache) needsReset() bool {
	var version, vaultHash string
	c.db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	c.db.QueryRow(`SELECT value FROM meta WHERE key = 'vault_path_hash'`).Scan(&vaultHash)
	return version != schemaVersion || vaultHash != hashVaultPath(c.vaultPath)
}

// Close closes the database connection
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Load returns the persisted snapshot, or nil when none exists. A stale
// snapshot is returned as-is; the caller decides whether to adopt or
// rebuild.
func (c *Cache) Load() (*domain.IndexSnapshot, error) {
	var saved string
	err := c.db.QueryRow(`SELECT value FROM meta WHERE key = 'is_fresh'`).Scan(&saved)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := c.db.Query(`SELECT path, title FROM titles ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snap := &domain.IndexSnapshot{Fresh: saved == "1"}
	for rows.Next() {
		var e domain.TitleEntry
		if err := rows.Scan(&e.Path, &e.Title); err != nil {
			return nil, err
		}
		snap.Entries = append(snap.Entries, e)
	}
	return snap, rows.Err()
}

// Save atomically replaces the persisted snapshot.
func (c *Cache) Save(snap domain.IndexSnapshot) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM titles`); err != nil {
		return err
	}
	for i, e := range snap.Entries {
		if _, err := tx.Exec(`
			INSERT INTO titles (position, path, title) VALUES (?, ?, ?)
		`, i, e.Path, e.Title); err != nil {
			return err
		}
	}

	fresh := "0"
	if snap.Fresh {
		fresh = "1"
	}
	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('is_fresh', ?)
	`, fresh); err != nil {
		return err
	}

	return tx.Commit()
}

// Clear drops the persisted snapshot, forcing a rebuild on next startup.
func (c *Cache) Clear() error {
	if _, err := c.db.Exec(`DELETE FROM titles`); err != nil {
		return err
	}
	_, err := c.db.Exec(`DELETE FROM meta WHERE key = 'is_fresh'`)
	return err
}

// databasePath returns the path for the SQLite database
func databasePath(vaultPath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash vault path for unique DB name
	hash := hashVaultPath(vaultPath)

	return filepath.Join(dataHome, "notelink", hash+".db")
}

// hashVaultPath returns a short hash of the vault path
func hashVaultPath(vaultPath string) string {
	h := sha256.Sum256([]byte(vaultPath))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta updates the schema version and vault path hash
func (c *Cache) updateMeta() error {
	if _, err := c.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)
	`, schemaVersion); err != nil {
		return err
	}
	_, err := c.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('vault_path_hash', ?)
	`, hashVaultPath(c.vaultPath))
	return err
}

package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"warp/internal/domain"
	"warp/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Index implements ports.BookmarkIndex using SQLite. The store file stays
// the source of truth; the index is a rebuildable mirror used for search and
// ranking queries, safe to delete at any time.
type Index struct {
	db        *sql.DB
	storePath string
	dbPath    string
}

var _ ports.BookmarkIndex = (*Index)(nil)

// NewIndex creates an index for the store at storePath. The database lives
// in the XDG data directory under a hash of the store path, so stores never
// share an index.
func NewIndex(storePath string) *Index {
	return &Index{
		storePath: storePath,
		dbPath:    databasePath(storePath),
	}
}

// Open initializes the database, creating the schema if needed.
func (idx *Index) Open() error {
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS bookmarks (
			path TEXT PRIMARY KEY,
			shortcuts TEXT NOT NULL,
			priority INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_bookmarks_priority ON bookmarks(priority DESC);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Search returns records whose path or shortcut list contains the query.
func (idx *Index) Search(query string) ([]domain.Record, error) {
	pattern := "%" + query + "%"
	rows, err := idx.db.Query(`
		SELECT path, shortcuts, priority
		FROM bookmarks
		WHERE path LIKE ? OR shortcuts LIKE ?
		ORDER BY priority DESC
	`, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Top returns the n highest-priority records, most used first.
func (idx *Index) Top(n int) ([]domain.Record, error) {
	rows, err := idx.db.Query(`
		SELECT path, shortcuts, priority
		FROM bookmarks
		ORDER BY priority DESC, path
		LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]domain.Record, error) {
	var records []domain.Record
	for rows.Next() {
		var rec domain.Record
		var shortcuts string
		if err := rows.Scan(&rec.Path, &shortcuts, &rec.Priority); err != nil {
			return nil, err
		}
		if shortcuts != "" {
			rec.Shortcuts = strings.Split(shortcuts, domain.FieldSep)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// databasePath returns the location for the SQLite database.
func databasePath(storePath string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "warp", hashStorePath(storePath)+".db")
}

// hashStorePath returns a short hash of the store path.
func hashStorePath(storePath string) string {
	h := sha256.Sum256([]byte(storePath))
	return hex.EncodeToString(h[:8])
}

// updateMeta records the schema version and store path hash.
func (idx *Index) updateMeta() error {
	if _, err := idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		return err
	}
	_, err := idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('store_path_hash', ?)`, hashStorePath(idx.storePath))
	return err
}

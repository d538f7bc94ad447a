package sqlite

import (
	"strings"
	"time"

	"warp/internal/domain"
)

// Sync replaces the index contents with the given records in one
// transaction. The store is small, so a full rebuild is always cheap enough.
func (idx *Index) Sync(records []domain.Record) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM bookmarks`); err != nil {
		return err
	}

	for _, rec := range records {
		_, err := tx.Exec(`
			INSERT OR REPLACE INTO bookmarks (path, shortcuts, priority)
			VALUES (?, ?, ?)
		`, rec.Path, strings.Join(rec.Shortcuts, domain.FieldSep), rec.Priority)
		if err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)
	`, time.Now().Unix()); err != nil {
		return err
	}

	return tx.Commit()
}

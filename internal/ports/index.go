package ports

import "warp/internal/domain"

// BookmarkIndex provides queryable, rebuildable access to the store's
// records. The store file stays the source of truth; the index is a mirror
// synced before queries and safe to delete at any time.
type BookmarkIndex interface {
	// Lifecycle
	Open() error
	Close() error

	// Sync replaces the index contents with the given records.
	Sync(records []domain.Record) error

	// Search returns records whose path or shortcuts contain the query.
	Search(query string) ([]domain.Record, error)

	// Top returns the n highest-priority records, most used first.
	Top(n int) ([]domain.Record, error)
}

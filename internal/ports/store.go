package ports

// BookmarkStore is the backing storage for the shortcut store. The engine
// reads the whole text, transforms it in memory, and writes it back in one
// deferred save, so a crash mid-command leaves the original file untouched.
type BookmarkStore interface {
	// Load returns the complete store text. A store that does not exist
	// yet reads as empty.
	Load() (string, error)

	// Save overwrites the store with the fully-materialized text.
	Save(text string) error

	// Path returns the location of the backing store, for reporting.
	Path() string
}

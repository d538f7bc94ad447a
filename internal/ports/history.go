package ports

// History is the jump history consumed by pop: an append-only line store of
// `path;pid;unix_timestamp` entries, newest last.
type History interface {
	// Push appends a resolved path to the history. Paths that no longer
	// exist on disk are silently skipped.
	Push(path string) error

	// Pop drops the newest entry and returns the path now on top,
	// pruning entries whose directories have disappeared.
	Pop() (string, error)
}

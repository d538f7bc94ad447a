package filesystem

import (
	"os"
	"path/filepath"
	"strings"

	"warp/internal/application"
	"warp/internal/ports"
)

// Store implements ports.BookmarkStore on a plain text file.
type Store struct {
	path string
}

var _ ports.BookmarkStore = (*Store)(nil)

// NewStore creates a store backed by the file at path, expanding a leading ~.
func NewStore(path string) *Store {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &Store{path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the complete store text. A missing file reads as an empty
// store; the first Save creates it.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", &application.FileError{Op: "read", Path: s.path, Err: err}
	}
	return string(data), nil
}

// Save overwrites the store file with the rewritten text in a single write.
func (s *Store) Save(text string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &application.FileError{Op: "create directory for", Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, []byte(text), 0644); err != nil {
		return &application.FileError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"warp/internal/application"
	"warp/internal/ports"
)

// History implements ports.History on an append-only text file of
// `path;pid;unix_timestamp` lines, newest last.
type History struct {
	path string

	// overridable in tests
	pathExists func(string) bool
	pid        func() int
	now        func() int64
}

var _ ports.History = (*History)(nil)

// NewHistory creates a history backed by the file at path.
func NewHistory(path string) *History {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &History{
		path:       path,
		pathExists: dirExists,
		pid:        os.Getpid,
		now:        unixNow,
	}
}

// Push appends the resolved path with the current pid and timestamp. Paths
// that no longer exist on disk are skipped without error.
func (h *History) Push(path string) error {
	if !h.pathExists(path) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return &application.FileError{Op: "create directory for", Path: h.path, Err: err}
	}
	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &application.FileError{Op: "open", Path: h.path, Err: err}
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s;%d;%d\n", path, h.pid(), h.now()); err != nil {
		return &application.FileError{Op: "write", Path: h.path, Err: err}
	}
	return nil
}

// Pop prunes entries whose directory is gone, drops the newest surviving
// entry, rewrites the file, and returns the path now on top.
func (h *History) Pop() (string, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return "", &application.FileError{Op: "read", Path: h.path, Err: err}
	}

	var lines []string
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		path, _, _ := strings.Cut(line, ";")
		if h.pathExists(path) {
			lines = append(lines, line)
		}
	}

	if len(lines) < 2 {
		return "", &application.UserError{
			Reason: fmt.Sprintf("nothing to pop from %s", h.path),
			Err:    application.ErrHistoryEmpty,
		}
	}

	lines = lines[:len(lines)-1]
	if err := os.WriteFile(h.path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		return "", &application.FileError{Op: "write", Path: h.path, Err: err}
	}

	top := lines[len(lines)-1]
	path, _, _ := strings.Cut(top, ";")
	return path, nil
}

func dirExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func unixNow() int64 {
	return time.Now().Unix()
}

package application

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for common store conditions
var (
	ErrShortcutNotFound = errors.New("shortcut not found")
	ErrShortcutExists   = errors.New("shortcut already exists")
	ErrPathExists       = errors.New("path already exists")
	ErrPathNotFound     = errors.New("path not found")
	ErrHistoryEmpty     = errors.New("history is empty")
)

// UserError represents a bad or conflicting request: missing arguments, a
// shortcut collision, an unknown shortcut. The operation degrades to a no-op
// for the offending step and execution continues.
type UserError struct {
	Reason string
	Err    error
}

func (e *UserError) Error() string {
	return e.Reason
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// DataError represents a malformed store line: wrong field count or a
// non-numeric priority. The scan substitutes a degraded default and continues.
type DataError struct {
	Line   string
	Reason string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s in line %q", e.Reason, e.Line)
}

// InternalError represents a logic fault in the tool itself, such as a
// priority overflow. Distinct from user-facing errors when reported.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return e.Reason
}

// FileError represents an I/O failure on the store or history file. The
// operation on that file is aborted, not retried.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("unable to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Tag returns the taxonomy label for an error.
func Tag(err error) string {
	var (
		userErr     *UserError
		dataErr     *DataError
		internalErr *InternalError
		fileErr     *FileError
	)
	switch {
	case errors.As(err, &dataErr):
		return "Data Error"
	case errors.As(err, &internalErr):
		return "Internal Error"
	case errors.As(err, &fileErr):
		return "File Error"
	case errors.As(err, &userErr):
		return "User Error"
	default:
		return "User Error"
	}
}

// Report prints each diagnostic with its taxonomy tag, one per line.
func Report(w io.Writer, diags []error) {
	for _, d := range diags {
		fmt.Fprintf(w, "[%s] %s\n", Tag(d), d)
	}
}

package ports

import "os/exec"

// EditorOpener defines the interface for opening a directory in an external
// editor.
type EditorOpener interface {
	// Open opens the directory in the user's preferred editor, using
	// $EDITOR and falling back to common editors.
	Open(path string) error

	// Command returns an exec.Cmd for opening a directory, useful for
	// integrating with bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}

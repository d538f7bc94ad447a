package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// fallbackEditors is tried in order when neither $VISUAL nor $EDITOR is set.
var fallbackEditors = []string{"nvim", "vim", "vi", "code"}

// Opener implements ports.EditorOpener
type Opener struct{}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens a directory in the user's preferred editor, blocking until the
// editor exits.
func (o *Opener) Open(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a directory, wired to the current
// terminal so bubbletea's ExecProcess can hand the screen over to it.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

func findEditor() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}
	for _, editor := range fallbackEditors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}
	return ""
}

package editor

import "testing"

func TestFindEditor_EnvOrder(t *testing.T) {
	t.Setenv("VISUAL", "visual-editor")
	t.Setenv("EDITOR", "plain-editor")

	if got := findEditor(); got != "visual-editor" {
		t.Errorf("$VISUAL wins over $EDITOR, got %q", got)
	}

	t.Setenv("VISUAL", "")
	if got := findEditor(); got != "plain-editor" {
		t.Errorf("$EDITOR is the second choice, got %q", got)
	}
}

func TestCommand_UsesEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "my-editor")

	cmd, err := NewOpener().Command("/some/dir")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if cmd.Args[0] != "my-editor" || cmd.Args[1] != "/some/dir" {
		t.Errorf("unexpected argv %v", cmd.Args)
	}
}

package commands

import (
	"context"
	"strings"
	"testing"

	"warp/internal/application"
)

func TestAddCommand_NewRecord(t *testing.T) {
	store := &memStore{text: seedStore}

	result, err := NewAddCommand(store, "dl", "/home/user/downloads", 10).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !strings.Contains(result.Message, "Registered") {
		t.Errorf("unexpected message %q", result.Message)
	}
	if !strings.Contains(store.text, "/home/user/downloads;dl;0\n") {
		t.Errorf("new record missing from store:\n%s", store.text)
	}
}

func TestAddCommand_ExistingPath(t *testing.T) {
	store := &memStore{text: seedStore}

	result, err := NewAddCommand(store, "tunes", "/home/user/music", 10).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !strings.Contains(result.Message, "Added shortcut") {
		t.Errorf("unexpected message %q", result.Message)
	}
	if !strings.Contains(store.text, "/home/user/music;m;tunes;30\n") {
		t.Errorf("shortcut not joined to existing record:\n%s", store.text)
	}
}

func TestAddCommand_Collision(t *testing.T) {
	store := &memStore{text: seedStore}

	result, err := NewAddCommand(store, "m", "/elsewhere", 10).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Message != "" {
		t.Errorf("collision should announce nothing, got %q", result.Message)
	}
	if !hasDiagnostic(result.Diagnostics, application.ErrShortcutExists) {
		t.Errorf("expected ErrShortcutExists, got %v", result.Diagnostics)
	}
	if store.text != seedStore {
		t.Errorf("store must be unchanged on collision:\n%s", store.text)
	}
}

func TestAddCommand_Validate(t *testing.T) {
	if _, err := NewAddCommand(&memStore{}, "", "/tmp", 10).Execute(context.Background()); err == nil {
		t.Error("expected validation error for missing shortcut")
	}
	if _, err := NewAddCommand(&memStore{}, "t", "", 10).Execute(context.Background()); err == nil {
		t.Error("expected validation error for missing path")
	}
}

func TestEditCommand_Repoint(t *testing.T) {
	store := &memStore{text: seedStore}

	result, err := NewEditCommand(store, "m", "/mnt/music", 10).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !strings.Contains(result.Message, "now points to") {
		t.Errorf("unexpected message %q", result.Message)
	}
	if !strings.Contains(store.text, "/mnt/music;m;20\n") {
		t.Errorf("record not repointed:\n%s", store.text)
	}
}

func TestEditCommand_Unknown(t *testing.T) {
	store := &memStore{text: seedStore}

	_, err := NewEditCommand(store, "zzz", "/mnt/new", 10).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !strings.Contains(store.text, "/mnt/new;zzz;0\n") {
		t.Errorf("unknown shortcut should register a new record:\n%s", store.text)
	}
}

func TestRemoveCommand(t *testing.T) {
	store := &memStore{text: seedStore}

	result, err := NewRemoveCommand(store, "p").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Message == "" {
		t.Error("expected a confirmation message")
	}
	if !strings.Contains(store.text, "/home/user/projects;proj;40\n") {
		t.Errorf("only the shortcut should go, not the record:\n%s", store.text)
	}
}

func TestRemoveCommand_NotFound(t *testing.T) {
	store := &memStore{text: seedStore}

	result, err := NewRemoveCommand(store, "zzz").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !hasDiagnostic(result.Diagnostics, application.ErrShortcutNotFound) {
		t.Errorf("expected ErrShortcutNotFound, got %v", result.Diagnostics)
	}
	if store.text != seedStore {
		t.Errorf("store must be unchanged:\n%s", store.text)
	}
}

func TestDeleteCommand(t *testing.T) {
	store := &memStore{text: seedStore}

	if _, err := NewDeleteCommand(store, "/srv/data").Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if strings.Contains(store.text, "/srv/data") {
		t.Errorf("record should be gone:\n%s", store.text)
	}
}

func TestDecrementCommand(t *testing.T) {
	store := &memStore{text: seedStore}

	if _, err := NewDecrementCommand(store, 25).Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := "/home/user/projects;p;proj;15\n" +
		"/home/user/music;m;0\n" +
		"/srv/data;d;0\n"
	if store.text != want {
		t.Errorf("decrement mismatch:\ngot  %q\nwant %q", store.text, want)
	}
}

func TestResetCommand(t *testing.T) {
	store := &memStore{text: seedStore}

	if _, err := NewResetCommand(store).Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(store.text, "\n"), "\n") {
		if !strings.HasSuffix(line, ";0") {
			t.Errorf("priority not reset: %q", line)
		}
	}
}

func TestStateCommand(t *testing.T) {
	store := &memStore{text: seedStore}

	out, err := NewStateCommand(store).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out, "/home/user/projects") || !strings.Contains(out, "40") {
		t.Errorf("state dump incomplete:\n%s", out)
	}
	if store.saves != 0 {
		t.Error("state is read-only")
	}
}

func TestClearCommand(t *testing.T) {
	store := &memStore{text: seedStore}

	if err := NewClearCommand(store).Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if store.text != "" {
		t.Errorf("store should be empty, got %q", store.text)
	}
}

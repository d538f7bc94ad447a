package commands

import (
	"context"

	"warp/internal/application"
	"warp/internal/ports"
)

// StateCommand renders the whole store as a column-aligned table. Read-only:
// the store file is never rewritten.
type StateCommand struct {
	store ports.BookmarkStore
}

// NewStateCommand creates a new StateCommand
func NewStateCommand(store ports.BookmarkStore) *StateCommand {
	return &StateCommand{store: store}
}

// Execute runs the state command
func (c *StateCommand) Execute(ctx context.Context) (string, error) {
	data, err := c.store.Load()
	if err != nil {
		return "", err
	}
	return application.FormatState(data), nil
}

// PopCommand drops the newest history entry and returns the previous
// directory.
type PopCommand struct {
	history ports.History
}

// NewPopCommand creates a new PopCommand
func NewPopCommand(history ports.History) *PopCommand {
	return &PopCommand{history: history}
}

// Execute runs the pop command
func (c *PopCommand) Execute(ctx context.Context) (string, error) {
	return c.history.Pop()
}

// ClearCommand erases the entire store. No confirmation and no backup.
type ClearCommand struct {
	store ports.BookmarkStore
}

// NewClearCommand creates a new ClearCommand
func NewClearCommand(store ports.BookmarkStore) *ClearCommand {
	return &ClearCommand{store: store}
}

// Execute runs the clear command
func (c *ClearCommand) Execute(ctx context.Context) error {
	return c.store.Save("")
}

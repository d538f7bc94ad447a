package commands

import (
	"context"
	"fmt"

	"warp/internal/application"
	"warp/internal/domain"
	"warp/internal/ports"
)

// RemoveCommand drops one shortcut from the store, and its whole record if
// that was the record's last shortcut.
type RemoveCommand struct {
	store ports.BookmarkStore

	Shortcut string
}

// NewRemoveCommand creates a new RemoveCommand
func NewRemoveCommand(store ports.BookmarkStore, shortcut string) *RemoveCommand {
	return &RemoveCommand{store: store, Shortcut: shortcut}
}

// Validate checks if the remove operation is valid
func (c *RemoveCommand) Validate() error {
	return application.ValidateRequired("shortcut", c.Shortcut)
}

// Execute runs the remove command
func (c *RemoveCommand) Execute(ctx context.Context) (*MutateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	data, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	cmd := domain.NewCommand(domain.KindRemove)
	if err := cmd.Append(c.Shortcut); err != nil {
		return nil, &application.UserError{Reason: err.Error()}
	}

	out := application.Apply(data, cmd, 0)
	if err := c.store.Save(out.Text); err != nil {
		return nil, err
	}

	result := &MutateResult{Diagnostics: out.Diagnostics}
	if out.Found {
		result.Message = fmt.Sprintf("Removed shortcut %q", c.Shortcut)
	}
	return result, nil
}

// DeleteCommand drops the record for a path, shortcuts and all.
type DeleteCommand struct {
	store ports.BookmarkStore

	Path string
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(store ports.BookmarkStore, path string) *DeleteCommand {
	return &DeleteCommand{store: store, Path: path}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*MutateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	data, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	cmd := domain.NewCommand(domain.KindDelete)
	if err := cmd.Append(c.Path); err != nil {
		return nil, &application.UserError{Reason: err.Error()}
	}

	out := application.Apply(data, cmd, 0)
	if err := c.store.Save(out.Text); err != nil {
		return nil, err
	}

	result := &MutateResult{Diagnostics: out.Diagnostics}
	if out.Found {
		result.Message = fmt.Sprintf("Deleted %s", c.Path)
	}
	return result, nil
}

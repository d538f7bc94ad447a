package commands

import (
	"context"
	"fmt"

	"warp/internal/application"
	"warp/internal/domain"
	"warp/internal/ports"
)

// EditCommand repoints an existing shortcut at a new path, keeping the
// record's priority. A shortcut that matches nothing becomes a new record.
type EditCommand struct {
	store ports.BookmarkStore

	Shortcut string
	Path     string
	Incr     uint32
}

// NewEditCommand creates a new EditCommand
func NewEditCommand(store ports.BookmarkStore, shortcut, path string, incr uint32) *EditCommand {
	return &EditCommand{
		store:    store,
		Shortcut: shortcut,
		Path:     path,
		Incr:     incr,
	}
}

// Validate checks if the edit operation is valid
func (c *EditCommand) Validate() error {
	if err := application.ValidateRequired("shortcut", c.Shortcut); err != nil {
		return err
	}
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context) (*MutateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	data, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	cmd := domain.NewCommand(domain.KindEdit)
	if err := cmd.Append(c.Shortcut); err != nil {
		return nil, &application.UserError{Reason: err.Error()}
	}
	if err := cmd.Append(c.Path); err != nil {
		return nil, &application.UserError{Reason: err.Error()}
	}

	out := application.Apply(data, cmd, c.Incr)
	if err := c.store.Save(out.Text); err != nil {
		return nil, err
	}

	result := &MutateResult{Diagnostics: out.Diagnostics}
	switch {
	case hasDiagnostic(out.Diagnostics, application.ErrPathExists):
	case out.Found:
		result.Message = fmt.Sprintf("Shortcut %q now points to %s", c.Shortcut, c.Path)
	default:
		result.Message = fmt.Sprintf("Registered %s as %q", c.Path, c.Shortcut)
	}
	return result, nil
}

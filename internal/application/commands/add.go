package commands

import (
	"context"
	"errors"
	"fmt"

	"warp/internal/application"
	"warp/internal/domain"
	"warp/internal/ports"
)

// MutateResult contains the result of a store mutation
type MutateResult struct {
	Message     string
	Diagnostics []error
}

// AddCommand registers a shortcut for a path. If the path already has a
// record the shortcut joins its list; otherwise a new record is appended.
type AddCommand struct {
	store ports.BookmarkStore

	Shortcut string
	Path     string
	Incr     uint32
}

// NewAddCommand creates a new AddCommand
func NewAddCommand(store ports.BookmarkStore, shortcut, path string, incr uint32) *AddCommand {
	return &AddCommand{
		store:    store,
		Shortcut: shortcut,
		Path:     path,
		Incr:     incr,
	}
}

// Validate checks if the add operation is valid
func (c *AddCommand) Validate() error {
	if err := application.ValidateRequired("shortcut", c.Shortcut); err != nil {
		return err
	}
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context) (*MutateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	data, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	cmd := domain.NewCommand(domain.KindAdd)
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
	case hasDiagnostic(out.Diagnostics, application.ErrShortcutExists):
		// Collision: the store is unchanged, nothing to announce.
	case out.Found:
		result.Message = fmt.Sprintf("Added shortcut %q to %s", c.Shortcut, c.Path)
	default:
		result.Message = fmt.Sprintf("Registered %s as %q", c.Path, c.Shortcut)
	}
	return result, nil
}

func hasDiagnostic(diags []error, target error) bool {
	for _, d := range diags {
		if errors.Is(d, target) {
			return true
		}
	}
	return false
}

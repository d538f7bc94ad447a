package commands

import (
	"context"
	"fmt"

	"warp/internal/application"
	"warp/internal/domain"
	"warp/internal/ports"
)

// DecrementCommand lowers every record's priority by Amount, saturating at
// zero. Used to age out directories that are no longer visited.
type DecrementCommand struct {
	store ports.BookmarkStore

	Amount uint32
}

// NewDecrementCommand creates a new DecrementCommand
func NewDecrementCommand(store ports.BookmarkStore, amount uint32) *DecrementCommand {
	return &DecrementCommand{store: store, Amount: amount}
}

// Execute runs the decrement command
func (c *DecrementCommand) Execute(ctx context.Context) (*MutateResult, error) {
	data, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	cmd := domain.NewCommand(domain.KindDecrement)
	if err := cmd.Append(fmt.Sprintf("%d", c.Amount)); err != nil {
		return nil, &application.UserError{Reason: err.Error()}
	}

	out := application.Apply(data, cmd, 0)
	if err := c.store.Save(out.Text); err != nil {
		return nil, err
	}

	return &MutateResult{
		Message:     fmt.Sprintf("Decremented all priorities by %d", c.Amount),
		Diagnostics: out.Diagnostics,
	}, nil
}

// ResetCommand zeroes every record's priority.
type ResetCommand struct {
	store ports.BookmarkStore
}

// NewResetCommand creates a new ResetCommand
func NewResetCommand(store ports.BookmarkStore) *ResetCommand {
	return &ResetCommand{store: store}
}

// Execute runs the reset command
func (c *ResetCommand) Execute(ctx context.Context) (*MutateResult, error) {
	data, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	out := application.Apply(data, domain.NewCommand(domain.KindReset), 0)
	if err := c.store.Save(out.Text); err != nil {
		return nil, err
	}

	return &MutateResult{
		Message:     "Reset all priorities to 0",
		Diagnostics: out.Diagnostics,
	}, nil
}

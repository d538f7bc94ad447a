package commands

import (
	"context"

	"warp/internal/application"
	"warp/internal/domain"
	"warp/internal/ports"
)

// ResolveResult contains the result of resolving a shortcut
type ResolveResult struct {
	// Path is the directory to jump to. Empty when nothing resolved.
	Path string
	// Found reports whether the shortcut matched a record exactly.
	Found bool
	// Diagnostics carries the non-fatal errors raised during the scan.
	Diagnostics []error
}

// ResolveCommand resolves a shortcut to a path, bumping the matched record's
// priority by Incr and rewriting the store. With no shortcut it resolves to
// the most-used directory.
type ResolveCommand struct {
	store   ports.BookmarkStore
	history ports.History

	Shortcut string
	Subpath  string
	Incr     uint32
	// Strict disables the priority fallback: an explicit shortcut that
	// matches nothing resolves to no path at all.
	Strict bool
}

// NewResolveCommand creates a new ResolveCommand. history may be nil when
// the resolved path should not be recorded.
func NewResolveCommand(store ports.BookmarkStore, history ports.History, shortcut, subpath string, incr uint32) *ResolveCommand {
	return &ResolveCommand{
		store:    store,
		history:  history,
		Shortcut: shortcut,
		Subpath:  subpath,
		Incr:     incr,
	}
}

// Execute runs the resolve command
func (c *ResolveCommand) Execute(ctx context.Context) (*ResolveResult, error) {
	data, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	cmd := domain.NewCommand(domain.KindGet)
	if c.Shortcut != "" {
		if err := cmd.Append(c.Shortcut); err != nil {
			return nil, &application.UserError{Reason: err.Error()}
		}
		if c.Subpath != "" {
			if err := cmd.Append(c.Subpath); err != nil {
				return nil, &application.UserError{Reason: err.Error()}
			}
		}
	}

	out := application.Apply(data, cmd, c.Incr)
	if err := c.store.Save(out.Text); err != nil {
		return nil, err
	}

	result := &ResolveResult{
		Found:       out.Found,
		Diagnostics: out.Diagnostics,
	}
	if out.HasPath && !(c.Strict && c.Shortcut != "" && !out.Found) {
		result.Path = out.Path
	}

	if result.Path != "" && c.history != nil {
		if err := c.history.Push(result.Path); err != nil {
			result.Diagnostics = append(result.Diagnostics, err)
		}
	}

	return result, nil
}

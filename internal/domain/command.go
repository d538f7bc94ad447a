package domain

import (
	"fmt"
	"strconv"
)

// Kind identifies a store operation.
type Kind int

const (
	// KindGet resolves a shortcut to a path, bumping the matched record's
	// priority. With no shortcut it resolves to the most-used directory.
	KindGet Kind = iota
	// KindAdd registers a shortcut for a path, creating the record if the
	// path is unknown.
	KindAdd
	// KindEdit repoints an existing shortcut at a new path.
	KindEdit
	// KindRemove drops one shortcut, and the whole record if it was the last.
	KindRemove
	// KindDelete drops the record for a path, shortcuts and all.
	KindDelete
	// KindDecrement lowers every record's priority, saturating at zero.
	KindDecrement
	// KindReset zeroes every record's priority.
	KindReset
)

func (k Kind) String() string {
	switch k {
	case KindGet:
		return "go"
	case KindAdd:
		return "add"
	case KindEdit:
		return "edit"
	case KindRemove:
		return "remove"
	case KindDelete:
		return "delete"
	case KindDecrement:
		return "decrement"
	case KindReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Command is one store operation under construction. Positional arguments
// fill its slots left to right via Append: shortcut before path for Get, Add
// and Edit; a single shortcut for Remove; a single path for Delete; a single
// amount for Decrement. Reset takes no arguments. Each slot carries an
// explicit filled flag so empty strings never double as sentinels.
type Command struct {
	Kind     Kind
	Shortcut string
	Path     string
	Amount   uint32

	hasShortcut bool
	hasPath     bool
	hasAmount   bool
}

// NewCommand returns an empty command of the given kind with all slots unset.
func NewCommand(kind Kind) *Command {
	return &Command{Kind: kind}
}

// HasShortcut reports whether the shortcut slot has been filled.
func (c *Command) HasShortcut() bool { return c.hasShortcut }

// HasPath reports whether the path slot has been filled.
func (c *Command) HasPath() bool { return c.hasPath }

// Complete reports whether every slot of the command is filled. Appending to
// a complete command is an error.
func (c *Command) Complete() bool {
	switch c.Kind {
	case KindGet, KindAdd, KindEdit:
		return c.hasShortcut && c.hasPath
	case KindRemove:
		return c.hasShortcut
	case KindDelete:
		return c.hasPath
	case KindDecrement:
		return c.hasAmount
	case KindReset:
		return true
	default:
		return true
	}
}

// Append fills the next empty slot with value. It fails, leaving the command
// unchanged, when the command takes no arguments, when all slots are already
// filled, or when a Decrement amount does not parse as an unsigned integer.
func (c *Command) Append(value string) error {
	switch c.Kind {
	case KindReset:
		return fmt.Errorf("the %s command takes no arguments", c.Kind)

	case KindDecrement:
		if c.hasAmount {
			return fmt.Errorf("too many arguments for %s", c)
		}
		amount, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return fmt.Errorf("the %s amount must be a non-negative integer, got %q", c.Kind, value)
		}
		c.Amount = uint32(amount)
		c.hasAmount = true
		return nil

	case KindGet, KindAdd, KindEdit:
		switch {
		case !c.hasShortcut:
			c.Shortcut = value
			c.hasShortcut = true
		case !c.hasPath:
			c.Path = value
			c.hasPath = true
		default:
			return fmt.Errorf("too many arguments for %s", c)
		}
		return nil

	case KindRemove:
		if c.hasShortcut {
			return fmt.Errorf("too many arguments for %s", c)
		}
		c.Shortcut = value
		c.hasShortcut = true
		return nil

	case KindDelete:
		if c.hasPath {
			return fmt.Errorf("too many arguments for %s", c)
		}
		c.Path = value
		c.hasPath = true
		return nil

	default:
		return fmt.Errorf("unknown command kind %d", c.Kind)
	}
}

// ApplyDefaults fills the still-empty slots of an Add or Edit from the
// current directory: the shortcut from its last segment, the path from the
// directory itself. Other kinds, and already-complete commands, are left
// untouched.
func (c *Command) ApplyDefaults(cwd string) {
	if c.Kind != KindAdd && c.Kind != KindEdit {
		return
	}
	if !c.hasShortcut && !c.hasPath {
		c.Shortcut = LastSegment(cwd)
		c.hasShortcut = true
	}
	if !c.hasPath {
		c.Path = cwd
		c.hasPath = true
	}
}

// String renders the command for diagnostics, e.g. "<add proj /p>".
func (c *Command) String() string {
	switch c.Kind {
	case KindGet, KindAdd, KindEdit:
		return fmt.Sprintf("<%s %s %s>", c.Kind, c.Shortcut, c.Path)
	case KindRemove:
		return fmt.Sprintf("<%s %s>", c.Kind, c.Shortcut)
	case KindDelete:
		return fmt.Sprintf("<%s %s>", c.Kind, c.Path)
	case KindDecrement:
		return fmt.Sprintf("<%s %d>", c.Kind, c.Amount)
	default:
		return fmt.Sprintf("<%s>", c.Kind)
	}
}

package application

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"warp/internal/domain"
)

// Outcome is the result of one scan-and-rewrite pass over the store.
type Outcome struct {
	// Text is the fully rewritten store text. Persisting it is the
	// caller's concern; the scan never touches the file.
	Text string
	// Found reports whether the command located its target record.
	Found bool
	// Path is the resolved directory for Get commands, already joined
	// with the requested subpath. Empty when nothing resolved.
	Path string
	// HasPath reports whether Path should be materialized at all.
	HasPath bool
	// Fallback is the highest-priority non-matching path seen during the
	// scan, with its priority. Valid for Get commands.
	Fallback         string
	FallbackPriority uint32
	// Diagnostics collects every User/Data/Internal error raised during
	// the pass. The engine substitutes safe defaults and keeps going; a
	// thin handler at the edge decides what to print.
	Diagnostics []error
}

// Apply runs cmd against the complete store text in a single pass: every line
// is visited exactly once, the first matching record receives the command's
// transform, and every other record is re-serialized unchanged. Once the
// command has succeeded, all remaining lines are copied through, so at most
// one record is mutated per command; Reset and Decrement never set success
// and therefore touch every record. incr is the priority increase applied to
// a record resolved by Get.
func Apply(data string, cmd *domain.Command, incr uint32) *Outcome {
	s := &scanner{cmd: cmd, incr: incr}

	var b strings.Builder
	for _, raw := range strings.Split(data, "\n") {
		b.WriteString(s.line(strings.TrimSpace(raw)))
	}

	out := &Outcome{
		Text:             b.String(),
		Found:            s.found,
		Fallback:         s.fallback,
		FallbackPriority: s.fallbackPriority,
		Diagnostics:      s.diags,
	}
	out.resolve(cmd, s)
	return out
}

// scanner carries the per-pass state: whether the command already succeeded
// and the best fallback candidate so far.
type scanner struct {
	cmd  *domain.Command
	incr uint32

	found            bool
	exact            string
	exactSet         bool
	fallback         string
	fallbackPriority uint32

	diags []error
}

// line transforms one store line and returns the text to emit for it.
func (s *scanner) line(line string) string {
	if s.found {
		// Copy-through: at most one record is mutated per command.
		if line == "" {
			return ""
		}
		return line + "\n"
	}
	if line == "" {
		return ""
	}

	rec, err := domain.ParseRecord(line)
	if err != nil {
		if !errors.Is(err, domain.ErrBadPriority) {
			// Too few fields to recover anything: report, drop the
			// line, keep scanning.
			s.diags = append(s.diags, &DataError{Line: line, Reason: "malformed record"})
			return ""
		}
		// A corrupt priority degrades to zero; the path and shortcuts
		// survive the rewrite.
		s.diags = append(s.diags, &DataError{Line: line, Reason: "priority is not a number"})
	}

	prio2 := rec.Priority
	if prio2 > math.MaxUint32-s.incr {
		s.diags = append(s.diags, &InternalError{
			Reason: fmt.Sprintf("priority overflow on %q", rec.Path),
		})
		prio2 = math.MaxUint32
	} else {
		prio2 += s.incr
	}

	switch s.cmd.Kind {
	case domain.KindGet:
		return s.get(rec, prio2)
	case domain.KindAdd:
		return s.add(rec, prio2)
	case domain.KindEdit:
		return s.edit(rec)
	case domain.KindRemove:
		return s.remove(rec)
	case domain.KindDelete:
		if rec.Path == s.cmd.Path {
			s.found = true
			return ""
		}
		return rec.String() + "\n"
	case domain.KindDecrement:
		rec.Priority = saturatingSub(rec.Priority, s.cmd.Amount)
		return rec.String() + "\n"
	case domain.KindReset:
		rec.Priority = 0
		return rec.String() + "\n"
	default:
		s.diags = append(s.diags, &InternalError{
			Reason: fmt.Sprintf("unknown command %s reached the scan", s.cmd),
		})
		return rec.String() + "\n"
	}
}

// get matches the requested shortcut against the record, bumping the matched
// record's priority. A non-matching record still drives fallback tracking:
// the highest-priority path seen so far answers a Get whose shortcut is
// absent or unspecified.
func (s *scanner) get(rec domain.Record, prio2 uint32) string {
	if s.cmd.HasShortcut() && s.cmd.Shortcut != "" && rec.HasShortcut(s.cmd.Shortcut) {
		s.found = true
		s.exact = rec.Path
		s.exactSet = true
		rec.Priority = prio2
		return rec.String() + "\n"
	}
	if rec.Priority > s.fallbackPriority {
		s.fallbackPriority = rec.Priority
		s.fallback = rec.Path
	}
	return rec.String() + "\n"
}

func (s *scanner) add(rec domain.Record, prio2 uint32) string {
	if !s.cmd.HasShortcut() || !s.cmd.HasPath() {
		// Resolution reports the missing slot once the scan is over.
		return rec.String() + "\n"
	}
	if rec.HasShortcut(s.cmd.Shortcut) {
		// Shortcuts are unique across the whole store. Marking the
		// record successful keeps the store unchanged and stops a new
		// record from being appended at the end of the scan.
		s.diags = append(s.diags, &UserError{
			Reason: fmt.Sprintf("shortcut %q already exists for %s", s.cmd.Shortcut, rec.Path),
			Err:    ErrShortcutExists,
		})
		s.found = true
		return rec.String() + "\n"
	}
	if rec.Path == s.cmd.Path {
		s.found = true
		rec = rec.WithShortcut(s.cmd.Shortcut)
		rec.Priority = prio2
		return rec.String() + "\n"
	}
	return rec.String() + "\n"
}

func (s *scanner) edit(rec domain.Record) string {
	if !s.cmd.HasShortcut() || !s.cmd.HasPath() {
		return rec.String() + "\n"
	}
	if rec.Path == s.cmd.Path {
		s.diags = append(s.diags, &UserError{
			Reason: fmt.Sprintf("path %s already exists", rec.Path),
			Err:    ErrPathExists,
		})
		s.found = true
		return rec.String() + "\n"
	}
	if rec.HasShortcut(s.cmd.Shortcut) {
		s.found = true
		rec.Path = s.cmd.Path
		return rec.String() + "\n"
	}
	return rec.String() + "\n"
}

func (s *scanner) remove(rec domain.Record) string {
	if !rec.HasShortcut(s.cmd.Shortcut) {
		return rec.String() + "\n"
	}
	s.found = true
	if len(rec.Shortcuts) == 1 {
		// Last shortcut gone: the record disappears with it.
		return ""
	}
	return rec.WithoutShortcut(s.cmd.Shortcut).String() + "\n"
}

// resolve combines the per-record results into the final answer: the exact
// match if one was found, else the fallback, and the appended record for an
// Add or Edit that matched nothing.
func (o *Outcome) resolve(cmd *domain.Command, s *scanner) {
	switch cmd.Kind {
	case domain.KindGet:
		base := s.fallback
		if s.exactSet {
			base = s.exact
		}
		if cmd.HasShortcut() && cmd.Shortcut != "" && !s.found {
			// The fallback is still computed and returned; callers
			// wanting a hard failure run in strict mode instead.
			o.Diagnostics = append(o.Diagnostics, &UserError{
				Reason: fmt.Sprintf("shortcut %q not found", cmd.Shortcut),
				Err:    ErrShortcutNotFound,
			})
		}
		if base == "" {
			return
		}
		o.Path = base
		if cmd.HasPath() && cmd.Path != "" {
			o.Path = base + "/" + cmd.Path
		}
		o.HasPath = true

	case domain.KindAdd, domain.KindEdit:
		if s.found {
			return
		}
		switch {
		case !cmd.HasPath():
			o.Diagnostics = append(o.Diagnostics, &UserError{
				Reason: fmt.Sprintf("missing path for %s", cmd.Kind),
			})
		case !cmd.HasShortcut():
			o.Diagnostics = append(o.Diagnostics, &UserError{
				Reason: fmt.Sprintf("missing shortcut for %s", cmd.Kind),
			})
		default:
			rec := domain.Record{Path: cmd.Path, Shortcuts: []string{cmd.Shortcut}, Priority: 0}
			o.Text += rec.String() + "\n"
		}

	case domain.KindRemove:
		if !s.found {
			o.Diagnostics = append(o.Diagnostics, &UserError{
				Reason: fmt.Sprintf("failed to remove shortcut %q: not found", cmd.Shortcut),
				Err:    ErrShortcutNotFound,
			})
		}

	case domain.KindDelete:
		if !s.found {
			o.Diagnostics = append(o.Diagnostics, &UserError{
				Reason: fmt.Sprintf("failed to delete path %s: not found", cmd.Path),
				Err:    ErrPathNotFound,
			})
		}
	}
}

func saturatingSub(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}

package domain

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// FieldSep separates the fields of one store line.
//
// The store file is newline-separated records of the form
//
//	/home/user/projects;p;proj;40
//
// where the first field is the directory path, the last field is the usage
// priority, and everything in between is the shortcut list. Paths or
// shortcuts containing the separator corrupt parsing; there is no escaping.
const FieldSep = ";"

// Record is one line of the bookmark store: a directory path, the shortcuts
// that resolve to it, and its usage priority.
type Record struct {
	Path      string
	Shortcuts []string
	Priority  uint32
}

// ErrBadPriority marks a record whose priority field is not an unsigned
// integer. ParseRecord still returns the record, degraded to priority zero,
// so callers can report the corruption without losing the path and
// shortcuts.
var ErrBadPriority = errors.New("priority is not an unsigned integer")

// ParseRecord parses one non-blank store line. It requires at least two
// fields (path and priority). A non-numeric priority is the one recoverable
// corruption: the record comes back with priority zero alongside an error
// wrapping ErrBadPriority.
func ParseRecord(line string) (Record, error) {
	fields := strings.Split(line, FieldSep)
	if len(fields) < 2 {
		return Record{}, fmt.Errorf("record %q: expected at least 2 fields, got %d", line, len(fields))
	}

	rec := Record{
		Path:      fields[0],
		Shortcuts: fields[1 : len(fields)-1],
	}

	priority, err := strconv.ParseUint(fields[len(fields)-1], 10, 32)
	if err != nil {
		return rec, fmt.Errorf("record %q: %w", line, ErrBadPriority)
	}
	rec.Priority = uint32(priority)
	return rec, nil
}

// String serializes the record back to its store-line form.
func (r Record) String() string {
	fields := make([]string, 0, len(r.Shortcuts)+2)
	fields = append(fields, r.Path)
	fields = append(fields, r.Shortcuts...)
	fields = append(fields, strconv.FormatUint(uint64(r.Priority), 10))
	return strings.Join(fields, FieldSep)
}

// HasShortcut reports whether the record's shortcut list contains short.
func (r Record) HasShortcut(short string) bool {
	return slices.Contains(r.Shortcuts, short)
}

// WithShortcut returns a copy of the record with short appended to its list.
func (r Record) WithShortcut(short string) Record {
	shorts := make([]string, 0, len(r.Shortcuts)+1)
	shorts = append(shorts, r.Shortcuts...)
	shorts = append(shorts, short)
	return Record{Path: r.Path, Shortcuts: shorts, Priority: r.Priority}
}

// WithoutShortcut returns a copy of the record with short removed from its
// list. Removing the last shortcut leaves an empty list; callers decide
// whether such a record survives.
func (r Record) WithoutShortcut(short string) Record {
	shorts := make([]string, 0, len(r.Shortcuts))
	for _, s := range r.Shortcuts {
		if s != short {
			shorts = append(shorts, s)
		}
	}
	return Record{Path: r.Path, Shortcuts: shorts, Priority: r.Priority}
}

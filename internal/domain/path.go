package domain

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Normalize canonicalizes a user-supplied directory path: backslashes become
// slashes, `~` expands to the home directory, relative paths (including `.`
// and `..` segments) resolve against cwd, and any trailing slash is trimmed.
// Drive-letter or mount-point rewriting is deliberately not performed here.
func Normalize(p, cwd string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	cwd = strings.ReplaceAll(cwd, "\\", "/")

	switch {
	case p == "":
		p = cwd
	case p == "~" || strings.HasPrefix(p, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.ToSlash(home) + p[1:]
		}
	case !strings.HasPrefix(p, "/"):
		p = cwd + "/" + p
	}

	p = path.Clean(p)
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// LastSegment returns the final path segment, the implicit shortcut name for
// a directory.
func LastSegment(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimSuffix(p, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

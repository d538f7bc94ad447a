package application

import (
	"strings"
)

// FormatState renders the whole store as a column-aligned table for human
// inspection: path, each shortcut in its own column, priority last. Column
// widths are the maximum field width plus one across all records. Read-only;
// the store is never mutated.
func FormatState(data string) string {
	lines := make([][]string, 0)
	for _, raw := range strings.Split(data, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lines = append(lines, strings.Split(line, ";"))
	}

	// Widths cover every column except the trailing priority.
	var widths []int
	for _, fields := range lines {
		for i, f := range fields[:len(fields)-1] {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if len(f)+1 > widths[i] {
				widths[i] = len(f) + 1
			}
		}
	}

	total := 0
	for _, w := range widths {
		total += w
	}

	var b strings.Builder
	for _, fields := range lines {
		priority := fields[len(fields)-1]
		var row strings.Builder
		for i, f := range fields[:len(fields)-1] {
			row.WriteString(f)
			row.WriteString(strings.Repeat(" ", widths[i]-len(f)))
		}
		b.WriteString(row.String())
		if pad := total - row.Len(); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(priority)
		b.WriteString("\n")
	}
	return b.String()
}

package application

import (
	"errors"
	"strings"

	"warp/internal/domain"
)

// Records parses every non-blank store line, collecting a DataError for each
// malformed one instead of aborting. Used by read-only consumers of the
// store (index sync, listings, the picker).
func Records(data string) ([]domain.Record, []error) {
	var records []domain.Record
	var diags []error

	for _, raw := range strings.Split(data, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		rec, err := domain.ParseRecord(line)
		if err != nil {
			if !errors.Is(err, domain.ErrBadPriority) {
				diags = append(diags, &DataError{Line: line, Reason: "malformed record"})
				continue
			}
			// Degraded to priority zero but still listable.
			diags = append(diags, &DataError{Line: line, Reason: "priority is not a number"})
		}
		records = append(records, rec)
	}
	return records, diags
}

// Package roster reshapes a raw spreadsheet grid into per-person tables:
// divider classification, empty-column pruning and assignee grouping.
package roster

import (
	"strings"

	"rostergen/pkg/rostergen/models"
)

// IsDivider reports whether every cell of the row is blank after
// trimming. A zero-length row is vacuously a divider.
func IsDivider(row models.Row) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

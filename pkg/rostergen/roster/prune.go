package roster

import (
	"strings"

	"rostergen/pkg/rostergen/models"
)

// DividerPolicy selects how ApplyMask treats all-blank rows. The two
// behaviors produce genuinely different presentations (a dense table
// vs. one that keeps visual section breaks), so the choice is explicit.
type DividerPolicy int

const (
	// DropDividers removes every divider row.
	DropDividers DividerPolicy = iota
	// CollapseDividers reduces each run of consecutive divider rows to a
	// single one, and suppresses dividers before the first content row
	// and after the last.
	CollapseDividers
)

// ColumnMask is the set of column indices retained by a prune.
type ColumnMask map[int]bool

// ComputeMask scans every non-divider row and retains column i iff some
// row has a non-blank trimmed cell at i. Indices listed in exclude are
// dropped regardless of content. Only indices below len(header) are
// considered.
func ComputeMask(header models.Row, rows []models.Row, exclude map[int]bool) ColumnMask {
	mask := make(ColumnMask)
	for _, row := range rows {
		if IsDivider(row) {
			continue
		}
		n := len(row)
		if n > len(header) {
			n = len(header)
		}
		for i := 0; i < n; i++ {
			if strings.TrimSpace(row[i]) != "" {
				mask[i] = true
			}
		}
	}
	for i := range exclude {
		if exclude[i] {
			delete(mask, i)
		}
	}
	return mask
}

// ApplyMask produces a new table containing only the retained columns,
// in original relative order. Rows shorter than the header are padded
// with empty trailing cells before masking. Divider rows are handled
// according to policy.
func ApplyMask(table models.Table, mask ColumnMask, policy DividerPolicy) models.Table {
	out := models.Table{Header: maskRow(table.Header, table.Header, mask)}

	pendingDivider := false
	for _, row := range table.Rows {
		if IsDivider(row) {
			if policy == CollapseDividers && len(out.Rows) > 0 {
				pendingDivider = true
			}
			continue
		}
		if pendingDivider {
			out.Rows = append(out.Rows, make(models.Row, len(out.Header)))
			pendingDivider = false
		}
		out.Rows = append(out.Rows, maskRow(row, table.Header, mask))
	}
	// A trailing divider run is suppressed: pendingDivider is simply
	// dropped once the input is exhausted.
	return out
}

// maskRow projects row onto the retained columns, padding short rows
// with empty cells at missing trailing positions.
func maskRow(row, header models.Row, mask ColumnMask) models.Row {
	out := models.Row{}
	for i := range header {
		if !mask[i] {
			continue
		}
		if i < len(row) {
			out = append(out, row[i])
		} else {
			out = append(out, "")
		}
	}
	return out
}

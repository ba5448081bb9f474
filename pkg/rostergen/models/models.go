// Package models defines data structures shared by the rostergen pipelines.
package models

// Row is an ordered sequence of string cells. Rows may be shorter than
// the header they belong to; missing trailing cells read as empty.
type Row []string

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	c := make(Row, len(r))
	copy(c, r)
	return c
}

// Table is a header plus the data rows below it. Transforms never
// mutate a Table in place; they produce a new one.
type Table struct {
	// Header holds the column names.
	Header Row
	// Rows holds the data rows in original file order.
	Rows []Row
}

// InviteRecord is one parsed row of the invite list.
type InviteRecord struct {
	// Folder is an optional output subfolder (first column).
	Folder string
	// Name is the text overlaid onto the card (third column).
	Name string
	// Card references the base card template (fourth column).
	Card string
}

// Summary counts the outcome of one batch run.
type Summary struct {
	// Processed is the number of output files written.
	Processed int
	// Skipped is the number of records dropped with a warning.
	Skipped int
}

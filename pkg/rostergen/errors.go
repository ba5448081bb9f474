package rostergen

import "fmt"

// RecordError describes a per-record failure. Records failing this way
// are logged, counted and skipped; they never abort the batch.
type RecordError struct {
	// Row is the 1-based input row number.
	Row int
	// Reason is a short human-readable cause.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

func (e *RecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("row %d: %s: %v", e.Row, e.Reason, e.Err)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

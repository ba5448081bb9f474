package roster

import "errors"

// ErrAssigneeColumnNotFound indicates no header cell contains
// "FOLLOW UP". Grouping cannot proceed at all without it, so callers
// treat this as fatal for the whole run.
var ErrAssigneeColumnNotFound = errors.New(`no "FOLLOW UP" column in header`)

package roster

import (
	"sort"
	"strings"

	"rostergen/pkg/rostergen/models"
)

// assigneeMarker identifies the assignee column: the first header cell
// whose upper-cased text contains this substring.
const assigneeMarker = "FOLLOW UP"

// Buckets maps a person name to the rows assigned to them, in original
// file order.
type Buckets map[string][]models.Row

// People returns the bucket keys in lexicographic order, for stable
// downstream file ordering.
func (b Buckets) People() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AssigneeColumn returns the index of the assignee column, or
// ErrAssigneeColumnNotFound if no header cell matches.
func AssigneeColumn(header models.Row) (int, error) {
	for i, cell := range header {
		if strings.Contains(strings.ToUpper(cell), assigneeMarker) {
			return i, nil
		}
	}
	return 0, ErrAssigneeColumnNotFound
}

// ParseNames splits a comma-separated assignee cell into trimmed,
// non-empty names.
func ParseNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// GroupByAssignee distributes the table's data rows into per-person
// buckets keyed by the names in the assignee column.
//
// Divider rows are appended to every bucket that exists at the point
// the divider is encountered, and never to buckets created afterwards.
// That asymmetry is load-bearing: it keeps section breaks out of
// tables for people who only appear in later sections.
//
// A name repeated within one cell appends the row once per occurrence.
// This mirrors the historical behavior; see TestGroupDuplicateNameInCell.
func GroupByAssignee(table models.Table) (Buckets, error) {
	idx, err := AssigneeColumn(table.Header)
	if err != nil {
		return nil, err
	}

	buckets := make(Buckets)
	for _, row := range table.Rows {
		if IsDivider(row) {
			for person := range buckets {
				buckets[person] = append(buckets[person], row.Clone())
			}
			continue
		}
		if len(row) <= idx {
			// Shorter than the assignee column: no assignees.
			continue
		}
		for _, name := range ParseNames(row[idx]) {
			buckets[name] = append(buckets[name], row)
		}
	}
	return buckets, nil
}

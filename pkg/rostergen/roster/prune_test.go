package roster

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"rostergen/pkg/rostergen/models"
)

func TestComputeMask(t *testing.T) {
	header := models.Row{"A", "B", "C", "D"}
	rows := []models.Row{
		{"1", "", "x", ""},
		{"", "", "", ""},
		{"2", " ", "y"},
	}

	tests := []struct {
		name    string
		exclude map[int]bool
		want    ColumnMask
	}{
		{"no exclusions", nil, ColumnMask{0: true, 2: true}},
		{"exclude content column", map[int]bool{0: true}, ColumnMask{2: true}},
		{"exclude empty column", map[int]bool{1: true}, ColumnMask{0: true, 2: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMask(header, rows, tt.exclude)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ComputeMask mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Content past the header's width never retains a column.
func TestComputeMaskIgnoresOverlongRows(t *testing.T) {
	header := models.Row{"A", "B"}
	rows := []models.Row{{"", "x", "overflow"}}
	got := ComputeMask(header, rows, nil)
	want := ColumnMask{1: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeMask mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyMaskDropDividers(t *testing.T) {
	table := models.Table{
		Header: models.Row{"A", "B", "C"},
		Rows: []models.Row{
			{"1", "", "x"},
			{"", "", ""},
			{"2"}, // short row: pads to header width before masking
		},
	}
	mask := ComputeMask(table.Header, table.Rows, nil)
	got := ApplyMask(table, mask, DropDividers)

	want := models.Table{
		Header: models.Row{"A", "C"},
		Rows: []models.Row{
			{"1", "x"},
			{"2", ""},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ApplyMask mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyMaskCollapseDividers(t *testing.T) {
	table := models.Table{
		Header: models.Row{"A", "B"},
		Rows: []models.Row{
			{"", ""}, // leading divider: suppressed
			{"1", "x"},
			{"", ""},
			{"", ""}, // run of two collapses to one
			{"2", "y"},
			{"", ""}, // trailing divider: suppressed
		},
	}
	mask := ComputeMask(table.Header, table.Rows, nil)
	got := ApplyMask(table, mask, CollapseDividers)

	want := models.Table{
		Header: models.Row{"A", "B"},
		Rows: []models.Row{
			{"1", "x"},
			{"", ""},
			{"2", "y"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ApplyMask mismatch (-want +got):\n%s", diff)
	}
}

// Re-applying a freshly computed mask to an already pruned table must
// change nothing, under either divider policy.
func TestApplyMaskIdempotent(t *testing.T) {
	table := models.Table{
		Header: models.Row{"A", "B", "C", "D"},
		Rows: []models.Row{
			{"", "", ""},
			{"1", "", "x", ""},
			{"", "", "", ""},
			{"2", "", "y"},
			{"", ""},
		},
	}

	for _, policy := range []DividerPolicy{DropDividers, CollapseDividers} {
		pruned := ApplyMask(table, ComputeMask(table.Header, table.Rows, nil), policy)
		again := ApplyMask(pruned, ComputeMask(pruned.Header, pruned.Rows, nil), policy)
		if diff := cmp.Diff(pruned, again); diff != "" {
			t.Errorf("policy %v not idempotent (-first +second):\n%s", policy, diff)
		}
	}
}

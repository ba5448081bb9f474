package layout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// charMetrics gives every rune a fixed width, which makes measured
// width proportional to character count.
type charMetrics struct {
	perRune float64
}

func (m charMetrics) TextWidth(s string) float64 {
	return float64(len([]rune(s))) * m.perRune
}

func TestSplitNameFits(t *testing.T) {
	got := SplitName("Alice Wonderland", charMetrics{10}, 1000)
	if diff := cmp.Diff([]string{"Alice Wonderland"}, got); diff != "" {
		t.Errorf("SplitName mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitNameBalancedSplit(t *testing.T) {
	// "Alice Bob Carol Dave": 20 chars, midpoint 10.
	// k=1 "Alice"=5 (diff 5), k=2 "Alice Bob"=9 (diff 1),
	// k=3 "Alice Bob Carol"=15 (diff 5) -> k=2.
	got := SplitName("Alice Bob Carol Dave", charMetrics{10}, 50)
	want := []string{"Alice Bob", "Carol Dave"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SplitName mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitNameTieBreaksLow(t *testing.T) {
	// "aaa b cc": 8 chars, midpoint 4. k=1 "aaa"=3 (diff 1),
	// k=2 "aaa b"=5 (diff 1): tied, the lower k wins.
	got := SplitName("aaa b cc", charMetrics{10}, 10)
	want := []string{"aaa", "b cc"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SplitName mismatch (-want +got):\n%s", diff)
	}
}

// A single overflowing word comes back as one line, untouched.
func TestSplitNameSingleLongWord(t *testing.T) {
	got := SplitName("Wolfeschlegelsteinhausen", charMetrics{10}, 50)
	if diff := cmp.Diff([]string{"Wolfeschlegelsteinhausen"}, got); diff != "" {
		t.Errorf("SplitName mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitNameNeverMoreThanTwoLines(t *testing.T) {
	names := []string{
		"A",
		"A B",
		"A B C D E F G H I J K L",
		strings.Repeat("Name ", 40),
	}
	for _, name := range names {
		if got := SplitName(name, charMetrics{10}, 30); len(got) > 2 {
			t.Errorf("SplitName(%q) returned %d lines, want <= 2", name, len(got))
		}
	}
}

func TestBaselines(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		y       float64
		spacing float64
		want    []float64
	}{
		{"single line stays put", 1, 360, 36, []float64{360}},
		{"two lines straddle the anchor", 2, 360, 36, []float64{342, 378}},
		{"three lines", 3, 100, 10, []float64{90, 100, 110}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Baselines(tt.n, tt.y, tt.spacing)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Baselines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

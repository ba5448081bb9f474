// Package layout holds the pure geometry decisions of the renderers:
// fitting a name onto a fixed-width card and allocating table column
// widths.
package layout

import "strings"

// Metrics measures rendered text width in the same units as the layout
// parameters (PDF points here, but the package does not care).
type Metrics interface {
	TextWidth(s string) float64
}

// SplitName lays a name out as one or two lines within maxWidth.
//
// If the full name fits it stays on one line. Otherwise it is split at
// the whitespace boundary whose character position is closest to the
// midpoint of the name; ties go to the earliest boundary. The balance
// is judged on character counts, not re-measured widths. A single word
// that overflows is returned as one overflowing line: no truncation,
// no font shrinking.
func SplitName(name string, m Metrics, maxWidth float64) []string {
	if m.TextWidth(name) <= maxWidth {
		return []string{name}
	}

	words := strings.Fields(name)
	if len(words) < 2 {
		return []string{name}
	}

	mid := len([]rune(name)) / 2
	bestSplit := 1
	bestDiff := -1
	for k := 1; k < len(words); k++ {
		pos := len([]rune(strings.Join(words[:k], " ")))
		diff := pos - mid
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			bestDiff = diff
			bestSplit = k
		}
	}

	return []string{
		strings.Join(words[:bestSplit], " "),
		strings.Join(words[bestSplit:], " "),
	}
}

// Baselines returns the baseline y for each of n lines. The block is
// centered on declaredY: the first baseline sits at
// declaredY - (n-1)*spacing/2 and each following line steps down by
// spacing.
func Baselines(n int, declaredY, spacing float64) []float64 {
	ys := make([]float64, n)
	start := declaredY - float64(n-1)*spacing/2
	for i := range ys {
		ys[i] = start + float64(i)*spacing
	}
	return ys
}

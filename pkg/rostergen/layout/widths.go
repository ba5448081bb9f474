package layout

// ColumnWidths assigns a render width to every column. Columns present
// in preferred get their preferred width; the rest share the remaining
// width equally. If every column has a preferred width and their sum
// falls short of available, all widths are scaled up uniformly to fill
// it exactly. Widths are never scaled down: if the preferred sum
// exceeds the available width, the overflow is left to the renderer.
func ColumnWidths(columns []string, preferred map[string]float64, available float64) []float64 {
	widths := make([]float64, len(columns))
	fixedTotal := 0.0
	flexible := 0

	for i, name := range columns {
		if w, ok := preferred[name]; ok {
			widths[i] = w
			fixedTotal += w
		} else {
			widths[i] = -1
			flexible++
		}
	}

	if flexible > 0 {
		share := (available - fixedTotal) / float64(flexible)
		for i, w := range widths {
			if w < 0 {
				widths[i] = share
			}
		}
		return widths
	}

	if fixedTotal < available && fixedTotal > 0 {
		scale := available / fixedTotal
		for i := range widths {
			widths[i] *= scale
		}
	}
	return widths
}

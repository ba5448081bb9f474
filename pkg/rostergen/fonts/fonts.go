// Package fonts discovers a TrueType font down a prioritized path list
// and measures text with it. When no candidate loads, it degrades to
// the built-in Go Regular face rather than failing the run.
package fonts

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// DefaultSearchList mirrors the traditional install locations probed in
// order. Entries may start with "~/".
var DefaultSearchList = []string{
	"fonts/calisto-mt.ttf",
	"/Library/Fonts/Calibri.ttf",
	"/System/Library/Fonts/Supplemental/Calibri.ttf",
	"~/Library/Fonts/Calibri.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// Font is a parsed TrueType font plus its raw bytes, which the PDF
// layer embeds directly.
type Font struct {
	// Path is the file the font was loaded from; empty for the built-in.
	Path string
	// Builtin is true when the Go Regular fallback is in use.
	Builtin bool
	// Data holds the raw TTF bytes.
	Data []byte

	parsed *sfnt.Font
}

// Discover tries each path in order and returns the first font that
// parses. With no usable candidate it returns the built-in fallback;
// callers can check Builtin to log the degradation.
func Discover(paths []string) (*Font, error) {
	for _, p := range paths {
		data, err := os.ReadFile(expandHome(p))
		if err != nil {
			continue
		}
		parsed, err := sfnt.Parse(data)
		if err != nil {
			continue
		}
		return &Font{Path: p, Data: data, parsed: parsed}, nil
	}

	parsed, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Font{Builtin: true, Data: goregular.TTF, parsed: parsed}, nil
}

// Metrics returns a text measurer for this font at the given size in
// points. The measurer is not safe for concurrent use.
func (f *Font) Metrics(size float64) *Metrics {
	return &Metrics{font: f.parsed, ppem: fixed.Int26_6(size * 64)}
}

// Metrics measures rendered text width, in the same points the size was
// given in. It implements layout.Metrics.
type Metrics struct {
	font *sfnt.Font
	ppem fixed.Int26_6
	buf  sfnt.Buffer
}

// TextWidth returns the advance width of s: glyph advances plus kerning
// between adjacent glyphs. Runes without a glyph fall back to the
// font's notdef glyph.
func (m *Metrics) TextWidth(s string) float64 {
	var total fixed.Int26_6
	prev := sfnt.GlyphIndex(0)
	first := true
	for _, r := range s {
		gi, err := m.font.GlyphIndex(&m.buf, r)
		if err != nil {
			continue
		}
		adv, err := m.font.GlyphAdvance(&m.buf, gi, m.ppem, font.HintingNone)
		if err != nil {
			continue
		}
		total += adv
		if !first {
			if kern, err := m.font.Kern(&m.buf, prev, gi, m.ppem, font.HintingNone); err == nil {
				total += kern
			}
		}
		prev = gi
		first = false
	}
	return float64(total) / 64
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

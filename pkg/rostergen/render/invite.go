package render

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"rostergen/pkg/rostergen/fonts"
	"rostergen/pkg/rostergen/layout"
	"rostergen/pkg/rostergen/models"
)

// Color is an RGB text color.
type Color struct {
	R, G, B int
}

// ParseColor parses a "#RRGGBB" hex color.
func ParseColor(s string) (Color, error) {
	hex := s
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	var c [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q", s)
		}
		c[i] = int(v)
	}
	return Color{R: c[0], G: c[1], B: c[2]}, nil
}

// InviteStyle controls where and how the name lands on the card. All
// lengths are PDF points; TextY is the baseline anchor measured from
// the top of the page.
type InviteStyle struct {
	FontSize     float64
	TextY        float64
	TextX        float64
	MaxTextWidth float64
	LineSpacing  float64
	Center       bool
	Color        Color
}

// InviteRenderer overlays a personal name onto page 1 of a base card
// and writes the personalized copy, preserving all remaining pages.
type InviteRenderer struct {
	cards *TemplateCache
	font  *fonts.Font
	style InviteStyle
}

// NewInviteRenderer returns a renderer over the given card cache and
// discovered font.
func NewInviteRenderer(cards *TemplateCache, font *fonts.Font, style InviteStyle) *InviteRenderer {
	return &InviteRenderer{cards: cards, font: font, style: style}
}

// Render writes the personalized card for rec to outPath. A missing
// card reference returns an error wrapping ErrTemplateNotFound; the
// caller decides whether to skip or abort.
func (r *InviteRenderer) Render(rec models.InviteRecord, outPath string) error {
	tpl, err := r.cards.Resolve(rec.Card)
	if err != nil {
		return err
	}

	metrics := r.font.Metrics(r.style.FontSize)
	lines := layout.SplitName(rec.Name, metrics, r.style.MaxTextWidth)
	ys := layout.Baselines(len(lines), r.style.TextY, r.style.LineSpacing)

	overlay, err := r.buildOverlay(tpl, lines, ys, metrics)
	if err != nil {
		return fmt.Errorf("building overlay for %q: %w", rec.Name, err)
	}
	defer os.Remove(overlay)

	// The overlay page matches the card's page 1 exactly, so an
	// unscaled centered stamp lines the two up corner to corner.
	wm, err := api.PDFWatermark(overlay, "scalefactor:1 abs, opacity:1, rotation:0, position:c", true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("preparing overlay stamp: %w", err)
	}
	if err := api.AddWatermarksFile(tpl.Path, outPath, []string{"1"}, wm, nil); err != nil {
		return fmt.Errorf("stamping %s: %w", tpl.Path, err)
	}
	return nil
}

// buildOverlay writes a text-only single-page PDF at the card's page
// size and returns its path. The caller removes the file.
func (r *InviteRenderer) buildOverlay(tpl *Template, lines []string, ys []float64, metrics *fonts.Metrics) (string, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: tpl.Width, Ht: tpl.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddUTF8FontFromBytes("card", "", r.font.Data)
	pdf.AddPage()
	pdf.SetFont("card", "", r.style.FontSize)
	pdf.SetTextColor(r.style.Color.R, r.style.Color.G, r.style.Color.B)

	for i, line := range lines {
		x := r.style.TextX
		if r.style.Center {
			// Each line is centered independently.
			x = (tpl.Width - metrics.TextWidth(line)) / 2
		}
		pdf.Text(x, ys[i], line)
	}
	if err := pdf.Error(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp("", "overlay-*.pdf")
	if err != nil {
		return "", err
	}
	if err := pdf.Output(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

package render

import (
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"rostergen/pkg/rostergen/layout"
	"rostergen/pkg/rostergen/models"
)

// Page geometry in points.
const (
	marginLeft   = 0.4 * 72
	marginRight  = 0.4 * 72
	marginTop    = 0.5 * 72
	marginBottom = 0.4 * 72

	headerFontSize = 8
	headerLeading  = 10
	cellFontSize   = 6
	cellLeading    = 7.5
	cellPadX       = 4
	cellPadY       = 4
)

// AllotRenderer writes one A4 work-allocation document per person. The
// optional watermark is stamped under the content of every page.
type AllotRenderer struct {
	widths    map[string]float64
	watermark *model.Watermark
}

// NewAllotRenderer returns a renderer with the given preferred column
// widths. watermark may be nil.
func NewAllotRenderer(widths map[string]float64, watermark *model.Watermark) *AllotRenderer {
	return &AllotRenderer{widths: widths, watermark: watermark}
}

// Render writes the allocation document for one person. table must
// already be pruned; its header drives the column layout.
func (r *AllotRenderer) Render(person string, table models.Table, outPath string) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	avail := pageW - marginLeft - marginRight
	maxY := pageH - marginBottom

	r.drawTitle(pdf, person, avail)

	widths := layout.ColumnWidths(table.Header, r.widths, avail)
	t := tableWriter{pdf: pdf, widths: widths, header: table.Header, maxY: maxY}
	t.drawHeader()
	for _, row := range table.Rows {
		t.drawRow(row)
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("rendering for %s: %w", person, err)
	}

	if r.watermark == nil {
		return pdf.OutputFileAndClose(outPath)
	}

	tmp, err := os.CreateTemp("", "allot-*.pdf")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := pdf.Output(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := api.AddWatermarksFile(tmp.Name(), outPath, nil, r.watermark, nil); err != nil {
		return fmt.Errorf("watermarking %s: %w", outPath, err)
	}
	return nil
}

// drawTitle writes the subtitle, the person's name and the decorative
// rules above the table.
func (r *AllotRenderer) drawTitle(pdf *fpdf.Fpdf, person string, avail float64) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(127, 140, 141)
	pdf.CellFormat(avail, 14, "WORK ALLOCATION", "", 1, "C", false, 0, "")

	rule := func() {
		y := pdf.GetY() + 4
		x0 := marginLeft + avail*0.35
		pdf.SetDrawColor(52, 152, 219)
		pdf.SetLineWidth(1)
		pdf.Line(x0, y, x0+avail*0.3, y)
		pdf.SetY(y + 6)
	}
	rule()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(avail, 24, person, "", 1, "C", false, 0, "")
	rule()
	pdf.SetY(pdf.GetY() + 8)
}

// tableWriter draws the allocation grid row by row with manual page
// breaks. The header row is repeated at the top of every page.
type tableWriter struct {
	pdf    *fpdf.Fpdf
	widths []float64
	header models.Row
	maxY   float64
}

func (t *tableWriter) drawHeader() {
	t.pdf.SetFont("Helvetica", "B", headerFontSize)
	t.pdf.SetFillColor(68, 114, 196)
	t.pdf.SetTextColor(245, 245, 245)
	t.draw(t.header, headerLeading, headerFontSize, true)
}

func (t *tableWriter) drawRow(row models.Row) {
	t.pdf.SetFont("Helvetica", "", cellFontSize)
	t.pdf.SetTextColor(0, 0, 0)
	t.draw(row, cellLeading, cellFontSize, false)
}

func (t *tableWriter) draw(row models.Row, leading, fontSize float64, fill bool) {
	// Wrap every cell first; the tallest cell sets the row height.
	lines := make([][]string, len(t.widths))
	maxLines := 1
	for i := range t.widths {
		if i >= len(row) || row[i] == "" {
			continue
		}
		lines[i] = t.pdf.SplitText(row[i], t.widths[i]-2*cellPadX)
		if len(lines[i]) > maxLines {
			maxLines = len(lines[i])
		}
	}
	rowH := float64(maxLines)*leading + 2*cellPadY

	if t.pdf.GetY()+rowH > t.maxY && !fill {
		t.pdf.AddPage()
		t.drawHeader()
		t.pdf.SetFont("Helvetica", "", cellFontSize)
		t.pdf.SetTextColor(0, 0, 0)
	}

	t.pdf.SetDrawColor(128, 128, 128)
	t.pdf.SetLineWidth(0.5)

	y := t.pdf.GetY()
	x := marginLeft
	style := "D"
	if fill {
		style = "FD"
	}
	for i, w := range t.widths {
		t.pdf.Rect(x, y, w, rowH, style)
		for j, ln := range lines[i] {
			tx := x + cellPadX
			if fill {
				tx = x + (w-t.pdf.GetStringWidth(ln))/2
			}
			t.pdf.Text(tx, y+cellPadY+float64(j)*leading+fontSize*0.8, ln)
		}
		x += w
	}
	t.pdf.SetY(y + rowH)
}

package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// watermarkDesc centers the asset at 60% of the page size at low
// opacity, behind the page content.
const watermarkDesc = "scalefactor:0.6 rel, opacity:0.1, rotation:0, position:c"

// LoadWatermark builds a background stamp from an image or PDF asset.
// A missing file is not an error: it returns (nil, nil) and the run
// proceeds without a watermark. An unreadable or malformed asset is
// reported so the caller can warn.
func LoadWatermark(path string) (*model.Watermark, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var (
		wm  *model.Watermark
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		wm, err = api.PDFWatermark(path, watermarkDesc, false, false, types.POINTS)
	} else {
		wm, err = api.ImageWatermark(path, watermarkDesc, false, false, types.POINTS)
	}
	if err != nil {
		return nil, fmt.Errorf("loading watermark %s: %w", path, err)
	}
	return wm, nil
}

// Package render writes the output PDFs: name overlays onto base cards
// and per-person allocation tables, with optional watermarking.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrTemplateNotFound indicates a card reference resolved to no file in
// the template directory.
var ErrTemplateNotFound = errors.New("base card not found")

// Template is one resolved base card.
type Template struct {
	// Path is the resolved file path.
	Path string
	// PageCount is the number of pages in the card.
	PageCount int
	// Width and Height are the dimensions of page 1 in points.
	Width  float64
	Height float64
}

// TemplateCache resolves card references against a directory and keeps
// the result for the rest of the run. Templates are assumed immutable
// for the run; entries are never invalidated. The cache belongs to one
// batch and is used from a single goroutine.
type TemplateCache struct {
	dir     string
	entries map[string]*Template
}

// NewTemplateCache returns an empty cache over dir.
func NewTemplateCache(dir string) *TemplateCache {
	return &TemplateCache{dir: dir, entries: make(map[string]*Template)}
}

// Resolve looks up a card by its raw reference, trying the name as
// given and then with a ".pdf" suffix. The first hit is inspected once
// and cached under the reference.
func (c *TemplateCache) Resolve(name string) (*Template, error) {
	if tpl, ok := c.entries[name]; ok {
		return tpl, nil
	}

	path := filepath.Join(c.dir, name)
	if _, err := os.Stat(path); err != nil {
		if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
			path += ".pdf"
		}
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading card %s: %w", path, err)
	}
	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("inspecting card %s: %w", path, err)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("card %s has no pages", path)
	}

	tpl := &Template{
		Path:      path,
		PageCount: ctx.PageCount,
		Width:     dims[0].Width,
		Height:    dims[0].Height,
	}
	c.entries[name] = tpl
	return tpl, nil
}

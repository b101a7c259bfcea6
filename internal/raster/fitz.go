// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raster

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/pdiddy/pdf-toolkit/pkg/types"
)

// FitzRasterizer renders PDFs with MuPDF through go-fitz.
type FitzRasterizer struct{}

// NewFitzRasterizer creates a go-fitz backed rasterizer.
func NewFitzRasterizer() *FitzRasterizer {
	return &FitzRasterizer{}
}

// Name returns "fitz".
func (f *FitzRasterizer) Name() string { return string(types.BackendFitz) }

// Render opens the document, renders each page at dpi and closes the
// document before returning, whether or not rendering succeeded.
func (f *FitzRasterizer) Render(pdfPath string, dpi float64) ([]image.Image, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer doc.Close()

	dpi = resolveDPI(dpi)
	n := doc.NumPage()
	pages := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		img, err := doc.ImageDPI(i, dpi)
		if err != nil {
			return nil, fmt.Errorf("rendering page %d of %s: %w", i+1, pdfPath, err)
		}
		pages = append(pages, img)
	}
	return pages, nil
}

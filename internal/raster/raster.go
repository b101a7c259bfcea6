// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package raster renders PDF pages into in-memory images. Backends
// (go-fitz, pdftoppm) implement the Rasterizer interface and are selected by
// name at startup.
package raster

import (
	"fmt"
	"image"

	"github.com/pdiddy/pdf-toolkit/pkg/types"
)

const (
	// DefaultDPI is the resolution used when a caller does not ask for one.
	// Text extraction renders at this resolution.
	DefaultDPI = 200.0

	// ExportDPI is the resolution used when pages are exported as PNG files.
	ExportDPI = 300.0
)

// Rasterizer renders every page of a PDF into an image.
type Rasterizer interface {
	// Name returns the backend name ("fitz" or "pdftoppm").
	Name() string

	// Render opens the PDF at pdfPath and returns one image per page in
	// document order. A dpi of zero or less selects DefaultDPI.
	Render(pdfPath string, dpi float64) ([]image.Image, error)
}

// New returns the rasterizer for the named backend. An empty name selects
// go-fitz.
func New(backend string) (Rasterizer, error) {
	return newRasterizer(types.RasterBackend(backend), defaultExec)
}

func newRasterizer(backend types.RasterBackend, exec executor) (Rasterizer, error) {
	switch backend {
	case "", types.BackendFitz:
		return NewFitzRasterizer(), nil
	case types.BackendPdftoppm:
		return newPopplerRasterizer(exec)
	default:
		return nil, fmt.Errorf("unknown raster backend %q: use %s or %s",
			backend, types.BackendFitz, types.BackendPdftoppm)
	}
}

func resolveDPI(dpi float64) float64 {
	if dpi <= 0 {
		return DefaultDPI
	}
	return dpi
}

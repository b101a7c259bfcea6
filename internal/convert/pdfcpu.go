// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"golang.org/x/image/draw"
)

const (
	// pageDPI is the resolution each image is placed at, independent of
	// any resolution recorded in the source file.
	pageDPI = 100
	// jpegQuality is the quality pages are re-encoded at.
	jpegQuality = 95
)

// PDFCPUAssembler builds PDFs with pdfcpu. Each image is flattened onto a
// white RGB canvas, JPEG encoded and imported as one page of the image's
// size at pageDPI.
type PDFCPUAssembler struct {
	conf *model.Configuration
}

// NewPDFCPUAssembler returns an assembler using pdfcpu's default
// configuration, without reading or creating a pdfcpu config directory.
func NewPDFCPUAssembler() *PDFCPUAssembler {
	api.DisableConfigDir()
	return &PDFCPUAssembler{conf: model.NewDefaultConfiguration()}
}

// Assemble writes images to outPath, one page per image in slice order.
// Each page is sized to hold its image at pageDPI. The PDF is written to a
// temporary file in the same folder and renamed into place, so a failed run
// leaves no output file behind.
func (a *PDFCPUAssembler) Assemble(images []image.Image, outPath string) error {
	if len(images) == 0 {
		return ErrNoImages
	}

	// pdfcpu applies one import configuration per call, and the page size
	// depends on each image, so pages are appended one call at a time.
	var doc []byte
	for i, img := range images {
		var page bytes.Buffer
		if err := jpeg.Encode(&page, flatten(img), &jpeg.Options{Quality: jpegQuality}); err != nil {
			return fmt.Errorf("encoding page %d: %w", i+1, err)
		}

		var rs io.ReadSeeker
		if doc != nil {
			rs = bytes.NewReader(doc)
		}
		var buf bytes.Buffer
		if err := api.ImportImages(rs, &buf, []io.Reader{&page}, pageImport(img.Bounds()), a.conf); err != nil {
			return fmt.Errorf("importing page %d: %w", i+1, err)
		}
		doc = buf.Bytes()
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".pdf-toolkit-*.pdf")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("moving PDF into place at %s: %w", outPath, err)
	}
	return nil
}

// pageImport returns the import configuration for an image with bounds b:
// a page of exactly the image's size at pageDPI, with the image unscaled.
func pageImport(b image.Rectangle) *pdfcpu.Import {
	imp := pdfcpu.DefaultImportConfig()
	imp.PageDim = &pdftypes.Dim{Width: pagePoints(b.Dx()), Height: pagePoints(b.Dy())}
	imp.UserDim = true
	imp.Pos = pdftypes.Center
	imp.DPI = pageDPI
	imp.Scale = 1
	imp.ScaleAbs = true
	return imp
}

// pagePoints converts a pixel length at pageDPI to PDF points.
func pagePoints(px int) float64 {
	return float64(px) * 72 / pageDPI
}

// flatten draws img over a white RGBA canvas so transparent regions render
// white once alpha is dropped by the JPEG encoder.
func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pdiddy/pdf-toolkit/internal/raster"
	"github.com/pdiddy/pdf-toolkit/pkg/types"
)

// PageFileName returns the PNG name for the 1-based page n.
func PageFileName(n int) string {
	return fmt.Sprintf("page_%d.png", n)
}

// PDFToImages renders every page of pdfPath at raster.ExportDPI and writes
// page_1.png .. page_N.png into outDir, creating it if needed. Pages already
// written are left in place when a later page fails.
func (t *Toolkit) PDFToImages(pdfPath, outDir string) Result {
	const prefix = "Error converting PDF to images"
	res := Result{Source: pdfPath}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return t.fail(res, prefix, fmt.Errorf("%s: creating %s: %w", pdfPath, outDir, err))
	}

	pages, err := t.Rasterizer.Render(pdfPath, raster.ExportDPI)
	if err != nil {
		return t.fail(res, prefix, fmt.Errorf("%s: %w", pdfPath, err))
	}
	t.log().Debug("rendered PDF",
		zap.String("pdf", pdfPath),
		zap.String("backend", t.Rasterizer.Name()),
		zap.Int("pages", len(pages)),
		zap.Float64("dpi", raster.ExportDPI))

	for i, page := range pages {
		imgPath := filepath.Join(outDir, PageFileName(i+1))
		if err := writePNG(imgPath, page); err != nil {
			return t.fail(res, prefix, fmt.Errorf("%s: %w", pdfPath, err))
		}
		res.Outputs = append(res.Outputs, imgPath)
		fmt.Fprintf(t.out(), "Saved: %s\n", imgPath)
	}

	res.Status = types.ConversionDone
	return res
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

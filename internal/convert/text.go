// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/pdf-toolkit/internal/raster"
	"github.com/pdiddy/pdf-toolkit/pkg/types"
)

// TextFileName returns the output name for pdfPath: its base name with a
// trailing .pdf extension (any case) replaced by .txt.
func TextFileName(pdfPath string) string {
	base := filepath.Base(pdfPath)
	if ext := filepath.Ext(base); strings.EqualFold(ext, ".pdf") {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".txt"
}

// PDFToText renders pdfPath at the rasterizer's default resolution, runs OCR
// on each page in order and writes the concatenated text, with no page
// separators, to outDir/<name>.txt as UTF-8. An existing file is
// overwritten. A failure on any page fails the whole file.
func (t *Toolkit) PDFToText(pdfPath, outDir string) Result {
	prefix := "Error processing " + pdfPath
	res := Result{Source: pdfPath}

	pages, err := t.Rasterizer.Render(pdfPath, raster.DefaultDPI)
	if err != nil {
		return t.fail(res, prefix, err)
	}

	var text strings.Builder
	for i, page := range pages {
		s, err := t.Recognizer.Recognize(page)
		if err != nil {
			return t.fail(res, prefix, fmt.Errorf("page %d: %w", i+1, err))
		}
		text.WriteString(s)
	}
	t.log().Debug("recognized PDF",
		zap.String("pdf", pdfPath),
		zap.Int("pages", len(pages)),
		zap.Int("chars", text.Len()))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return t.fail(res, prefix, fmt.Errorf("creating %s: %w", outDir, err))
	}
	txtPath := filepath.Join(outDir, TextFileName(pdfPath))
	content := strings.ToValidUTF8(text.String(), "\uFFFD")
	if err := os.WriteFile(txtPath, []byte(content), 0o644); err != nil {
		return t.fail(res, prefix, fmt.Errorf("writing %s: %w", txtPath, err))
	}

	fmt.Fprintf(t.out(), "Saved text for '%s' to '%s'\n", pdfPath, txtPath)
	res.Outputs = []string{txtPath}
	res.Status = types.ConversionDone
	return res
}

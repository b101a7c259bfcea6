// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdf-toolkit/pkg/types"
)

// IsPDF reports whether name ends in .pdf, ignoring case.
func IsPDF(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}

// ProcessFolder converts every PDF directly inside srcDir according to mode,
// writing into dstDir. Subdirectories are not descended into and other files
// are skipped silently. The mode is checked for each PDF: with a mode other
// than images or text each PDF gets a diagnostic line and nothing is
// converted.
func (t *Toolkit) ProcessFolder(srcDir, dstDir string, mode Mode) BatchResult {
	batch := NewBatch(mode, srcDir, dstDir)
	w := t.out()

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		fmt.Fprintf(w, "Error creating output folder %s: %v\n", dstDir, err)
		return batch
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		fmt.Fprintf(w, "Error reading folder %s: %v\n", srcDir, err)
		return batch
	}

	for _, entry := range entries {
		if entry.IsDir() || !IsPDF(entry.Name()) {
			continue
		}
		pdfPath := filepath.Join(srcDir, entry.Name())

		switch mode {
		case ModeImages:
			batch.Add(t.PDFToImages(pdfPath, dstDir))
		case ModeText:
			batch.Add(t.PDFToText(pdfPath, dstDir))
		default:
			fmt.Fprintln(w, "Invalid operation. Choose 'images' or 'text'.")
			batch.Add(Result{
				Source: pdfPath,
				Status: types.ConversionSkipped,
				Err:    fmt.Errorf("%w: %q", ErrInvalidMode, mode),
			})
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		batch.Converted, batch.Skipped, batch.Failed, batch.Total())
	return batch
}

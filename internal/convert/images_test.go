// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf-toolkit/internal/raster"
	"github.com/pdiddy/pdf-toolkit/pkg/types"
)

func TestPDFToImages(t *testing.T) {
	src := t.TempDir()
	pdfPath := writeFile(t, src, "scan.pdf", "pdf")
	outDir := filepath.Join(t.TempDir(), "output", "images")

	r := &fakeRasterizer{pageCounts: map[string]int{"scan.pdf": 3}}
	tk, out := newTestToolkit(r, nil)

	res := tk.PDFToImages(pdfPath, outDir)

	require.True(t, res.OK(), "result: %+v", res)
	require.Len(t, res.Outputs, 3)
	for i := 1; i <= 3; i++ {
		path := filepath.Join(outDir, PageFileName(i))
		assert.Equal(t, path, res.Outputs[i-1])
		assert.Equal(t, i, decodeWidth(t, path), "page_%d.png holds the wrong page", i)
		assert.Contains(t, out.String(), "Saved: "+path)
	}

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, []float64{raster.ExportDPI}, r.dpis)
}

func TestPDFToImages_RenderFailure(t *testing.T) {
	src := t.TempDir()
	pdfPath := writeFile(t, src, "corrupt.pdf", "not a pdf")
	outDir := filepath.Join(t.TempDir(), "images")

	r := &fakeRasterizer{errs: map[string]error{"corrupt.pdf": errors.New("no xref table")}}
	tk, out := newTestToolkit(r, nil)

	res := tk.PDFToImages(pdfPath, outDir)

	assert.Equal(t, types.ConversionFailed, res.Status)
	require.Error(t, res.Err)
	assert.Contains(t, out.String(), "Error converting PDF to images")
	assert.Contains(t, out.String(), pdfPath)
	assert.Empty(t, res.Outputs)

	// The destination folder is still created before rendering.
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPageFileName(t *testing.T) {
	assert.Equal(t, "page_1.png", PageFileName(1))
	assert.Equal(t, "page_12.png", PageFileName(12))
}

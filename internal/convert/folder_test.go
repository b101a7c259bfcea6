// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf-toolkit/pkg/types"
)

// setupMixedFolder creates a source folder holding two PDFs (one with an
// upper-case extension), non-PDF files, and a subfolder containing a PDF.
func setupMixedFolder(t *testing.T) string {
	t.Helper()
	src := t.TempDir()
	writeFile(t, src, "a.pdf", "pdf")
	writeFile(t, src, "B.PDF", "pdf")
	writeFile(t, src, "notes.txt", "text")
	writeFile(t, src, "pdf", "no extension")
	sub := filepath.Join(src, "nested.pdf")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	writeFile(t, sub, "deep.pdf", "pdf")
	return src
}

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF("a.pdf"))
	assert.True(t, IsPDF("A.PDF"))
	assert.True(t, IsPDF("x.Pdf"))
	assert.False(t, IsPDF("a.pdf.txt"))
	assert.False(t, IsPDF("pdf"))
}

func TestProcessFolder_Text(t *testing.T) {
	src := setupMixedFolder(t)
	dst := filepath.Join(t.TempDir(), "output", "texts")

	r := &fakeRasterizer{pageCounts: map[string]int{"a.pdf": 1, "B.PDF": 2}}
	tk, out := newTestToolkit(r, nil)

	batch := tk.ProcessFolder(src, dst, ModeText)

	assert.Equal(t, 2, batch.Converted)
	assert.Equal(t, 0, batch.Failed)
	assert.Len(t, r.dpis, 2, "only the two top-level PDFs are rendered")
	assert.FileExists(t, filepath.Join(dst, "a.txt"))
	assert.FileExists(t, filepath.Join(dst, "B.txt"))
	assert.NoFileExists(t, filepath.Join(dst, "deep.txt"))
	assert.NoFileExists(t, filepath.Join(dst, "notes.txt"))
	assert.Contains(t, out.String(), "Batch summary: 2 converted, 0 skipped, 0 failed (total: 2)")
}

func TestProcessFolder_Images(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "deck.pdf", "pdf")
	dst := filepath.Join(t.TempDir(), "images")

	r := &fakeRasterizer{pageCounts: map[string]int{"deck.pdf": 2}}
	tk, _ := newTestToolkit(r, nil)

	batch := tk.ProcessFolder(src, dst, ModeImages)

	require.Equal(t, 1, batch.Converted)
	assert.FileExists(t, filepath.Join(dst, "page_1.png"))
	assert.FileExists(t, filepath.Join(dst, "page_2.png"))
}

func TestProcessFolder_ContinuesAfterFailure(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "bad.pdf", "pdf")
	writeFile(t, src, "good.pdf", "pdf")
	dst := t.TempDir()

	r := &fakeRasterizer{
		pageCounts: map[string]int{"good.pdf": 1},
		errs:       map[string]error{"bad.pdf": errors.New("encrypted")},
	}
	tk, out := newTestToolkit(r, nil)

	batch := tk.ProcessFolder(src, dst, ModeText)

	assert.Equal(t, 1, batch.Converted)
	assert.Equal(t, 1, batch.Failed)
	assert.True(t, batch.HasFailures())
	assert.FileExists(t, filepath.Join(dst, "good.txt"))
	assert.Contains(t, out.String(), "Error processing "+filepath.Join(src, "bad.pdf"))
}

func TestProcessFolder_InvalidMode(t *testing.T) {
	src := setupMixedFolder(t)
	dst := filepath.Join(t.TempDir(), "dst")

	r := &fakeRasterizer{}
	tk, out := newTestToolkit(r, nil)

	batch := tk.ProcessFolder(src, dst, Mode("xyz"))

	assert.Equal(t, 0, batch.Converted)
	assert.Equal(t, 2, batch.Skipped)
	assert.Empty(t, r.dpis)
	for _, item := range batch.Items {
		assert.Equal(t, types.ConversionSkipped, item.Status)
		assert.ErrorIs(t, item.Err, ErrInvalidMode)
	}
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid operation. Choose 'images' or 'text'."),
		"the mode is reported once per PDF")

	entries, err := os.ReadDir(dst)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProcessFolder_MissingSource(t *testing.T) {
	tk, out := newTestToolkit(&fakeRasterizer{}, nil)

	batch := tk.ProcessFolder(filepath.Join(t.TempDir(), "missing"), t.TempDir(), ModeText)

	assert.Equal(t, 0, batch.Total())
	assert.Contains(t, out.String(), "Error reading folder")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf-toolkit/internal/convert"
	"github.com/pdiddy/pdf-toolkit/internal/ocr"
	"github.com/pdiddy/pdf-toolkit/internal/raster"
)

// fakeRasterizer renders every PDF as pageCount blank pages.
type fakeRasterizer struct {
	pageCount int
}

func (f *fakeRasterizer) Name() string { return "fake" }

func (f *fakeRasterizer) Render(pdfPath string, dpi float64) ([]image.Image, error) {
	if strings.Contains(filepath.Base(pdfPath), "broken") {
		return nil, errors.New("cannot parse document")
	}
	pages := make([]image.Image, f.pageCount)
	for i := range pages {
		pages[i] = image.NewGray(image.Rect(0, 0, i+1, 1))
	}
	return pages, nil
}

type fakeRecognizer struct{}

func (fakeRecognizer) Recognize(img image.Image) (string, error) {
	return fmt.Sprintf("[%d]", img.Bounds().Dx()), nil
}

// fakeAssembler writes a marker file listing the page count.
type fakeAssembler struct{}

func (fakeAssembler) Assemble(images []image.Image, outPath string) error {
	return os.WriteFile(outPath, []byte(fmt.Sprintf("pages=%d", len(images))), 0o644)
}

// useFakes swaps the collaborator constructors for the duration of a test.
func useFakes(t *testing.T, pages int) {
	t.Helper()
	origR, origO, origA := newRasterizer, newRecognizer, newAssembler
	newRasterizer = func(string) (raster.Rasterizer, error) { return &fakeRasterizer{pageCount: pages}, nil }
	newRecognizer = func([]string) ocr.Recognizer { return fakeRecognizer{} }
	newAssembler = func() convert.Assembler { return fakeAssembler{} }
	t.Cleanup(func() {
		newRasterizer, newRecognizer, newAssembler = origR, origO, origA
	})
}

// resetFlags restores every scalar flag to its default so state does not
// leak between executions of the shared command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Value.Type() != "stringSlice" {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the CLI with stdin and args and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// setupWorkspace creates <tmp>/pdfs with the given PDF names and returns
// the tmp root and the PDF folder.
func setupWorkspace(t *testing.T, pdfs ...string) (root, pdfDir string) {
	t.Helper()
	root = t.TempDir()
	pdfDir = filepath.Join(root, "pdfs")
	require.NoError(t, os.MkdirAll(pdfDir, 0o755))
	for _, name := range pdfs {
		require.NoError(t, os.WriteFile(filepath.Join(pdfDir, name), []byte("pdf"), 0o644))
	}
	return root, pdfDir
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "pdf-toolkit dev\n", out)
}

func TestLoadConfig_LanguagesFromEnv(t *testing.T) {
	tests := []struct {
		env  string
		want []string
	}{
		{"eng", []string{"eng"}},
		{"eng,deu", []string{"eng", "deu"}},
		{"eng deu", []string{"eng", "deu"}},
		{" eng, deu ,fra", []string{"eng", "deu", "fra"}},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			resetFlags(rootCmd)
			t.Setenv("PDF_TOOLKIT_LANG", tt.env)

			cfg := loadConfig()

			assert.Equal(t, tt.want, cfg.Languages)
			assert.Equal(t, tt.want, cfg.OCRLanguages())
		})
	}
}

func TestSplitLanguages(t *testing.T) {
	assert.Equal(t, []string{"eng", "deu"}, splitLanguages([]string{"eng", "deu"}))
	assert.Equal(t, []string{"eng", "deu"}, splitLanguages([]string{"eng,deu"}))
	assert.Empty(t, splitLanguages(nil))
}

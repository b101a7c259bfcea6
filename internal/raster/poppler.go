// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/pdf-toolkit/pkg/types"
)

const binPdftoppm = "pdftoppm"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

var defaultExec executor = &osExecutor{}

// PopplerRasterizer renders PDFs by shelling out to pdftoppm. Pages are
// rendered as PNG files into a temporary directory, decoded, and the
// directory is removed before Render returns.
type PopplerRasterizer struct {
	bin  string
	exec executor
}

// NewPopplerRasterizer returns a pdftoppm backed rasterizer, or an error if
// pdftoppm is not on PATH.
func NewPopplerRasterizer() (*PopplerRasterizer, error) {
	return newPopplerRasterizer(defaultExec)
}

func newPopplerRasterizer(exec executor) (*PopplerRasterizer, error) {
	if _, err := exec.LookPath(binPdftoppm); err != nil {
		return nil, fmt.Errorf("%s not available (install poppler): %w", binPdftoppm, err)
	}
	return &PopplerRasterizer{bin: binPdftoppm, exec: exec}, nil
}

// Name returns "pdftoppm".
func (p *PopplerRasterizer) Name() string { return string(types.BackendPdftoppm) }

// Render runs pdftoppm on pdfPath at dpi and decodes the rendered pages in
// page number order.
func (p *PopplerRasterizer) Render(pdfPath string, dpi float64) ([]image.Image, error) {
	tmpDir, err := os.MkdirTemp("", "pdf-toolkit-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	res := strconv.FormatFloat(resolveDPI(dpi), 'f', -1, 64)
	args := []string{"-png", "-r", res, pdfPath, prefix}
	if out, err := p.exec.Run(p.bin, args...); err != nil {
		return nil, fmt.Errorf("%s failed on %s: %w: %s", p.bin, pdfPath, err, strings.TrimSpace(string(out)))
	}

	matches, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s rendered no pages for %s", p.bin, pdfPath)
	}
	// pdftoppm zero-pads page numbers only to the width of the page count.
	sort.Slice(matches, func(i, j int) bool {
		return pageIndex(matches[i]) < pageIndex(matches[j])
	})

	pages := make([]image.Image, 0, len(matches))
	for _, m := range matches {
		img, err := decodePNG(m)
		if err != nil {
			return nil, err
		}
		pages = append(pages, img)
	}
	return pages, nil
}

// pageIndex extracts n from a rendered file name of the form prefix-n.png.
func pageIndex(path string) int {
	base := strings.TrimSuffix(filepath.Base(path), ".png")
	i := strings.LastIndex(base, "-")
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(base[i+1:])
	if err != nil {
		return 0
	}
	return n
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rendered page %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding rendered page %s: %w", path, err)
	}
	return img, nil
}

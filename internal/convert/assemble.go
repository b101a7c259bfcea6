// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/pdf-toolkit/pkg/types"
)

// imageExts lists the extensions, lowercased, picked up by ImagesToPDF.
var imageExts = []string{".png", ".jpg", ".jpeg"}

// Assembler encodes images as the pages of one PDF, in slice order.
type Assembler interface {
	Assemble(images []image.Image, outPath string) error
}

// IsImage reports whether name has a PNG or JPEG extension, ignoring case.
func IsImage(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range imageExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ListImages returns the paths of the image files directly inside dir,
// sorted lexicographically by file name.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading image folder %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImage(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// ImagesToPDF loads every image in imagesDir in file name order and writes
// them as one multi-page PDF at outPath. An empty folder is a failure and
// produces no file.
func (t *Toolkit) ImagesToPDF(imagesDir, outPath string) Result {
	const prefix = "Error converting images to PDF"
	res := Result{Source: imagesDir}

	files, err := ListImages(imagesDir)
	if err != nil {
		return t.fail(res, prefix, err)
	}
	if len(files) == 0 {
		return t.fail(res, prefix, fmt.Errorf("%w in %s", ErrNoImages, imagesDir))
	}

	images := make([]image.Image, 0, len(files))
	for _, f := range files {
		img, err := loadImage(f)
		if err != nil {
			return t.fail(res, prefix, err)
		}
		images = append(images, img)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return t.fail(res, prefix, fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err))
	}
	if err := t.Assembler.Assemble(images, outPath); err != nil {
		return t.fail(res, prefix, err)
	}
	t.log().Debug("assembled PDF", zap.String("pdf", outPath), zap.Int("pages", len(images)))

	fmt.Fprintf(t.out(), "Images converted to PDF: %s\n", outPath)
	res.Outputs = []string{outPath}
	res.Status = types.ConversionDone
	return res
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}
	return img, nil
}

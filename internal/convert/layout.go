// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Mode selects the conversion a run performs.
type Mode string

const (
	ModeImages Mode = "images"
	ModeText   Mode = "text"
	ModePDF    Mode = "pdf"
)

// ParseMode trims and lowercases s and returns the matching Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeImages, ModeText, ModePDF:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

const (
	outputDirName = "output"
	imagesDirName = "images"
	textsDirName  = "texts"
	pdfsDirName   = "pdfs"
	outputPDFName = "output.pdf"
)

// Layout is the output folder tree derived from a source folder: an output
// folder next to the source folder, with one subfolder per mode.
type Layout struct {
	Root   string
	Images string
	Texts  string
	PDFs   string
}

// NewLayout returns the layout for srcDir, rooted at <parent>/output.
func NewLayout(srcDir string) Layout {
	parent := filepath.Dir(filepath.Clean(srcDir))
	root := filepath.Join(parent, outputDirName)
	return Layout{
		Root:   root,
		Images: filepath.Join(root, imagesDirName),
		Texts:  filepath.Join(root, textsDirName),
		PDFs:   filepath.Join(root, pdfsDirName),
	}
}

// Dir returns the destination folder for mode.
func (l Layout) Dir(mode Mode) string {
	switch mode {
	case ModeImages:
		return l.Images
	case ModeText:
		return l.Texts
	case ModePDF:
		return l.PDFs
	}
	return l.Root
}

// PDFPath returns the fixed path of the assembled PDF.
func (l Layout) PDFPath() string {
	return filepath.Join(l.PDFs, outputPDFName)
}

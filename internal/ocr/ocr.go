// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ocr recognizes text in rendered page images using tesseract.
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"

	"github.com/pdiddy/pdf-toolkit/pkg/types"
)

// Recognizer extracts text from a single image.
type Recognizer interface {
	Recognize(img image.Image) (string, error)
}

// TesseractRecognizer implements Recognizer with a gosseract client. Each
// call uses its own client, closed before Recognize returns.
type TesseractRecognizer struct {
	languages []string
}

// NewTesseractRecognizer constructs a recognizer for the given tesseract
// languages. With no languages it uses types.DefaultLanguages.
func NewTesseractRecognizer(languages ...string) *TesseractRecognizer {
	if len(languages) == 0 {
		languages = types.DefaultLanguages
	}
	return &TesseractRecognizer{languages: languages}
}

// Languages returns the languages passed to tesseract.
func (t *TesseractRecognizer) Languages() []string {
	return t.languages
}

// Recognize returns the text tesseract finds in img, unmodified.
func (t *TesseractRecognizer) Recognize(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding image for OCR: %w", err)
	}

	c := gosseract.NewClient()
	defer c.Close()

	if err := c.SetLanguage(t.languages...); err != nil {
		return "", fmt.Errorf("set languages: %w", err)
	}
	if err := c.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}

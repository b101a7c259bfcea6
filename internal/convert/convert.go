// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the three conversions of the toolkit:
// PDF pages to PNG images, PDF to OCR text, and a folder of images to a
// single PDF. Every conversion follows catch-log-continue: failures are
// printed to the console writer and returned as a failed Result, never as
// an error that aborts the caller.
package convert

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pdiddy/pdf-toolkit/internal/ocr"
	"github.com/pdiddy/pdf-toolkit/internal/raster"
	"github.com/pdiddy/pdf-toolkit/pkg/types"
)

var (
	// ErrInvalidMode is recorded for PDFs seen while the folder driver runs
	// with a mode other than images or text.
	ErrInvalidMode = errors.New("invalid operation")

	// ErrNoImages is returned when an image folder holds no PNG or JPEG files.
	ErrNoImages = errors.New("no images found")
)

// Toolkit carries the collaborators used by the conversions. Out receives
// the console status lines; Log receives diagnostics.
type Toolkit struct {
	Rasterizer raster.Rasterizer
	Recognizer ocr.Recognizer
	Assembler  Assembler
	Out        io.Writer
	Log        *zap.Logger
}

func (t *Toolkit) out() io.Writer {
	if t.Out == nil {
		return io.Discard
	}
	return t.Out
}

func (t *Toolkit) log() *zap.Logger {
	if t.Log == nil {
		return zap.NewNop()
	}
	return t.Log
}

// Result holds the outcome of converting one source item.
type Result struct {
	Source  string
	Status  types.ConversionStatus
	Outputs []string
	Err     error
}

// OK reports whether the conversion succeeded.
func (r Result) OK() bool {
	return r.Status == types.ConversionDone
}

// fail prints the failure line and marks r failed.
func (t *Toolkit) fail(r Result, prefix string, err error) Result {
	fmt.Fprintf(t.out(), "%s: %v\n", prefix, err)
	t.log().Debug("conversion failed", zap.String("source", r.Source), zap.Error(err))
	r.Status = types.ConversionFailed
	r.Err = err
	return r
}

// BatchResult holds the per-item results of one run.
type BatchResult struct {
	Mode        Mode
	Source      string
	Destination string
	Items       []Result
	Converted   int
	Skipped     int
	Failed      int
}

// NewBatch starts an empty batch for the given run parameters.
func NewBatch(mode Mode, source, destination string) BatchResult {
	return BatchResult{Mode: mode, Source: source, Destination: destination}
}

// Add appends r and updates the counters.
func (b *BatchResult) Add(r Result) {
	b.Items = append(b.Items, r)
	switch r.Status {
	case types.ConversionDone:
		b.Converted++
	case types.ConversionSkipped:
		b.Skipped++
	case types.ConversionFailed:
		b.Failed++
	}
}

// Total returns the number of items processed.
func (b BatchResult) Total() int {
	return b.Converted + b.Skipped + b.Failed
}

// HasFailures reports whether any item failed.
func (b BatchResult) HasFailures() bool {
	return b.Failed > 0
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/pdf-toolkit/internal/convert"
	"github.com/pdiddy/pdf-toolkit/internal/history"
	"github.com/pdiddy/pdf-toolkit/internal/ocr"
	"github.com/pdiddy/pdf-toolkit/internal/raster"
	"github.com/pdiddy/pdf-toolkit/internal/report"
	"github.com/pdiddy/pdf-toolkit/pkg/types"
)

// Constructors for the external collaborators. Tests replace them with fakes.
var (
	newRasterizer = raster.New
	newRecognizer = func(languages []string) ocr.Recognizer {
		return ocr.NewTesseractRecognizer(languages...)
	}
	newAssembler = func() convert.Assembler {
		return convert.NewPDFCPUAssembler()
	}
)

// buildToolkit wires the collaborators needed for mode. The pdf mode never
// renders pages, so no rasterizer is resolved for it.
func buildToolkit(cmd *cobra.Command, cfg types.ToolkitConfig, mode convert.Mode) (*convert.Toolkit, error) {
	tk := &convert.Toolkit{
		Out: cmd.OutOrStdout(),
		Log: logger,
	}

	switch mode {
	case convert.ModePDF:
		tk.Assembler = newAssembler()
	default:
		r, err := newRasterizer(string(cfg.Backend))
		if err != nil {
			return nil, err
		}
		logger.Debug("rasterizer selected", zap.String("backend", r.Name()))
		tk.Rasterizer = r
		tk.Recognizer = newRecognizer(cfg.OCRLanguages())
	}
	return tk, nil
}

// recordRun appends the batch to the history database when one is
// configured. Failures are logged and never affect the run.
func recordRun(ctx context.Context, cfg types.ToolkitConfig, batch convert.BatchResult, startedAt time.Time) {
	if cfg.HistoryDB == "" {
		return
	}
	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		logger.Warn("history unavailable", zap.String("path", cfg.HistoryDB), zap.Error(err))
		return
	}
	defer store.Close()

	id, err := store.Record(ctx, batch, startedAt)
	if err != nil {
		logger.Warn("recording run failed", zap.Error(err))
		return
	}
	logger.Debug("run recorded", zap.Int64("run_id", id))
}

// writeReport writes the YAML run report when path is set.
func writeReport(path string, batch convert.BatchResult) {
	if path == "" {
		return
	}
	if err := report.Write(path, report.FromBatch(batch, time.Now())); err != nil {
		logger.Warn("writing report failed", zap.String("path", path), zap.Error(err))
		return
	}
	logger.Debug("report written", zap.String("path", path))
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/pdf-toolkit/internal/convert"
)

const (
	promptSource = "Enter the folder path containing PDFs: "
	promptMode   = "Enter operation ('images' for converting PDFs to images, 'text' for extracting text, 'pdf' for converting images to a PDF): "
	promptImages = "Enter the folder path containing images for PDF conversion: "
)

// runInteractive asks for the PDF folder and the operation, derives the
// output layout next to the PDF folder and dispatches. An invalid operation
// ends the run before anything is written.
func runInteractive(cmd *cobra.Command, args []string) error {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	src := prompt(in, out, promptSource)
	answer := prompt(in, out, promptMode)

	mode, err := convert.ParseMode(answer)
	if err != nil {
		fmt.Fprintln(out, "Invalid operation selected. Exiting.")
		logger.Debug("invalid operation", zap.String("answer", answer))
		return nil
	}

	cfg := loadConfig()
	tk, err := buildToolkit(cmd, cfg, mode)
	if err != nil {
		return err
	}

	layout := convert.NewLayout(src)
	if err := os.MkdirAll(layout.Root, 0o755); err != nil {
		fmt.Fprintf(out, "Error creating output folder %s: %v\n", layout.Root, err)
		return nil
	}

	started := time.Now()
	var batch convert.BatchResult
	switch mode {
	case convert.ModeImages, convert.ModeText:
		batch = tk.ProcessFolder(src, layout.Dir(mode), mode)
	case convert.ModePDF:
		imagesDir := prompt(in, out, promptImages)
		batch = convert.NewBatch(mode, imagesDir, layout.PDFPath())
		batch.Add(tk.ImagesToPDF(imagesDir, layout.PDFPath()))
	}

	recordRun(cmd.Context(), cfg, batch, started)
	return nil
}

// prompt prints label and returns the next input line, trimmed. End of
// input yields whatever was read so far.
func prompt(in *bufio.Reader, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

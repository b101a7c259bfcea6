// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-toolkit/internal/convert"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf <image-folder>",
	Short: "Combine the images in a folder into one PDF",
	Long: `Pdf loads every .png, .jpg and .jpeg file directly inside image-folder,
sorted by file name, and writes them as the pages of a single PDF.

By default the PDF is written to <parent>/output/pdfs/output.pdf, where
parent is the folder containing --source (or image-folder when --source is
not given).`,
	Args: cobra.ExactArgs(1),
	RunE: runPDF,
}

func init() {
	pdfCmd.Flags().String("source", "", "folder whose parent holds the output tree (default: image-folder)")
	pdfCmd.Flags().String("out", "", "output PDF path (overrides --source)")
	pdfCmd.Flags().String("report", "", "write a YAML run report to this file")

	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, args []string) error {
	imagesDir := args[0]
	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		layoutSrc, _ := cmd.Flags().GetString("source")
		if layoutSrc == "" {
			layoutSrc = imagesDir
		}
		outPath = convert.NewLayout(layoutSrc).PDFPath()
	}
	reportPath, _ := cmd.Flags().GetString("report")

	cfg := loadConfig()
	tk, err := buildToolkit(cmd, cfg, convert.ModePDF)
	if err != nil {
		return err
	}

	started := time.Now()
	batch := convert.NewBatch(convert.ModePDF, imagesDir, outPath)
	batch.Add(tk.ImagesToPDF(imagesDir, outPath))

	writeReport(reportPath, batch)
	recordRun(cmd.Context(), cfg, batch, started)
	return nil
}

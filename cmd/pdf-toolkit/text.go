// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-toolkit/internal/convert"
)

var textCmd = &cobra.Command{
	Use:   "text <pdf-folder>",
	Short: "Extract text from every PDF in a folder with OCR",
	Long: `Text renders each PDF found directly inside pdf-folder, runs tesseract
on every page and writes the concatenated text to <name>.txt in the
destination folder, replacing any existing file.`,
	Args: cobra.ExactArgs(1),
	RunE: runFolder(convert.ModeText),
}

func init() {
	addFolderFlags(textCmd)
	rootCmd.AddCommand(textCmd)
}

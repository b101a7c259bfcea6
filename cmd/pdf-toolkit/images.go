// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-toolkit/internal/convert"
)

var imagesCmd = &cobra.Command{
	Use:   "images <pdf-folder>",
	Short: "Render every page of every PDF in a folder to PNG",
	Long: `Images renders each PDF found directly inside pdf-folder at 300 DPI and
writes page_<n>.png files (1-based) into the destination folder. Files
without a .pdf extension and subfolders are ignored. A PDF that cannot be
rendered is reported and the remaining PDFs are still processed.`,
	Args: cobra.ExactArgs(1),
	RunE: runFolder(convert.ModeImages),
}

func init() {
	addFolderFlags(imagesCmd)
	rootCmd.AddCommand(imagesCmd)
}

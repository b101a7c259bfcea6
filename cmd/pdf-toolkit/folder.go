// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-toolkit/internal/convert"
)

// addFolderFlags registers the flags shared by the images and text commands.
func addFolderFlags(cmd *cobra.Command) {
	cmd.Flags().String("out", "", "destination folder (default: <parent>/output/<images|texts>)")
	cmd.Flags().String("report", "", "write a YAML run report to this file")
}

// runFolder returns the RunE for a folder command converting in mode.
func runFolder(mode convert.Mode) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		src := args[0]
		outDir, _ := cmd.Flags().GetString("out")
		if outDir == "" {
			outDir = convert.NewLayout(src).Dir(mode)
		}
		reportPath, _ := cmd.Flags().GetString("report")

		cfg := loadConfig()
		tk, err := buildToolkit(cmd, cfg, mode)
		if err != nil {
			return err
		}

		started := time.Now()
		batch := tk.ProcessFolder(src, outDir, mode)

		writeReport(reportPath, batch)
		recordRun(cmd.Context(), cfg, batch, started)
		return nil
	}
}

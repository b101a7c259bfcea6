// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-toolkit/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded conversion runs",
	Long: `History lists the runs recorded in the history database, newest first.
Runs are only recorded when --history-db or PDF_TOOLKIT_HISTORY_DB is set.

Use --run with a run ID to list the files processed in that run.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().Int64("run", 0, "show the items of this run")
	historyCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cfg.HistoryDB == "" {
		return fmt.Errorf("history is disabled: set --history-db or PDF_TOOLKIT_HISTORY_DB")
	}

	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	jsonOutput, _ := cmd.Flags().GetBool("json")
	runID, _ := cmd.Flags().GetInt64("run")

	if runID > 0 {
		items, err := store.Items(cmd.Context(), runID)
		if err != nil {
			return err
		}
		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		}
		if len(items) == 0 {
			fmt.Fprintf(out, "No items recorded for run %d.\n", runID)
			return nil
		}
		for _, it := range items {
			fmt.Fprintf(out, "%-9s  %s", it.Status, it.Source)
			if it.Error != "" {
				fmt.Fprintf(out, "  (%s)", it.Error)
			}
			fmt.Fprintln(out)
			for _, o := range it.Outputs {
				fmt.Fprintf(out, "           -> %s\n", o)
			}
		}
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(out, "%-5s  %-20s  %-6s  %-9s  %-7s  %-6s  %s\n",
		"ID", "Started", "Mode", "Converted", "Skipped", "Failed", "Source")
	fmt.Fprintln(out, strings.Repeat("-", 90))
	for _, r := range runs {
		fmt.Fprintf(out, "%-5d  %-20s  %-6s  %-9d  %-7d  %-6d  %s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Mode,
			r.Converted, r.Skipped, r.Failed, r.Source)
	}
	return nil
}

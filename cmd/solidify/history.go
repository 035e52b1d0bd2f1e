package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/solidify/internal/history"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent consolidation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.History.Disabled {
				return fmt.Errorf("run history is disabled (HISTORY_DISABLED)")
			}
			store, err := history.Open(a.cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded yet")
				return nil
			}
			w := cmd.OutOrStdout()
			for _, run := range runs {
				fmt.Fprintf(w, "%s  %s\n", run.StartedAt.Format("2006-01-02 15:04:05"), run.ID)
				fmt.Fprintf(w, "  inputs:  %s\n", strings.Join(run.Inputs, ", "))
				fmt.Fprintf(w, "  output:  %s\n", run.Output)
				if len(run.KeyColumns) > 0 {
					fmt.Fprintf(w, "  columns: %s\n", joinColumns(run.KeyColumns))
				}
				fmt.Fprintf(w, "  rows: %d  warnings: %d\n", run.RowsWritten, run.Warnings)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of runs to list")
	return cmd
}

func joinColumns(cols []int) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return strings.Join(parts, ", ")
}

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"strmsync/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent sync runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if limit <= 0 {
				return fmt.Errorf("limit must be positive, got %d", limit)
			}

			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			records, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No runs recorded yet")
				return nil
			}

			headers := []string{"Started", "Duration", "Outcome", "Movies", "Series", "Live TV", "Added", "Updated", "Orphans", "Note"}
			aligns := []columnAlignment{
				alignLeft, alignRight, alignLeft,
				alignRight, alignRight, alignRight,
				alignRight, alignRight, alignRight,
				alignLeft,
			}
			rows := make([][]string, 0, len(records))
			for _, record := range records {
				rows = append(rows, historyRow(record))
			}
			fmt.Fprintln(out, renderTable(out, headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	return cmd
}

func historyRow(record history.Record) []string {
	note := record.Error
	if note == "" && record.GuardTriggered {
		note = "empty playlist guard"
	}
	return []string{
		record.StartedAt.Local().Format(time.DateTime),
		record.Duration.Round(10 * time.Millisecond).String(),
		record.Outcome,
		strconv.Itoa(record.Movies),
		strconv.Itoa(record.Series),
		strconv.Itoa(record.LiveTV),
		strconv.Itoa(record.Added),
		strconv.Itoa(record.Updated),
		strconv.Itoa(record.OrphansRemoved),
		note,
	}
}

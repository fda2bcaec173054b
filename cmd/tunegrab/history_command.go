package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tunegrab/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent download outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			counts, err := store.Summary(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No downloads recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				status := "ok"
				detail := entry.OutputPath
				if !entry.Success {
					status = "failed"
					detail = entry.Message
				}
				rows = append(rows, []string{
					entry.CompletedAt.Local().Format(time.DateTime),
					entry.URL,
					status,
					detail,
				})
			}
			fmt.Fprintln(out, renderTable(out, []string{"Completed", "URL", "Status", "Detail"}, rows))
			fmt.Fprintf(out, "%d recorded: %d succeeded, %d failed\n", counts.Total, counts.Succeeded, counts.Failed)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tunegrab/internal/preflight"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Show the status of required external tools and directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, 8)
			missing := 0

			for _, status := range preflight.CheckSystemDeps(cfg) {
				state := "ok"
				detail := status.Command
				if !status.Available {
					state = "missing"
					detail = status.Detail
					if !status.Optional {
						missing++
					}
				}
				rows = append(rows, []string{status.Name, state, detail})
			}
			for _, check := range preflight.RunAll(cfg) {
				state := "ok"
				if !check.Passed {
					state = "failed"
					missing++
				}
				rows = append(rows, []string{check.Name, state, check.Detail})
			}

			fmt.Fprintln(out, renderTable(out, []string{"Check", "Status", "Detail"}, rows))
			if missing > 0 {
				return fmt.Errorf("%d required check(s) failing", missing)
			}
			return nil
		},
	}
}

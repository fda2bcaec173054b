package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var fileFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "tunegrab [url]",
		Short: "Convert online videos to local MP3 files",
		Long: "tunegrab drives yt-dlp to download videos and extract MP3 audio.\n" +
			"With no arguments it prompts for a single URL; pass a URL directly\n" +
			"or use --file to process a list of URLs as a batch.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fileFlag != "" {
				return runBatch(cmd, ctx, fileFlag)
			}
			url := ""
			if len(args) == 1 {
				url = args[0]
			}
			return runSingle(cmd, ctx, url)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Process URLs from a line-oriented list file")

	rootCmd.AddCommand(newDepsCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "resumeflow",
	Short: "Resume ingestion service",
	Long: `resumeflow accepts resume uploads, extracts their text, structures it with a
language model and stores the result. It also scrapes LinkedIn profiles and
runs the LinkedIn OAuth flow.

Without a subcommand it starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

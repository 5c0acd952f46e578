package main

import (
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pollination-dsl",
		Short: "Translate DAG input declarations into queenbee schemas",
		Long: `pollination-dsl loads DAG input declarations written in the pipeline
DSL, validates them, and translates them into the input schema records the
queenbee workflow library consumes.`,
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newTranslateCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

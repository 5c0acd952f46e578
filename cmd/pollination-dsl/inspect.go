package main

import (
	"github.com/spf13/cobra"

	"github.com/mikkelkp/pollination-dsl/dag"
	"github.com/mikkelkp/pollination-dsl/internal/tui"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Browse a declaration's inputs in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := dag.LoadDeclarationFile(args[0])
			if err != nil {
				return err
			}
			return tui.Run(file.Declaration)
		},
	}
}

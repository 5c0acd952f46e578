package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikkelkp/pollination-dsl/internal/config"
	"github.com/mikkelkp/pollination-dsl/internal/logging"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the .pollination project directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(verbose)
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			if err := config.InitProjectDir(cwd); err != nil {
				return fmt.Errorf("initialize %s: %w", config.ProjectDirName, err)
			}
			logger.Infof("initialized %s in %s", config.ProjectDirName, cwd)
			return nil
		},
	}
}

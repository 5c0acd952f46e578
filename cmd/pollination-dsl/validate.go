package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikkelkp/pollination-dsl/internal/logging"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate declarations without writing schema files",
		Long: `Validate parses the declarations at the given path, runs the structural
checks, and dry-runs the queenbee translation for every input. Nothing is
written to disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(verbose)
			decls, err := loadDeclarations(args[0])
			if err != nil {
				return err
			}
			if len(decls) == 0 {
				logger.Warnf("no declarations found at %s", args[0])
				return nil
			}

			failures := 0
			for _, file := range decls {
				decl := file.Declaration.Normalized()
				declFailures := 0
				for _, ref := range decl.Inputs {
					if _, err := ref.Input.ToQueenbee(ref.Name); err != nil {
						logger.Errorf("%s: input %s: %v", file.Path, ref.Name, err)
						declFailures++
					}
				}
				if declFailures == 0 {
					logger.Infof("%s: %s ok (%d inputs)", file.Path, decl.Name, len(decl.Inputs))
				}
				failures += declFailures
			}
			if failures > 0 {
				return fmt.Errorf("%d input(s) failed validation", failures)
			}
			return nil
		},
	}
}

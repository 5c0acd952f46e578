package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mikkelkp/pollination-dsl/dag"
	"github.com/mikkelkp/pollination-dsl/internal/config"
	"github.com/mikkelkp/pollination-dsl/internal/logging"
)

func newTranslateCommand() *cobra.Command {
	var outputDir string
	var format string
	var platforms []string

	cmd := &cobra.Command{
		Use:   "translate <path>",
		Short: "Translate declarations into queenbee input schemas",
		Long: `Translate reads one declaration file, or every *.yaml declaration in a
directory, and writes the queenbee input schema records next to your project
under the configured output directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(verbose)
			cfg, err := projectConfig(logger)
			if err != nil {
				return err
			}
			if outputDir == "" {
				outputDir = cfg.OutputDir()
			}
			if format == "" {
				format = cfg.Format()
			}
			if format != "yaml" && format != "json" {
				return fmt.Errorf("format must be 'yaml' or 'json', got %q", format)
			}
			if len(platforms) == 0 {
				platforms = cfg.Platforms()
			}

			decls, err := loadDeclarations(args[0])
			if err != nil {
				return err
			}
			if len(decls) == 0 {
				logger.Warnf("no declarations found at %s", args[0])
				return nil
			}
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("ensure output dir: %w", err)
			}
			for _, file := range decls {
				if err := translateDeclaration(logger, file, outputDir, format, platforms); err != nil {
					return err
				}
			}
			logger.Infof("translated %d declaration(s) into %s", len(decls), outputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (defaults to the project config)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output encoding: yaml or json (defaults to the project config)")
	cmd.Flags().StringSliceVarP(&platforms, "platform", "p", nil, "keep only aliases for these platforms (defaults to the project config)")
	return cmd
}

func translateDeclaration(logger *logrus.Logger, file dag.DeclarationFile, outputDir, format string, platforms []string) error {
	records, err := file.Declaration.FilterPlatforms(platforms).Translate()
	if err != nil {
		return fmt.Errorf("%s: %w", file.Path, err)
	}

	var data []byte
	switch format {
	case "json":
		data, err = json.MarshalIndent(records, "", "  ")
	default:
		data, err = yaml.Marshal(records)
	}
	if err != nil {
		return fmt.Errorf("%s: encode records: %w", file.Path, err)
	}

	target := filepath.Join(outputDir, fmt.Sprintf("%s.inputs.%s", file.Declaration.Name, format))
	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("%s: write %s: %w", file.Path, target, err)
	}
	logger.Debugf("%s -> %s (%d inputs)", file.Path, target, len(records))
	return nil
}

func loadDeclarations(path string) ([]dag.DeclarationFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return dag.LoadDeclarationDir(path)
	}
	file, err := dag.LoadDeclarationFile(path)
	if err != nil {
		return nil, err
	}
	return []dag.DeclarationFile{file}, nil
}

func projectConfig(logger *logrus.Logger) (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	cfg, err := config.NewConfig(cwd)
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(cfg.ProjectConfigDir); statErr == nil {
		if closer, logErr := logging.AttachFile(logger, cfg.LogsDir()); logErr == nil {
			cobra.OnFinalize(func() { _ = closer() })
		} else {
			logger.Debugf("file logging disabled: %v", logErr)
		}
	}
	return cfg, nil
}

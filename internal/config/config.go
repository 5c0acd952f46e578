// Package config handles the .pollination directory a project keeps next to
// its DAG declarations. The directory stores the project configuration and
// receives translated schema files by default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ProjectDirName is the directory created in each project root.
	ProjectDirName = ".pollination"

	defaultFormat = "yaml"
)

const defaultProjectConfigYAML = `# pollination-dsl project configuration
version: 1

translate:
  # Directory that receives translated queenbee schema files. Relative paths
  # resolve against the project root.
  output_dir: .pollination/translated
  # Output encoding: yaml or json.
  format: yaml
  # Keep only alias records targeting these platforms. Leave empty to keep
  # every alias.
  # platforms: [grasshopper, rhino]
`

// TranslateConfig controls how translated schema files are written.
// Platforms, when set, keeps only the alias records targeting one of the
// listed execution platforms; an empty list keeps every alias.
type TranslateConfig struct {
	OutputDir string   `yaml:"output_dir,omitempty"`
	Format    string   `yaml:"format,omitempty"`
	Platforms []string `yaml:"platforms,omitempty"`
}

// ProjectConfig models .pollination/config.yaml.
type ProjectConfig struct {
	Version   int             `yaml:"version"`
	Translate TranslateConfig `yaml:"translate,omitempty"`
}

// Config holds the runtime configuration for the CLI.
type Config struct {
	// ProjectDir is the directory the user ran the CLI from.
	ProjectDir string

	// ProjectConfigDir is ProjectDir/.pollination.
	ProjectConfigDir string

	Project ProjectConfig
}

// InitProjectDir creates the .pollination directory structure in the given
// project directory and seeds a default config file when none exists.
func InitProjectDir(projectDir string) error {
	configDir := filepath.Join(projectDir, ProjectDirName)
	dirs := []string{
		filepath.Join(configDir, "translated"),
		filepath.Join(configDir, "logs"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return ensureProjectConfig(filepath.Join(configDir, "config.yaml"))
}

// NewConfig creates a Config populated with project settings. A missing
// config file falls back to defaults.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:       projectDir,
		ProjectConfigDir: filepath.Join(projectDir, ProjectDirName),
		Project:          defaultProjectConfig(),
	}
	cfg.Project.normalize(projectDir)
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.ProjectConfigDir, "config.yaml")
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.ProjectConfigDir, "logs")
}

// OutputDir returns the directory translated schema files are written to.
func (c *Config) OutputDir() string {
	return c.Project.Translate.OutputDir
}

// Format returns the configured output encoding, yaml or json.
func (c *Config) Format() string {
	return c.Project.Translate.Format
}

// Platforms returns the configured alias platform filter, empty when every
// alias should be kept.
func (c *Config) Platforms() []string {
	return c.Project.Translate.Platforms
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.ProjectDir)
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	cfg := ProjectConfig{Version: 1}
	cfg.applyDefaults()
	cfg.normalize("")
	return cfg
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
}

func (pc *ProjectConfig) normalize(base string) {
	pc.Translate.Format = strings.ToLower(strings.TrimSpace(pc.Translate.Format))
	if pc.Translate.Format == "" {
		pc.Translate.Format = defaultFormat
	}
	dir := strings.TrimSpace(pc.Translate.OutputDir)
	if dir == "" {
		dir = filepath.Join(ProjectDirName, "translated")
	}
	pc.Translate.OutputDir = resolvePath(base, dir)
	if len(pc.Translate.Platforms) > 0 {
		platforms := make([]string, 0, len(pc.Translate.Platforms))
		for _, platform := range pc.Translate.Platforms {
			trimmed := strings.TrimSpace(platform)
			if trimmed == "" {
				continue
			}
			platforms = append(platforms, trimmed)
		}
		if len(platforms) == 0 {
			platforms = nil
		}
		pc.Translate.Platforms = platforms
	}
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	switch pc.Translate.Format {
	case "yaml", "json":
	default:
		return fmt.Errorf("translate.format must be 'yaml' or 'json'")
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) || base == "" {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0644)
}

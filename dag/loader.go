package dag

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DeclarationFile pairs a parsed declaration with its on-disk source.
type DeclarationFile struct {
	Declaration Declaration
	Path        string
}

// ParseDeclarationYAML decodes and validates a single declaration payload.
func ParseDeclarationYAML(data []byte) (Declaration, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Declaration{}, fmt.Errorf("dag: declaration payload is empty")
	}
	var decl Declaration
	if err := yaml.Unmarshal(data, &decl); err != nil {
		return Declaration{}, fmt.Errorf("dag: decode declaration: %w", err)
	}
	normalized := decl.Normalized()
	if err := normalized.Validate(); err != nil {
		return Declaration{}, err
	}
	return normalized, nil
}

// LoadDeclarationFile reads a YAML file from disk and returns the parsed
// declaration.
func LoadDeclarationFile(path string) (DeclarationFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return DeclarationFile{}, fmt.Errorf("dag: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return DeclarationFile{}, fmt.Errorf("dag: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DeclarationFile{}, fmt.Errorf("dag: read %s: %w", path, err)
	}
	decl, err := ParseDeclarationYAML(data)
	if err != nil {
		return DeclarationFile{}, fmt.Errorf("dag: %s: %w", path, err)
	}
	return DeclarationFile{Declaration: decl, Path: filepath.Clean(path)}, nil
}

// LoadDeclarationDir scans a directory for *.yaml declarations and returns
// them sorted by path. Missing directories mean "no declarations".
func LoadDeclarationDir(dir string) ([]DeclarationFile, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("dag: read %s: %w", trimmed, err)
	}
	var decls []DeclarationFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !isYAMLFile(name) {
			continue
		}
		path := filepath.Join(trimmed, name)
		decl, err := LoadDeclarationFile(path)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	if len(decls) == 0 {
		return nil, nil
	}
	sort.Slice(decls, func(i, j int) bool { return decls[i].Path < decls[j].Path })
	return decls, nil
}

func isYAMLFile(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}

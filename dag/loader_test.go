package dag

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDeclarationFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "daylight.yaml")
	if err := os.WriteFile(path, []byte(sampleDeclaration), 0644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	file, err := LoadDeclarationFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if file.Path != path {
		t.Fatalf("expected path %s, got %s", path, file.Path)
	}
	if file.Declaration.Name != "daylight-factor" {
		t.Fatalf("unexpected declaration: %+v", file.Declaration)
	}
}

func TestLoadDeclarationFileRejectsDirectory(t *testing.T) {
	if _, err := LoadDeclarationFile(t.TempDir()); err == nil {
		t.Fatalf("expected directory path to fail")
	}
}

func TestLoadDeclarationDir(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "b.yaml"), []byte(sampleDeclaration), 0644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	second := `name: annual-energy
inputs:
  - name: model
    type: file
`
	if err := os.WriteFile(filepath.Join(root, "a.yml"), []byte(second), 0644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("skip me"), 0644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	decls, err := LoadDeclarationDir(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(decls))
	}
	if decls[0].Declaration.Name != "annual-energy" {
		t.Fatalf("declarations should sort by path: %+v", decls[0].Declaration)
	}
}

func TestLoadDeclarationDirMissing(t *testing.T) {
	decls, err := LoadDeclarationDir(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if decls != nil {
		t.Fatalf("missing dir should yield no declarations, got %v", decls)
	}
}

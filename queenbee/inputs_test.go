package queenbee

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRejectsEmptyName(t *testing.T) {
	_, err := ParseDAGStringInput(Record{})
	if err == nil {
		t.Fatalf("expected empty name to fail")
	}
	var validation *ValidationError
	if !errors.As(err, &validation) || validation.Field != "name" {
		t.Fatalf("expected name validation error, got %v", err)
	}
}

func TestParseRejectsUnderscoredName(t *testing.T) {
	_, err := ParseDAGStringInput(Record{Name: "my_input"})
	if err == nil {
		t.Fatalf("expected underscored name to fail")
	}
	if !strings.Contains(err.Error(), "letters, digits and hyphens") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseDefaultTyping(t *testing.T) {
	cases := []struct {
		name  string
		parse func(Record) (*DAGInput, error)
		good  any
		bad   any
	}{
		{"string", ParseDAGStringInput, "value", 12},
		{"integer", ParseDAGIntegerInput, 200, "two-hundred"},
		{"number", ParseDAGNumberInput, 0.25, "a-quarter"},
		{"boolean", ParseDAGBooleanInput, true, "yes"},
		{"object", ParseDAGJSONObjectInput, map[string]any{"a": 1}, "not-an-object"},
		{"array", ParseDAGArrayInput, []any{"a", "b"}, "not-an-array"},
		{"folder", ParseDAGFolderInput, "model/grid", 12},
		{"file", ParseDAGFileInput, map[string]any{"type": "ProjectFolder", "path": "model.hbjson"}, 12},
		{"path", ParseDAGPathInput, "model.hbjson", true},
	}
	for _, tc := range cases {
		if _, err := tc.parse(Record{Name: "value", Default: tc.good}); err != nil {
			t.Fatalf("%s: valid default rejected: %v", tc.name, err)
		}
		_, err := tc.parse(Record{Name: "value", Default: tc.bad})
		if err == nil {
			t.Fatalf("%s: invalid default accepted", tc.name)
		}
		var validation *ValidationError
		if !errors.As(err, &validation) || validation.Field != "default" {
			t.Fatalf("%s: expected default validation error, got %v", tc.name, err)
		}
	}
}

func TestParseGenericAcceptsAnyDefault(t *testing.T) {
	for _, value := range []any{"text", 12, 0.5, true, []any{1}, map[string]any{"a": 1}} {
		if _, err := ParseDAGGenericInput(Record{Name: "value", Default: value}); err != nil {
			t.Fatalf("generic input rejected default %v: %v", value, err)
		}
	}
}

func TestParseIntegerAcceptsWholeFloat(t *testing.T) {
	if _, err := ParseDAGIntegerInput(Record{Name: "count", Default: float64(200)}); err != nil {
		t.Fatalf("whole float should pass integer validation: %v", err)
	}
	if _, err := ParseDAGIntegerInput(Record{Name: "count", Default: 0.5}); err == nil {
		t.Fatalf("fractional default should fail integer validation")
	}
}

func TestParseArrayItemsType(t *testing.T) {
	input, err := ParseDAGArrayInput(Record{Name: "grids"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if input.ItemsType != ItemString {
		t.Fatalf("expected String items by default, got %s", input.ItemsType)
	}
	if _, err := ParseDAGArrayInput(Record{Name: "grids", ItemsType: ItemType("Blob")}); err == nil {
		t.Fatalf("unknown item type should fail")
	}
}

func TestParseKeepsRecordFields(t *testing.T) {
	rec := Record{
		Name:        "sensor-count",
		Required:    false,
		Default:     200,
		Description: "Number of sensors.",
		Annotations: map[string]any{"__default_local__": 50},
		Spec:        map[string]any{"type": "integer", "minimum": 1},
		Alias:       []map[string]any{{"name": "sensors", "platform": []string{"grasshopper"}}},
	}
	input, err := ParseDAGIntegerInput(rec)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if input.Type != DAGIntegerInput {
		t.Fatalf("expected DAGIntegerInput identity, got %s", input.Type)
	}
	if input.Description != rec.Description || input.Default != rec.Default {
		t.Fatalf("record fields lost: %+v", input)
	}
	if input.Spec["minimum"] != 1 || input.Annotations["__default_local__"] != 50 {
		t.Fatalf("spec or annotations lost: %+v", input)
	}
	if len(input.Alias) != 1 || input.Alias[0]["name"] != "sensors" {
		t.Fatalf("alias mappings lost: %+v", input.Alias)
	}
}

func TestExtensionsOnlyReachFileAndPath(t *testing.T) {
	rec := Record{Name: "model", Extensions: []string{"hbjson"}}
	file, err := ParseDAGFileInput(rec)
	if err != nil {
		t.Fatalf("parse file: %v", err)
	}
	if len(file.Extensions) != 1 {
		t.Fatalf("file input should keep extensions: %+v", file)
	}
	folder, err := ParseDAGFolderInput(rec)
	if err != nil {
		t.Fatalf("parse folder: %v", err)
	}
	if folder.Extensions != nil {
		t.Fatalf("folder input must drop extensions: %+v", folder)
	}
}

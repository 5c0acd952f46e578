package queenbee

import (
	"reflect"
	"regexp"
)

// InputType identifies the schema variant of a DAG input.
type InputType string

const (
	DAGGenericInput    InputType = "DAGGenericInput"
	DAGStringInput     InputType = "DAGStringInput"
	DAGIntegerInput    InputType = "DAGIntegerInput"
	DAGNumberInput     InputType = "DAGNumberInput"
	DAGBooleanInput    InputType = "DAGBooleanInput"
	DAGFolderInput     InputType = "DAGFolderInput"
	DAGFileInput       InputType = "DAGFileInput"
	DAGPathInput       InputType = "DAGPathInput"
	DAGJSONObjectInput InputType = "DAGJSONObjectInput"
	DAGArrayInput      InputType = "DAGArrayInput"
)

// Record is the assembled field set a DSL input descriptor hands to one of
// the parse functions. It carries no schema identity of its own; the parse
// function supplies that.
type Record struct {
	Name        string
	Required    bool
	Default     any
	Description string
	Annotations map[string]any
	Spec        map[string]any
	Alias       []map[string]any
	Extensions  []string
	ItemsType   ItemType
}

// DAGInput is a validated DAG input schema object. ItemsType is populated
// only for array inputs and Extensions only for file and path inputs.
type DAGInput struct {
	Type        InputType        `json:"type" yaml:"type"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Default     any              `json:"default,omitempty" yaml:"default,omitempty"`
	Required    bool             `json:"required" yaml:"required"`
	Spec        map[string]any   `json:"spec,omitempty" yaml:"spec,omitempty"`
	Annotations map[string]any   `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Alias       []map[string]any `json:"alias,omitempty" yaml:"alias,omitempty"`
	Extensions  []string         `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	ItemsType   ItemType         `json:"items_type,omitempty" yaml:"items_type,omitempty"`
}

// ParseDAGGenericInput validates a record as a generic DAG input.
func ParseDAGGenericInput(rec Record) (*DAGInput, error) {
	return parseInput(DAGGenericInput, rec)
}

// ParseDAGStringInput validates a record as a string DAG input.
func ParseDAGStringInput(rec Record) (*DAGInput, error) {
	return parseInput(DAGStringInput, rec)
}

// ParseDAGIntegerInput validates a record as an integer DAG input.
func ParseDAGIntegerInput(rec Record) (*DAGInput, error) {
	return parseInput(DAGIntegerInput, rec)
}

// ParseDAGNumberInput validates a record as a number DAG input.
func ParseDAGNumberInput(rec Record) (*DAGInput, error) {
	return parseInput(DAGNumberInput, rec)
}

// ParseDAGBooleanInput validates a record as a boolean DAG input.
func ParseDAGBooleanInput(rec Record) (*DAGInput, error) {
	return parseInput(DAGBooleanInput, rec)
}

// ParseDAGFolderInput validates a record as a folder DAG input.
func ParseDAGFolderInput(rec Record) (*DAGInput, error) {
	return parseInput(DAGFolderInput, rec)
}

// ParseDAGFileInput validates a record as a file DAG input.
func ParseDAGFileInput(rec Record) (*DAGInput, error) {
	return parseInput(DAGFileInput, rec)
}

// ParseDAGPathInput validates a record as a path DAG input.
func ParseDAGPathInput(rec Record) (*DAGInput, error) {
	return parseInput(DAGPathInput, rec)
}

// ParseDAGJSONObjectInput validates a record as a JSON-object DAG input.
func ParseDAGJSONObjectInput(rec Record) (*DAGInput, error) {
	return parseInput(DAGJSONObjectInput, rec)
}

// ParseDAGArrayInput validates a record as an array DAG input.
func ParseDAGArrayInput(rec Record) (*DAGInput, error) {
	return parseInput(DAGArrayInput, rec)
}

var inputNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*$`)

func parseInput(t InputType, rec Record) (*DAGInput, error) {
	if rec.Name == "" {
		return nil, validationErr(t, rec.Name, "name", "must not be empty")
	}
	if !inputNamePattern.MatchString(rec.Name) {
		return nil, validationErr(t, rec.Name, "name",
			"must contain only letters, digits and hyphens")
	}
	if rec.Default != nil {
		if err := checkDefault(t, rec.Name, rec.Default); err != nil {
			return nil, err
		}
	}
	input := &DAGInput{
		Type:        t,
		Name:        rec.Name,
		Description: rec.Description,
		Default:     rec.Default,
		Required:    rec.Required,
		Spec:        rec.Spec,
		Annotations: rec.Annotations,
		Alias:       rec.Alias,
	}
	switch t {
	case DAGFileInput, DAGPathInput:
		input.Extensions = rec.Extensions
	case DAGArrayInput:
		items := rec.ItemsType
		if items == "" {
			items = ItemString
		}
		if !items.Valid() {
			return nil, validationErr(t, rec.Name, "items_type",
				"unknown item type "+string(items))
		}
		input.ItemsType = items
	}
	return input, nil
}

// checkDefault enforces the per-type default value constraint. Artifact
// inputs accept either a path string or a source object (a mapping).
func checkDefault(t InputType, name string, value any) error {
	switch t {
	case DAGGenericInput:
		return nil
	case DAGStringInput:
		if _, ok := value.(string); !ok {
			return validationErr(t, name, "default", "must be a string")
		}
	case DAGIntegerInput:
		if !isInteger(value) {
			return validationErr(t, name, "default", "must be an integer")
		}
	case DAGNumberInput:
		if !isNumber(value) {
			return validationErr(t, name, "default", "must be a number")
		}
	case DAGBooleanInput:
		if _, ok := value.(bool); !ok {
			return validationErr(t, name, "default", "must be a boolean")
		}
	case DAGJSONObjectInput:
		if reflect.ValueOf(value).Kind() != reflect.Map {
			return validationErr(t, name, "default", "must be an object")
		}
	case DAGArrayInput:
		if reflect.ValueOf(value).Kind() != reflect.Slice {
			return validationErr(t, name, "default", "must be an array")
		}
	case DAGFolderInput, DAGFileInput, DAGPathInput:
		switch reflect.ValueOf(value).Kind() {
		case reflect.String, reflect.Map:
			return nil
		default:
			return validationErr(t, name, "default",
				"must be a path string or a source object")
		}
	}
	return nil
}

func isInteger(value any) bool {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		// JSON decoding yields float64 for every number; accept whole values.
		f := v.Float()
		return f == float64(int64(f))
	}
	return false
}

func isNumber(value any) bool {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

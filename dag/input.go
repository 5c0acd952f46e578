// Package dag declares the inputs of a workflow-graph node in the
// pipeline-description DSL and translates them into the schema records the
// workflow-definition library consumes. Descriptors are value objects: built
// once by DSL authors, read-only afterwards.
package dag

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mikkelkp/pollination-dsl/alias"
	"github.com/mikkelkp/pollination-dsl/queenbee"
)

// Kind identifies one of the ten input variants.
type Kind string

const (
	KindGeneric Kind = "Generic"
	KindString  Kind = "String"
	KindInteger Kind = "Integer"
	KindNumber  Kind = "Number"
	KindBoolean Kind = "Boolean"
	KindDict    Kind = "Dict"
	KindList    Kind = "List"
	KindFolder  Kind = "Folder"
	KindFile    Kind = "File"
	KindPath    Kind = "Path"
)

// ReferenceType tags the external reference kind an input maps to.
type ReferenceType string

const (
	InputReference       ReferenceType = "InputReference"
	InputFolderReference ReferenceType = "InputFolderReference"
	InputFileReference   ReferenceType = "InputFileReference"
	InputPathReference   ReferenceType = "InputPathReference"
)

// kindSpec drives all per-variant behavior: schema identity, artifact and
// reference classification, and which extra fields the variant declares.
type kindSpec struct {
	parse         func(queenbee.Record) (*queenbee.DAGInput, error)
	referenceType ReferenceType
	isArtifact    bool
	hasExtensions bool
	hasItemsType  bool
}

var kindSpecs = map[Kind]kindSpec{
	KindGeneric: {parse: queenbee.ParseDAGGenericInput, referenceType: InputReference},
	KindString:  {parse: queenbee.ParseDAGStringInput, referenceType: InputReference},
	KindInteger: {parse: queenbee.ParseDAGIntegerInput, referenceType: InputReference},
	KindNumber:  {parse: queenbee.ParseDAGNumberInput, referenceType: InputReference},
	KindBoolean: {parse: queenbee.ParseDAGBooleanInput, referenceType: InputReference},
	KindDict:    {parse: queenbee.ParseDAGJSONObjectInput, referenceType: InputReference},
	KindList:    {parse: queenbee.ParseDAGArrayInput, referenceType: InputReference, hasItemsType: true},
	KindFolder:  {parse: queenbee.ParseDAGFolderInput, referenceType: InputFolderReference, isArtifact: true},
	KindFile:    {parse: queenbee.ParseDAGFileInput, referenceType: InputFileReference, isArtifact: true, hasExtensions: true},
	KindPath:    {parse: queenbee.ParseDAGPathInput, referenceType: InputPathReference, isArtifact: true, hasExtensions: true},
}

// Inputs maps the DSL short names to their input kinds. It exists purely for
// ergonomic variant selection and carries no behavior.
var Inputs = map[string]Kind{
	"any":    KindGeneric,
	"str":    KindString,
	"int":    KindInteger,
	"float":  KindNumber,
	"bool":   KindBoolean,
	"file":   KindFile,
	"folder": KindFolder,
	"path":   KindPath,
	"dict":   KindDict,
	"list":   KindList,
}

// KindFor resolves a DSL short name to its input kind.
func KindFor(short string) (Kind, bool) {
	kind, ok := Inputs[strings.TrimSpace(short)]
	return kind, ok
}

// Input describes one DAG input. Default and DefaultLocal are unset when nil;
// a present-but-falsy default (false, 0, "") still counts as a default.
// ItemsType applies to List inputs only and Extensions to File and Path
// inputs only.
type Input struct {
	Kind         Kind              `json:"kind" yaml:"type"`
	Annotations  map[string]any    `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Description  string            `json:"description,omitempty" yaml:"description,omitempty"`
	Default      any               `json:"default,omitempty" yaml:"default,omitempty"`
	DefaultLocal any               `json:"default_local,omitempty" yaml:"default_local,omitempty"`
	Spec         map[string]any    `json:"spec,omitempty" yaml:"spec,omitempty"`
	Alias        []alias.Input     `json:"alias,omitempty" yaml:"alias,omitempty"`
	Optional     bool              `json:"optional,omitempty" yaml:"optional,omitempty"`
	ItemsType    queenbee.ItemType `json:"items_type,omitempty" yaml:"items_type,omitempty"`
	Extensions   []string          `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// New returns an input of the given kind with variant defaults applied: a
// non-nil alias slice and the String item kind for lists.
func New(kind Kind) Input {
	input := Input{Kind: kind, Alias: []alias.Input{}}
	if kind == KindList {
		input.ItemsType = queenbee.ItemString
	}
	return input
}

// Required reports whether a value must be supplied for this input. The
// optional flag wins; otherwise presence of a default decides. Presence, not
// truthiness: a default of false or 0 marks the input not required.
func (in Input) Required() bool {
	if in.Optional {
		return false
	}
	return in.Default == nil
}

// IsArtifact reports whether the input refers to a file-system artifact
// rather than a plain value. True exactly for Folder, File and Path.
func (in Input) IsArtifact() bool {
	return kindSpecs[in.Kind].isArtifact
}

// ReferenceType returns the external reference tag for this input.
func (in Input) ReferenceType() ReferenceType {
	spec, ok := kindSpecs[in.Kind]
	if !ok {
		return InputReference
	}
	return spec.referenceType
}

// Aliases returns the alias entries in declaration order, never nil.
func (in Input) Aliases() []alias.Input {
	if in.Alias == nil {
		return []alias.Input{}
	}
	return in.Alias
}

// ToQueenbee assembles the schema record for this input under the given
// logical name and parses it through the schema constructor matching the
// input's kind. The descriptor does not know its own name; the caller
// supplies it. Underscores in the name become hyphens to match the external
// naming convention. All value validation belongs to the schema library and
// its errors propagate unchanged.
func (in Input) ToQueenbee(name string) (*queenbee.DAGInput, error) {
	spec, ok := kindSpecs[in.Kind]
	if !ok {
		return nil, fmt.Errorf("dag: unknown input kind %q", in.Kind)
	}

	annotations := make(map[string]any, len(in.Annotations)+1)
	for key, value := range in.Annotations {
		annotations[key] = value
	}
	if truthy(in.DefaultLocal) {
		annotations["__default_local__"] = in.DefaultLocal
	}

	aliases := make([]map[string]any, 0, len(in.Alias))
	for _, al := range in.Alias {
		aliases = append(aliases, al.ToQueenbee())
	}

	rec := queenbee.Record{
		Name:        strings.ReplaceAll(name, "_", "-"),
		Required:    in.Required(),
		Default:     in.Default,
		Description: in.Description,
		Annotations: annotations,
		Spec:        in.Spec,
		Alias:       aliases,
	}
	if spec.hasExtensions {
		rec.Extensions = in.Extensions
	}
	if spec.hasItemsType {
		rec.ItemsType = in.ItemsType
	}
	return spec.parse(rec)
}

// truthy mirrors the annotation-injection rule: a local default participates
// only when it carries a non-empty, non-zero value.
func truthy(value any) bool {
	if value == nil {
		return false
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.String:
		return v.Len() > 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0
	}
	return true
}

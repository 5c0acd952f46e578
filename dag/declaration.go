package dag

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mikkelkp/pollination-dsl/alias"
	"github.com/mikkelkp/pollination-dsl/queenbee"
)

// Declaration is the input set of one DAG as authored in the DSL. Input
// order is declaration order and is preserved through translation.
type Declaration struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Inputs      []InputRef `json:"inputs,omitempty" yaml:"inputs,omitempty"`
}

// InputRef pairs a logical input name with its descriptor. The descriptor
// itself never stores its name; the pairing happens here.
type InputRef struct {
	Name  string `json:"name" yaml:"name"`
	Input Input  `json:"input" yaml:",inline"`
}

// Clone returns a deep copy of the declaration.
func (d Declaration) Clone() Declaration {
	clone := Declaration{
		Name:        d.Name,
		Description: d.Description,
	}
	if len(d.Inputs) > 0 {
		clone.Inputs = make([]InputRef, len(d.Inputs))
		for i, ref := range d.Inputs {
			clone.Inputs[i] = InputRef{Name: ref.Name, Input: ref.Input.Clone()}
		}
	}
	return clone
}

// Clone returns a deep copy of the input descriptor.
func (in Input) Clone() Input {
	clone := in
	clone.Annotations = cloneAnyMap(in.Annotations)
	clone.Spec = cloneAnyMap(in.Spec)
	if in.Alias != nil {
		clone.Alias = make([]alias.Input, len(in.Alias))
		for i, al := range in.Alias {
			clone.Alias[i] = al.Clone()
		}
	}
	if in.Extensions != nil {
		clone.Extensions = make([]string, len(in.Extensions))
		copy(clone.Extensions, in.Extensions)
	}
	return clone
}

// Normalized clones the declaration, trims names, and applies variant
// defaults to every input (non-nil alias slice, String item kind for lists).
func (d Declaration) Normalized() Declaration {
	clone := d.Clone()
	clone.Name = strings.TrimSpace(clone.Name)
	clone.Description = strings.TrimSpace(clone.Description)
	for i, ref := range clone.Inputs {
		ref.Name = strings.TrimSpace(ref.Name)
		if ref.Input.Alias == nil {
			ref.Input.Alias = []alias.Input{}
		}
		if ref.Input.Kind == KindList && ref.Input.ItemsType == "" {
			ref.Input.ItemsType = queenbee.ItemString
		}
		clone.Inputs[i] = ref
	}
	return clone
}

// Validate ensures the declaration is structurally sound: named inputs with
// unique names, known kinds, and per-variant extras only on the variants
// that declare them. Default value typing is left to the schema library.
func (d Declaration) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("dag: declaration name is required")
	}
	seen := map[string]struct{}{}
	for idx, ref := range d.Inputs {
		name := strings.TrimSpace(ref.Name)
		if name == "" {
			return fmt.Errorf("dag %s: input[%d] has no name", d.Name, idx)
		}
		if _, exists := seen[name]; exists {
			return fmt.Errorf("dag %s: duplicate input %s", d.Name, name)
		}
		seen[name] = struct{}{}
		spec, ok := kindSpecs[ref.Input.Kind]
		if !ok {
			return fmt.Errorf("dag %s: input %s has unknown kind %q", d.Name, name, ref.Input.Kind)
		}
		if len(ref.Input.Extensions) > 0 && !spec.hasExtensions {
			return fmt.Errorf("dag %s: input %s: extensions apply to file and path inputs only", d.Name, name)
		}
		if ref.Input.ItemsType != "" && !spec.hasItemsType {
			return fmt.Errorf("dag %s: input %s: items_type applies to list inputs only", d.Name, name)
		}
		for aliasIdx, al := range ref.Input.Alias {
			if err := al.Validate(); err != nil {
				return fmt.Errorf("dag %s: input %s alias[%d]: %w", d.Name, name, aliasIdx, err)
			}
		}
	}
	return nil
}

// Translate converts every input to its schema record, in declaration order.
func (d Declaration) Translate() ([]*queenbee.DAGInput, error) {
	normalized := d.Normalized()
	if err := normalized.Validate(); err != nil {
		return nil, err
	}
	out := make([]*queenbee.DAGInput, 0, len(normalized.Inputs))
	for _, ref := range normalized.Inputs {
		converted, err := ref.Input.ToQueenbee(ref.Name)
		if err != nil {
			return nil, fmt.Errorf("dag %s: input %s: %w", normalized.Name, ref.Name, err)
		}
		out = append(out, converted)
	}
	return out, nil
}

// FilterPlatforms clones the declaration and keeps only the alias records
// targeting one of the given platforms, preserving their relative order.
// An empty platform list keeps every alias.
func (d Declaration) FilterPlatforms(platforms []string) Declaration {
	clone := d.Clone()
	if len(platforms) == 0 {
		return clone
	}
	for i, ref := range clone.Inputs {
		if len(ref.Input.Alias) == 0 {
			continue
		}
		kept := make([]alias.Input, 0, len(ref.Input.Alias))
		for _, al := range ref.Input.Alias {
			if al.TargetsAny(platforms) {
				kept = append(kept, al)
			}
		}
		clone.Inputs[i].Input.Alias = kept
	}
	return clone
}

// InputNames returns the logical input names in declaration order.
func (d Declaration) InputNames() []string {
	names := make([]string, 0, len(d.Inputs))
	for _, ref := range d.Inputs {
		names = append(names, ref.Name)
	}
	return names
}

// UnmarshalYAML resolves the DSL short names (str, int, file, ...) next to
// the canonical kind names. Unknown values survive decoding so Validate can
// report them with context.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if kind, ok := KindFor(raw); ok {
		*k = kind
		return nil
	}
	*k = Kind(strings.TrimSpace(raw))
	return nil
}

func cloneAnyMap(values map[string]any) map[string]any {
	if len(values) == 0 {
		return nil
	}
	clone := make(map[string]any, len(values))
	for key, value := range values {
		clone[key] = value
	}
	return clone
}

// Package alias declares platform-specific overrides for DAG inputs. Each
// alias targets one or more execution platforms and may route values through
// a handler chain before they reach the recipe. The dag package treats alias
// entries as opaque: it only collects their converted mappings in order.
package alias

import (
	"fmt"
	"strings"
)

// Handler describes the platform-side code that translates an alias value
// into the value the recipe input expects.
type Handler struct {
	Language string `json:"language" yaml:"language"`
	Module   string `json:"module" yaml:"module"`
	Function string `json:"function" yaml:"function"`
	Index    int    `json:"index,omitempty" yaml:"index,omitempty"`
}

// Validate ensures the handler names the code it dispatches to.
func (h Handler) Validate() error {
	if strings.TrimSpace(h.Language) == "" {
		return fmt.Errorf("alias: handler language is required")
	}
	if strings.TrimSpace(h.Function) == "" {
		return fmt.Errorf("alias: handler function is required")
	}
	return nil
}

// ToQueenbee converts the handler to the plain mapping shape the workflow
// schema stores.
func (h Handler) ToQueenbee() map[string]any {
	out := map[string]any{
		"type":     "IOAliasHandler",
		"language": h.Language,
		"function": h.Function,
	}
	if h.Module != "" {
		out["module"] = h.Module
	}
	if h.Index != 0 {
		out["index"] = h.Index
	}
	return out
}

// Input is a platform alias for one DAG input. Type identifies the alias
// schema variant and defaults to the generic one when left empty.
type Input struct {
	Type        string         `json:"type,omitempty" yaml:"type,omitempty"`
	Name        string         `json:"name,omitempty" yaml:"name,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Platform    []string       `json:"platform" yaml:"platform"`
	Handler     []Handler      `json:"handler,omitempty" yaml:"handler,omitempty"`
	Default     any            `json:"default,omitempty" yaml:"default,omitempty"`
	Spec        map[string]any `json:"spec,omitempty" yaml:"spec,omitempty"`
	Annotations map[string]any `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

const defaultAliasType = "DAGGenericInputAlias"

// Clone returns a deep copy of the alias input.
func (in Input) Clone() Input {
	clone := in
	if in.Platform != nil {
		clone.Platform = append([]string{}, in.Platform...)
	}
	if in.Handler != nil {
		clone.Handler = append([]Handler{}, in.Handler...)
	}
	clone.Spec = cloneAnyMap(in.Spec)
	clone.Annotations = cloneAnyMap(in.Annotations)
	return clone
}

// TargetsAny reports whether the alias targets at least one of the given
// platforms. Platform names compare case-insensitively, and an empty list
// matches every alias.
func (in Input) TargetsAny(platforms []string) bool {
	if len(platforms) == 0 {
		return true
	}
	for _, candidate := range platforms {
		for _, platform := range in.Platform {
			if strings.EqualFold(strings.TrimSpace(platform), strings.TrimSpace(candidate)) {
				return true
			}
		}
	}
	return false
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

// Validate ensures the alias targets at least one platform and carries
// well-formed handlers.
func (in Input) Validate() error {
	if len(in.Platform) == 0 {
		return fmt.Errorf("alias: at least one platform is required")
	}
	for idx, platform := range in.Platform {
		if strings.TrimSpace(platform) == "" {
			return fmt.Errorf("alias: platform[%d] is empty", idx)
		}
	}
	for idx, handler := range in.Handler {
		if err := handler.Validate(); err != nil {
			return fmt.Errorf("alias: handler[%d]: %w", idx, err)
		}
	}
	return nil
}

// ToQueenbee converts the alias to the plain mapping the workflow schema
// embeds in a DAG input record.
func (in Input) ToQueenbee() map[string]any {
	aliasType := in.Type
	if aliasType == "" {
		aliasType = defaultAliasType
	}
	out := map[string]any{
		"type":     aliasType,
		"platform": append([]string{}, in.Platform...),
	}
	if in.Name != "" {
		out["name"] = in.Name
	}
	if in.Description != "" {
		out["description"] = in.Description
	}
	if len(in.Handler) > 0 {
		handlers := make([]map[string]any, 0, len(in.Handler))
		for _, handler := range in.Handler {
			handlers = append(handlers, handler.ToQueenbee())
		}
		out["handler"] = handlers
	}
	if in.Default != nil {
		out["default"] = in.Default
	}
	if len(in.Spec) > 0 {
		out["spec"] = in.Spec
	}
	if len(in.Annotations) > 0 {
		out["annotations"] = in.Annotations
	}
	return out
}

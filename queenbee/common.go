package queenbee

import "fmt"

// ItemType enumerates the primitive kinds a DAG array input may hold. Every
// item in an array must share one kind.
type ItemType string

const (
	ItemGeneric    ItemType = "Generic"
	ItemString     ItemType = "String"
	ItemInteger    ItemType = "Integer"
	ItemNumber     ItemType = "Number"
	ItemBoolean    ItemType = "Boolean"
	ItemFolder     ItemType = "Folder"
	ItemArray      ItemType = "Array"
	ItemJSONObject ItemType = "JSONObject"
)

// Valid reports whether the item type is one of the known kinds.
func (t ItemType) Valid() bool {
	switch t {
	case ItemGeneric, ItemString, ItemInteger, ItemNumber, ItemBoolean,
		ItemFolder, ItemArray, ItemJSONObject:
		return true
	}
	return false
}

// ValidationError reports a record that does not satisfy the schema
// constraints of its input type. The DSL layer never recovers from it; the
// error propagates unchanged to whoever requested the conversion.
type ValidationError struct {
	Type   InputType
	Name   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("queenbee: %s: %s: %s", e.Type, e.Field, e.Reason)
	}
	return fmt.Sprintf("queenbee: %s %s: %s: %s", e.Type, e.Name, e.Field, e.Reason)
}

func validationErr(t InputType, name, field, reason string) error {
	return &ValidationError{Type: t, Name: name, Field: field, Reason: reason}
}

package ports

import "context"

type SchemaType string

const (
	SchemaObject  SchemaType = "object"
	SchemaString  SchemaType = "string"
	SchemaInteger SchemaType = "integer"
	SchemaNumber  SchemaType = "number"
	SchemaBoolean SchemaType = "boolean"
	SchemaArray   SchemaType = "array"
)

// Schema is the provider-neutral subset of JSON schema used for tool
// parameters and structured generation.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Required    []string
	Enum        []string
	Items       *Schema
}

type Tool interface {
	Name() string
	Description() string
	Parameters() *Schema
	Invoke(ctx context.Context, args map[string]any) (string, error)
}

package jsonschema

// Schema is a minimal JSON Schema representation used to describe rendered
// metadata records.
type Schema struct {
	Schema      string `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Core
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	Enum   []any  `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`
}

// Draft is the $schema URI emitted for root schemas.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// String returns a schema of type string.
func String() *Schema { return &Schema{Type: "string"} }

// Enum returns a string schema restricted to values.
func Enum(values ...string) *Schema {
	s := &Schema{Type: "string"}
	for _, v := range values {
		s.Enum = append(s.Enum, v)
	}
	return s
}

// Object returns an object schema that rejects unknown properties.
func Object(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: "object", Properties: props, Required: required, AdditionalProperties: false}
}

// Array returns an array schema with the given item schema.
func Array(items *Schema) *Schema { return &Schema{Type: "array", Items: items} }

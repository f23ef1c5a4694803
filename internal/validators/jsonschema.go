package validators

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/kaptinlin/jsonschema"
)

// JSONSchemaValidator validates values against a JSON Schema document.
type JSONSchemaValidator struct {
	doc    map[string]any
	schema *jsonschema.Schema
}

// NewJSONSchemaValidator compiles doc. The document is kept so that it can
// be re-emitted by [JSONSchemaValidator.JSONSchema].
func NewJSONSchemaValidator(doc map[string]any) (*JSONSchemaValidator, error) {
	if doc == nil {
		doc = map[string]any{}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaCompile, err)
	}

	schema, err := jsonschema.NewCompiler().Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaCompile, err)
	}

	return &JSONSchemaValidator{doc: maps.Clone(doc), schema: schema}, nil
}

// MustJSONSchema is like [NewJSONSchemaValidator] but panics on error. It is
// meant for package-level schema declarations.
func MustJSONSchema(doc map[string]any) *JSONSchemaValidator {
	v, err := NewJSONSchemaValidator(doc)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *JSONSchemaValidator) Validate(value any) (any, error) {
	result := v.schema.Validate(value)
	if result.Valid {
		return value, nil
	}

	details := make([]string, 0, len(result.Errors))
	for _, field := range slices.Sorted(maps.Keys(result.Errors)) {
		details = append(details, fmt.Sprintf("%s: %v", field, result.Errors[field]))
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidValue, strings.Join(details, "; "))
}

// JSONSchema returns a copy of the source document.
func (v *JSONSchemaValidator) JSONSchema() map[string]any {
	return maps.Clone(v.doc)
}

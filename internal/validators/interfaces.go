// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides external validators for schema slots that are
// not plain strings, booleans or numbers.
//
// Core concepts:
//   - Validator: the minimal "validate(value) -> value | error" contract a
//     schema slot delegates to. Implementations may normalize the value.
//   - Describer: optional; a validator that can describe itself as a JSON
//     Schema fragment, used when a configuration schema is serialized.
//
// Implementations in this package:
//   - JSONSchemaValidator: validates against a JSON Schema document.
//   - TagValidator: validates with go-playground/validator tag rules.
//   - Func: adapts a plain function.
package validators

// Validator validates a single configuration value and returns the value to
// store, which may be a normalized form of the input.
type Validator interface {
	Validate(value any) (any, error)
}

// Describer is implemented by validators that can be expressed as a JSON
// Schema fragment.
type Describer interface {
	JSONSchema() map[string]any
}

// Func adapts an ordinary function to [Validator].
type Func func(value any) (any, error)

// Validate calls f(value).
func (f Func) Validate(value any) (any, error) {
	return f(value)
}

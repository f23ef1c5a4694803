// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"strconv"

	"github.com/MKhiriev/go-smooai-config/internal/utils"
	"github.com/MKhiriev/go-smooai-config/internal/validators"
)

// Kind classifies a schema slot.
type Kind int

const (
	KindString Kind = iota + 1
	KindBoolean
	KindNumber
	KindExternal
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindExternal:
		return "external"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ExternalMarker flags a property produced by an external validator in the
// serialized schema.
const ExternalMarker = "x-smooai-external"

var errUnexpectedType = errors.New("unexpected type")

// Type is the declared type of a schema slot: one of the primitives
// [String], [Boolean], [Number], or an external validator.
type Type struct {
	kind      Kind
	validator validators.Validator
}

var (
	String  = Type{kind: KindString}
	Boolean = Type{kind: KindBoolean}
	Number  = Type{kind: KindNumber}
)

// External returns a slot type delegating to v.
func External(v validators.Validator) Type {
	return Type{kind: KindExternal, validator: v}
}

func (t Type) Kind() Kind                      { return t.kind }
func (t Type) Validator() validators.Validator { return t.validator }
func (t Type) String() string                  { return t.kind.String() }

// Coerce converts a value read from a source file to the slot type.
//
// Strings accept numbers and booleans in their textual form. Booleans accept
// "true"/"1" as true and any other string as false, and numbers equal to 1
// as true. Numbers accept numeric strings. External slots run the validator.
// Nil is always accepted.
func (t Type) Coerce(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch t.kind {
	case KindString:
		switch x := v.(type) {
		case string:
			return x, nil
		case bool:
			return strconv.FormatBool(x), nil
		}
		if f, ok := toFloat(v); ok {
			return strconv.FormatFloat(f, 'f', -1, 64), nil
		}
	case KindBoolean:
		switch x := v.(type) {
		case bool:
			return x, nil
		case string:
			return utils.CoerceBoolean(x), nil
		}
		if f, ok := toFloat(v); ok {
			return f == 1, nil
		}
	case KindNumber:
		if s, ok := v.(string); ok {
			return utils.ParseNumber(s)
		}
		if isNumber(v) {
			return v, nil
		}
	case KindExternal:
		return t.validate(v)
	}

	return nil, fmt.Errorf("%w %T", errUnexpectedType, v)
}

// Check validates a computed value without coercion.
func (t Type) Check(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch t.kind {
	case KindString:
		if _, ok := v.(string); ok {
			return v, nil
		}
	case KindBoolean:
		if _, ok := v.(bool); ok {
			return v, nil
		}
	case KindNumber:
		if isNumber(v) {
			return v, nil
		}
	case KindExternal:
		return t.validate(v)
	}

	return nil, fmt.Errorf("%w %T", errUnexpectedType, v)
}

// JSONSchema returns the serialized form of the slot type.
func (t Type) JSONSchema() map[string]any {
	switch t.kind {
	case KindString, KindBoolean, KindNumber:
		return map[string]any{"type": t.kind.String()}
	}

	out := map[string]any{}
	if d, ok := t.validator.(validators.Describer); ok {
		out = maps.Clone(d.JSONSchema())
		if out == nil {
			out = map[string]any{}
		}
	}
	out[ExternalMarker] = true
	return out
}

func (t Type) validate(v any) (any, error) {
	if t.validator == nil {
		return v, nil
	}
	return t.validator.Validate(v)
}

func isNumber(v any) bool {
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func toFloat(v any) (float64, bool) {
	if !isNumber(v) {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	default:
		return rv.Float(), true
	}
}

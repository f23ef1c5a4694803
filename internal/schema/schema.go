// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schema defines configuration schemas: which keys exist, which tier
// they belong to and what type their values must have.
//
// A schema is declared with source keys in any casing ("apiUrl",
// "max-retries") and addressed everywhere else by the canonical key derived
// by package keycase ("API_URL", "MAX_RETRIES"). The built-in public keys
// ENV, IS_LOCAL, REGION and CLOUD_PROVIDER are always present.
package schema

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-smooai-config/internal/deferred"
	"github.com/MKhiriev/go-smooai-config/internal/errs"
	"github.com/MKhiriev/go-smooai-config/internal/keycase"
	"github.com/MKhiriev/go-smooai-config/models"
)

// Built-in keys injected into every resolved configuration.
const (
	KeyEnv           = "ENV"
	KeyIsLocal       = "IS_LOCAL"
	KeyRegion        = "REGION"
	KeyCloudProvider = "CLOUD_PROVIDER"
)

var builtIns = []FieldDef{
	{SourceKey: KeyEnv, Type: String, Description: "logical environment name"},
	{SourceKey: KeyIsLocal, Type: Boolean, Description: "running on a developer machine"},
	{SourceKey: KeyRegion, Type: String, Description: "detected cloud region"},
	{SourceKey: KeyCloudProvider, Type: String, Description: "detected cloud provider"},
}

// IsBuiltIn reports whether key is one of the built-in canonical keys.
func IsBuiltIn(key string) bool {
	switch key {
	case KeyEnv, KeyIsLocal, KeyRegion, KeyCloudProvider:
		return true
	default:
		return false
	}
}

// BuiltInValues returns the built-in key values for a runtime context.
func BuiltInValues(rc models.RuntimeContext) map[string]any {
	return map[string]any{
		KeyEnv:           rc.Env,
		KeyIsLocal:       rc.IsLocal,
		KeyRegion:        rc.Region,
		KeyCloudProvider: rc.Provider,
	}
}

// FieldDef declares one key of a tier.
type FieldDef struct {
	SourceKey   string
	Type        Type
	Description string
}

// Def declares key with type t.
func Def(key string, t Type) FieldDef {
	return FieldDef{SourceKey: key, Type: t}
}

// Describe returns a copy of d with a description attached.
func (d FieldDef) Describe(description string) FieldDef {
	d.Description = description
	return d
}

// Field is a declared key after canonicalization.
type Field struct {
	SourceKey   string
	Key         string
	Tier        models.Tier
	Type        Type
	Description string
	BuiltIn     bool
}

// Schema is an ordered set of fields. It is immutable once built and safe
// for concurrent use.
type Schema struct {
	fields []Field
	byKey  map[string]int
}

// Define builds a schema from the three tier declarations. Declaration order
// is kept. Duplicate source keys, or distinct source keys that derive the
// same canonical key (including a built-in one), are rejected.
func Define(public, secret, featureFlags []FieldDef) (*Schema, error) {
	s := &Schema{byKey: make(map[string]int)}

	for _, def := range builtIns {
		if err := s.add(models.TierPublic, def, true); err != nil {
			return nil, err
		}
	}

	for _, tier := range []struct {
		tier models.Tier
		defs []FieldDef
	}{
		{models.TierPublic, public},
		{models.TierSecret, secret},
		{models.TierFeatureFlag, featureFlags},
	} {
		for _, def := range tier.defs {
			if err := s.add(tier.tier, def, false); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

// MustDefine is like [Define] but panics on error.
func MustDefine(public, secret, featureFlags []FieldDef) *Schema {
	s, err := Define(public, secret, featureFlags)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) add(tier models.Tier, def FieldDef, builtIn bool) error {
	if def.Type.kind == 0 {
		return errs.New(errs.ErrSchemaDefinition, "key %q in %s has no type", def.SourceKey, tier)
	}

	key := keycase.Derive(def.SourceKey)
	if key == "" {
		return errs.New(errs.ErrSchemaDefinition, "key %q in %s derives an empty canonical key", def.SourceKey, tier)
	}

	if idx, exists := s.byKey[key]; exists {
		prev := s.fields[idx]
		if prev.SourceKey == def.SourceKey {
			return errs.New(errs.ErrSchemaDefinition, "duplicate key %q (%s and %s)", def.SourceKey, prev.Tier, tier)
		}
		return errs.New(errs.ErrSchemaDefinition, "keys %q (%s) and %q (%s) both derive %s",
			prev.SourceKey, prev.Tier, def.SourceKey, tier, key)
	}

	s.byKey[key] = len(s.fields)
	s.fields = append(s.fields, Field{
		SourceKey:   def.SourceKey,
		Key:         key,
		Tier:        tier,
		Type:        def.Type,
		Description: def.Description,
		BuiltIn:     builtIn,
	})
	return nil
}

// Fields returns every field in declaration order, built-ins first.
func (s *Schema) Fields() []Field {
	if s == nil {
		return nil
	}
	return slices.Clone(s.fields)
}

// Field looks up a field by canonical key.
func (s *Schema) Field(key string) (Field, bool) {
	if s == nil {
		return Field{}, false
	}
	idx, ok := s.byKey[key]
	if !ok {
		return Field{}, false
	}
	return s.fields[idx], true
}

// Keys returns the canonical keys in declaration order.
func (s *Schema) Keys() []string {
	return s.KeysIn("")
}

// KeysIn returns the canonical keys of one tier; an empty tier means all.
func (s *Schema) KeysIn(tier models.Tier) []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		if tier == "" || f.Tier == tier {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// Coerce canonicalizes the keys of a raw source tree and coerces every value
// declared in the schema to its slot type. source names the origin for error
// messages.
//
// Deferred values are kept as is; they are checked after resolution. Keys not
// declared in the schema are kept unvalidated. A nil schema only
// canonicalizes keys.
func (s *Schema) Coerce(tree map[string]any, source string) (map[string]any, error) {
	out := make(map[string]any, len(tree))
	origin := make(map[string]string, len(tree))

	rawKeys := make([]string, 0, len(tree))
	for k := range tree {
		rawKeys = append(rawKeys, k)
	}
	slices.Sort(rawKeys)

	for _, raw := range rawKeys {
		value := tree[raw]
		key := keycase.Derive(raw)
		if key == "" {
			return nil, &errs.ValidationError{Key: raw, Expected: "named key", Got: value, Source: source,
				Reason: fmt.Errorf("key %q has no letters or digits", raw)}
		}
		if first, dup := origin[key]; dup {
			return nil, &errs.ValidationError{Key: key, Expected: "unique key", Got: value, Source: source,
				Reason: fmt.Errorf("keys %q and %q both derive %s", first, raw, key)}
		}
		origin[key] = raw

		field, declared := s.Field(key)
		if !declared || deferred.IsDeferred(value) {
			out[key] = value
			continue
		}

		coerced, err := field.Type.Coerce(value)
		if err != nil {
			return nil, &errs.ValidationError{Key: key, Expected: field.Type.String(), Got: value, Source: source, Reason: err}
		}
		out[key] = coerced
	}

	return out, nil
}

// Check validates a computed value for key strictly, without coercion.
// Undeclared keys are accepted.
func (s *Schema) Check(key string, value any) (any, error) {
	field, ok := s.Field(key)
	if !ok {
		return value, nil
	}
	checked, err := field.Type.Check(value)
	if err != nil {
		return nil, &errs.ValidationError{Key: key, Expected: field.Type.String(), Got: value, Source: "deferred", Reason: err}
	}
	return checked, nil
}

var _ deferred.Checker = (*Schema)(nil)

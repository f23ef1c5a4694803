package schema

import (
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-smooai-config/internal/errs"
	"github.com/MKhiriev/go-smooai-config/internal/validators"
	"github.com/MKhiriev/go-smooai-config/models"
)

// Draft is the JSON Schema dialect emitted by [Schema.JSONSchema].
const Draft = "https://json-schema.org/draft/2020-12/schema"

// sourceKeyMarker preserves the declared source key when it differs from the
// canonical one.
const sourceKeyMarker = "x-smooai-source-key"

// tierProperty maps tiers to their property name in the combined schema.
var tierProperty = map[models.Tier]string{
	models.TierPublic:      "public",
	models.TierSecret:      "secret",
	models.TierFeatureFlag: "feature_flags",
}

// JSONSchema serializes the schema as one JSON Schema document with a
// "public", "secret" and "feature_flags" object, each keyed by canonical key.
func (s *Schema) JSONSchema() map[string]any {
	props := make(map[string]any, len(tierProperty))
	for _, tier := range models.Tiers {
		props[tierProperty[tier]] = s.TierJSONSchema(tier)
	}
	return map[string]any{
		"$schema":    Draft,
		"type":       "object",
		"properties": props,
	}
}

// TierJSONSchema serializes a single tier as an object schema.
func (s *Schema) TierJSONSchema(tier models.Tier) map[string]any {
	props := map[string]any{}
	for _, f := range s.Fields() {
		if f.Tier != tier {
			continue
		}
		p := f.Type.JSONSchema()
		if f.Description != "" {
			p["description"] = f.Description
		}
		if f.SourceKey != f.Key {
			p[sourceKeyMarker] = f.SourceKey
		}
		props[f.Key] = p
	}
	return map[string]any{"type": "object", "properties": props}
}

// FromJSONSchema rebuilds a schema from a document produced by
// [Schema.JSONSchema].
//
// Properties typed "string", "boolean", "number" or "integer" become
// primitives. Everything else, including properties flagged as external,
// becomes an external slot validated by the property's own JSON Schema.
// Built-in keys are skipped since [Define] adds them back.
func FromJSONSchema(doc map[string]any) (*Schema, error) {
	tiers, _ := doc["properties"].(map[string]any)

	defs := make(map[models.Tier][]FieldDef, len(tierProperty))
	for _, tier := range models.Tiers {
		obj, _ := tiers[tierProperty[tier]].(map[string]any)
		props, _ := obj["properties"].(map[string]any)

		for _, key := range slices.Sorted(maps.Keys(props)) {
			if IsBuiltIn(key) {
				continue
			}
			prop, ok := props[key].(map[string]any)
			if !ok {
				return nil, errs.New(errs.ErrSchemaDefinition, "property %s in %s is not an object", key, tier)
			}

			def, err := fieldFromJSON(key, prop)
			if err != nil {
				return nil, err
			}
			defs[tier] = append(defs[tier], def)
		}
	}

	return Define(defs[models.TierPublic], defs[models.TierSecret], defs[models.TierFeatureFlag])
}

func fieldFromJSON(key string, prop map[string]any) (FieldDef, error) {
	def := FieldDef{SourceKey: key}
	if sk, ok := prop[sourceKeyMarker].(string); ok && sk != "" {
		def.SourceKey = sk
	}
	def.Description, _ = prop["description"].(string)

	external, _ := prop[ExternalMarker].(bool)
	if !external {
		switch prop["type"] {
		case "string":
			def.Type = String
			return def, nil
		case "boolean":
			def.Type = Boolean
			return def, nil
		case "number", "integer":
			def.Type = Number
			return def, nil
		}
	}

	body := maps.Clone(prop)
	delete(body, ExternalMarker)
	delete(body, sourceKeyMarker)
	delete(body, "description")

	v, err := validators.NewJSONSchemaValidator(body)
	if err != nil {
		return FieldDef{}, errs.New(errs.ErrSchemaDefinition, "property %s: %v", key, err)
	}
	def.Type = External(v)
	return def, nil
}

// String renders the schema for debugging.
func (s *Schema) String() string {
	return fmt.Sprintf("schema(%d keys)", len(s.Fields()))
}

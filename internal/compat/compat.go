// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package compat checks that a JSON Schema only uses the keyword subset every
// Smoo AI SDK (TypeScript, Python, Rust, Go) interprets identically.
//
// The tables in this file are the compatibility contract between the SDKs.
// Adding a keyword to supportedKeywords or a format to supportedFormats is a
// cross-language change.
package compat

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-smooai-config/models"
)

var supportedKeywords = map[string]bool{
	// core
	"type": true, "properties": true, "required": true, "enum": true, "const": true, "default": true,
	// metadata
	"title": true, "description": true, "$schema": true, "$comment": true,
	"examples": true, "deprecated": true, "readOnly": true, "writeOnly": true,
	// string
	"minLength": true, "maxLength": true, "pattern": true, "format": true,
	// numeric
	"minimum": true, "maximum": true, "exclusiveMinimum": true, "exclusiveMaximum": true, "multipleOf": true,
	// array
	"items": true, "minItems": true, "maxItems": true, "uniqueItems": true,
	// object
	"additionalProperties": true,
	// composition
	"anyOf": true, "oneOf": true, "allOf": true,
	// references
	"$ref": true, "$defs": true, "definitions": true,
}

type rejection struct {
	message    string
	suggestion string
}

var conditional = rejection{
	message:    "Conditional schemas (if/then/else) are not supported across all SDK languages.",
	suggestion: `Use "oneOf" or "anyOf" with discriminator properties instead.`,
}

var rejectedKeywords = map[string]rejection{
	"if":   conditional,
	"then": conditional,
	"else": conditional,
	"patternProperties": {
		message:    `"patternProperties" is not supported across all SDK languages.`,
		suggestion: `Use explicit "properties" with known key names, or "additionalProperties" with a type constraint.`,
	},
	"propertyNames": {
		message:    `"propertyNames" is not supported across all SDK languages.`,
		suggestion: "Validate property names in application code instead.",
	},
	"dependencies": {
		message:    `"dependencies" is not supported across all SDK languages.`,
		suggestion: `Use "required" within "oneOf"/"anyOf" variants to express conditional requirements.`,
	},
	"contains": {
		message:    `"contains" is not supported across all SDK languages.`,
		suggestion: `Use "items" with a union type ("anyOf") instead.`,
	},
	"not": {
		message:    `"not" is not supported across all SDK languages.`,
		suggestion: `Express the constraint positively using "enum", "oneOf", or validation in application code.`,
	},
	"prefixItems": {
		message:    `"prefixItems" (tuple validation) is not supported across all SDK languages.`,
		suggestion: `Use an "object" with named fields instead of a positional tuple.`,
	},
	"unevaluatedProperties": {
		message:    `"unevaluatedProperties" is not supported across all SDK languages.`,
		suggestion: `Use "additionalProperties" instead.`,
	},
	"unevaluatedItems": {
		message:    `"unevaluatedItems" is not supported across all SDK languages.`,
		suggestion: `Use "items" with a specific schema instead.`,
	},
}

var supportedFormats = map[string]bool{
	"email": true, "uri": true, "uuid": true, "date-time": true, "ipv4": true, "ipv6": true,
}

const formatSuggestion = `Supported formats: date-time, email, ipv4, ipv6, uri, uuid. Use "pattern" for custom string validation.`

// Supported reports whether keyword is on the cross-SDK allow-list.
func Supported(keyword string) bool {
	return supportedKeywords[keyword]
}

// Rejected reports whether keyword is explicitly unsupported.
func Rejected(keyword string) bool {
	_, ok := rejectedKeywords[keyword]
	return ok
}

// SupportedFormat reports whether a "format" value is portable.
func SupportedFormat(format string) bool {
	return supportedFormats[format]
}

// Validate walks schema and reports every non-portable construct. It never
// fails: an empty report means the schema is portable. Entries are ordered by
// walk position with keys sorted at every level.
func Validate(schema map[string]any) models.CompatibilityReport {
	report := models.CompatibilityReport{}
	walk(schema, "", &report)
	return report
}

// ValidateJSON decodes a JSON document and validates it.
func ValidateJSON(data []byte) (models.CompatibilityReport, error) {
	var schema map[string]any
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}
	return Validate(schema), nil
}

func walk(node any, path string, report *models.CompatibilityReport) {
	obj, ok := node.(map[string]any)
	if !ok {
		return
	}

	at := path
	if at == "" {
		at = "/"
	}

	for _, key := range slices.Sorted(maps.Keys(obj)) {
		if r, rejected := rejectedKeywords[key]; rejected {
			*report = append(*report, models.CompatibilityIssue{
				Path:       at,
				Keyword:    key,
				Message:    r.message,
				Suggestion: r.suggestion,
			})
			continue
		}

		if key == "format" {
			if format, ok := obj[key].(string); ok && !supportedFormats[format] {
				*report = append(*report, models.CompatibilityIssue{
					Path:       at,
					Keyword:    "format",
					Message:    fmt.Sprintf("Format %q is not supported across all SDK languages.", format),
					Suggestion: formatSuggestion,
				})
			}
		}
	}

	if props, ok := obj["properties"].(map[string]any); ok {
		for _, name := range slices.Sorted(maps.Keys(props)) {
			walk(props[name], path+"/properties/"+name, report)
		}
	}

	if items, ok := obj["items"].(map[string]any); ok {
		walk(items, path+"/items", report)
	}

	if additional, ok := obj["additionalProperties"].(map[string]any); ok {
		walk(additional, path+"/additionalProperties", report)
	}

	for _, keyword := range []string{"allOf", "anyOf", "oneOf"} {
		if branches, ok := obj[keyword].([]any); ok {
			for i, branch := range branches {
				walk(branch, path+"/"+keyword+"/"+strconv.Itoa(i), report)
			}
		}
	}

	for _, keyword := range []string{"$defs", "definitions"} {
		if defs, ok := obj[keyword].(map[string]any); ok {
			for _, name := range slices.Sorted(maps.Keys(defs)) {
				walk(defs[name], path+"/"+keyword+"/"+name, report)
			}
		}
	}
}

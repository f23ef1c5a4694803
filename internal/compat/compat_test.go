package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-smooai-config/models"
)

func keywords(report models.CompatibilityReport) []string {
	out := make([]string, 0, len(report))
	for _, issue := range report {
		out = append(out, issue.Keyword)
	}
	return out
}

func TestValidate_PortableSchemaIsValid(t *testing.T) {
	schema := map[string]any{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"$id":      "https://smoo.ai/schemas/app",
		"x-owner":  "platform",
		"type":     "object",
		"title":    "App",
		"required": []any{"apiUrl"},
		"properties": map[string]any{
			"apiUrl":   map[string]any{"type": "string", "format": "uri"},
			"contact":  map[string]any{"type": "string", "format": "email"},
			"retries":  map[string]any{"type": "integer", "minimum": 0, "maximum": 10},
			"tags":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "uniqueItems": true},
			"mode":     map[string]any{"enum": []any{"a", "b"}},
			"metadata": map[string]any{"type": "object", "additionalProperties": map[string]any{"type": "string"}},
			"target":   map[string]any{"anyOf": []any{map[string]any{"$ref": "#/$defs/host"}, map[string]any{"type": "null"}}},
		},
		"$defs": map[string]any{
			"host": map[string]any{"type": "string", "format": "ipv4"},
		},
	}

	report := Validate(schema)

	assert.True(t, report.Valid())
	assert.Empty(t, report)
}

func TestValidate_ConditionalNestedDeep(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"anyOf": []any{
			map[string]any{"type": "string"},
			map[string]any{
				"$defs": map[string]any{
					"inner": map[string]any{
						"properties": map[string]any{
							"db": map[string]any{
								"if":   map[string]any{"properties": map[string]any{"kind": map[string]any{"const": "pg"}}},
								"then": map[string]any{"required": []any{"port"}},
								"else": map[string]any{"required": []any{"path"}},
							},
						},
					},
				},
			},
		},
	}

	report := Validate(schema)

	require.Len(t, report, 3)
	assert.Equal(t, []string{"else", "if", "then"}, keywords(report))
	for _, issue := range report {
		assert.Equal(t, "/anyOf/1/$defs/inner/properties/db", issue.Path)
		assert.Contains(t, issue.Message, "Conditional schemas")
		assert.Contains(t, issue.Suggestion, "oneOf")
	}
}

func TestValidate_RejectedKeywords(t *testing.T) {
	for _, keyword := range []string{
		"patternProperties", "propertyNames", "dependencies", "contains",
		"not", "prefixItems", "unevaluatedProperties", "unevaluatedItems",
	} {
		t.Run(keyword, func(t *testing.T) {
			report := Validate(map[string]any{
				"properties": map[string]any{
					"x": map[string]any{keyword: map[string]any{}},
				},
			})

			require.Len(t, report, 1)
			assert.Equal(t, keyword, report[0].Keyword)
			assert.Equal(t, "/properties/x", report[0].Path)
			assert.NotEmpty(t, report[0].Message)
			assert.NotEmpty(t, report[0].Suggestion)
		})
	}
}

func TestValidate_Formats(t *testing.T) {
	tests := []struct {
		format string
		valid  bool
	}{
		{"email", true},
		{"uri", true},
		{"uuid", true},
		{"date-time", true},
		{"ipv4", true},
		{"ipv6", true},
		{"hostname", false},
		{"date", false},
		{"uri-reference", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			report := Validate(map[string]any{"type": "string", "format": tt.format})
			if tt.valid {
				assert.Empty(t, report)
				return
			}
			require.Len(t, report, 1)
			assert.Equal(t, "format", report[0].Keyword)
			assert.Equal(t, "/", report[0].Path)
			assert.Contains(t, report[0].Message, `"`+tt.format+`"`)
			assert.Equal(t, formatSuggestion, report[0].Suggestion)
		})
	}
}

func TestValidate_WalkTargets(t *testing.T) {
	bad := map[string]any{"not": map[string]any{}}
	schema := map[string]any{
		"items":                bad,
		"additionalProperties": bad,
		"allOf":                []any{bad},
		"oneOf":                []any{map[string]any{}, bad},
		"definitions":          map[string]any{"legacy": bad},
	}

	report := Validate(schema)

	paths := make([]string, 0, len(report))
	for _, issue := range report {
		paths = append(paths, issue.Path)
	}
	assert.Equal(t, []string{
		"/items",
		"/additionalProperties",
		"/allOf/0",
		"/oneOf/1",
		"/definitions/legacy",
	}, paths)
}

func TestValidate_NonSchemaValuesAreIgnored(t *testing.T) {
	report := Validate(map[string]any{
		"additionalProperties": false,
		"items":                []any{map[string]any{"not": map[string]any{}}},
		"format":               42,
		"properties":           map[string]any{"x": true},
	})

	assert.Empty(t, report)
	assert.Empty(t, Validate(nil))
}

func TestValidate_Deterministic(t *testing.T) {
	schema := map[string]any{
		"properties": map[string]any{
			"b": map[string]any{"not": map[string]any{}},
			"a": map[string]any{"contains": map[string]any{}},
			"c": map[string]any{"format": "hostname"},
		},
		"if": map[string]any{},
	}

	first := Validate(schema)
	for range 20 {
		assert.Equal(t, first, Validate(schema))
	}
	assert.Equal(t, []string{"if", "contains", "not", "format"}, keywords(first))
}

func TestValidateJSON(t *testing.T) {
	report, err := ValidateJSON([]byte(`{"type":"object","properties":{"x":{"propertyNames":{}}}}`))
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, "propertyNames", report[0].Keyword)

	_, err = ValidateJSON([]byte(`{`))
	assert.Error(t, err)
}

func TestTables(t *testing.T) {
	assert.True(t, Supported("$ref"))
	assert.False(t, Supported("if"))
	assert.True(t, Rejected("if"))
	assert.False(t, Rejected("x-custom"))
	assert.True(t, SupportedFormat("uuid"))
	assert.False(t, SupportedFormat("hostname"))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CompatibilityIssue is a single schema construct that one or more SDK
// languages cannot represent.
type CompatibilityIssue struct {
	// Path is a JSON-pointer-like location of the offending node, e.g.
	// "/properties/db/anyOf/1".
	Path string `json:"path"`

	// Keyword is the offending JSON Schema keyword, e.g. "if" or "format".
	Keyword string `json:"keyword"`

	// Message explains why the construct is rejected.
	Message string `json:"message"`

	// Suggestion describes a compatible rewrite.
	Suggestion string `json:"suggestion,omitempty"`
}

// CompatibilityReport is the ordered list of issues found in a schema.
// An empty report means the schema is portable.
type CompatibilityReport []CompatibilityIssue

// Valid reports whether the report contains no issues.
func (r CompatibilityReport) Valid() bool {
	return len(r) == 0
}

// CompatibilityResponse is the wire shape returned by the schema check endpoint.
type CompatibilityResponse struct {
	Valid  bool                `json:"valid"`
	Issues CompatibilityReport `json:"issues"`
}

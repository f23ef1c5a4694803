// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Msg* constants are the human-readable strings the CLI prints or wraps
// into returned errors.
const (
	// MsgInvalidSettings prefixes errors from flag, environment or settings
	// file parsing.
	MsgInvalidSettings = "invalid settings"

	// MsgInvalidSchemaFile is returned when a schema file cannot be read or
	// is not a JSON object.
	MsgInvalidSchemaFile = "invalid schema file"

	// MsgSchemaCompatible is printed when check-schema finds no issues.
	MsgSchemaCompatible = "schema is compatible with every SDK language"

	// MsgSchemaIncompatible is returned when check-schema reports issues.
	MsgSchemaIncompatible = "schema is not compatible"

	// MsgUnknownTier is returned for a --tier value that names no tier.
	MsgUnknownTier = "unknown tier"

	// MsgTierNeedsSchema is returned when --tier is used without --schema,
	// since tiers are declared by the schema.
	MsgTierNeedsSchema = "--tier requires --schema"
)

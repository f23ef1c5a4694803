// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the handlers. Callers can match against them
// with [errors.Is].
var (
	// ErrKeyNotFound is returned when the requested key has no value in the
	// resolved configuration.
	ErrKeyNotFound = errors.New("config key not found")

	// ErrUnknownOrganization is returned when the server is bound to one
	// organization and the request names another.
	ErrUnknownOrganization = errors.New("unknown organization")

	// ErrInvalidSchemaBody is returned when the compatibility request body is
	// not a JSON object.
	ErrInvalidSchemaBody = errors.New("request body must be a JSON Schema object")
)

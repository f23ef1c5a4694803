// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package errs defines the error taxonomy shared by every stage of
// configuration resolution.
//
// Each failure class has a sentinel value so callers can branch with
// [errors.Is] regardless of which component produced the error:
//   - [ErrDiscovery]: the configuration directory could not be located.
//   - [ErrMissingRequiredFile]: the mandatory "default" source is absent.
//   - [ErrLoad]: a matched source file could not be read or parsed.
//   - [ErrValidation]: a value does not satisfy its declared schema slot.
//   - [ErrSchemaDefinition]: a schema is malformed (duplicate or colliding keys).
//
// All of them abort the resolution pass; none are retried internally.
package errs

import (
	"errors"
	"fmt"
)

// Prefix is prepended to every message produced by this package so that
// configuration failures are easy to spot in mixed application logs.
const Prefix = "[Smooai Config]"

var (
	ErrDiscovery           = errors.New("config directory not found")
	ErrMissingRequiredFile = errors.New("required config file missing")
	ErrLoad                = errors.New("config file could not be loaded")
	ErrValidation          = errors.New("config value failed validation")
	ErrSchemaDefinition    = errors.New("invalid config schema definition")
)

// ConfigError is a prefixed, human-readable error bound to one of the
// sentinel kinds above.
type ConfigError struct {
	Kind    error
	Message string
}

// New builds a [ConfigError] of the given kind with a formatted message.
func New(kind error, format string, args ...any) error {
	return &ConfigError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string {
	return Prefix + " " + e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Kind
}

// LoadError reports a source file that matched the cascade but could not be
// read or decoded. Path is always the file that triggered the failure.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s error loading %s: %v", Prefix, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}

// ValidationError reports a value that failed its schema slot.
type ValidationError struct {
	// Key is the canonical key of the offending entry.
	Key string
	// Expected names the declared slot type (string, boolean, number, external).
	Expected string
	// Got is the rejected value.
	Got any
	// Source is the file (or "deferred") that produced the value, if known.
	Source string
	// Reason optionally carries the underlying validator error.
	Reason error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s invalid value for %s: expected %s, got %T", Prefix, e.Key, e.Expected, e.Got)
	if e.Source != "" {
		msg += " (from " + e.Source + ")"
	}
	if e.Reason != nil {
		msg += ": " + e.Reason.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() []error {
	if e.Reason == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Reason}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the remote configuration platform.
//
// The primary abstraction is [RemoteAdapter], which decouples the service
// layer from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter reads configuration values stored on the remote platform.
// Values are cached per environment; an empty environment selects the
// adapter's default environment.
type RemoteAdapter interface {
	// GetValue returns the value of a single key. A cached value is returned
	// without a request until it expires.
	GetValue(ctx context.Context, key, environment string) (any, error)

	// GetAllValues fetches every value of the environment and refreshes the
	// cache with the result.
	GetAllValues(ctx context.Context, environment string) (map[string]any, error)

	// InvalidateCache drops every cached value.
	InvalidateCache()

	// InvalidateEnvironment drops the cached values of one environment.
	InvalidateEnvironment(environment string)
}

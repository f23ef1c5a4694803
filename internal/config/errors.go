package config

import "errors"

// Validation errors returned by [Settings.validate].
var (
	// ErrInvalidDiscoverySettings indicates a negative search depth or TTL.
	ErrInvalidDiscoverySettings = errors.New("invalid discovery settings")
	// ErrInvalidRemoteSettings indicates an incomplete remote configuration
	// (for example, an API URL without an organization) or negative timings.
	ErrInvalidRemoteSettings = errors.New("invalid remote settings")
	// ErrInvalidServerSettings indicates an unusable listen address.
	ErrInvalidServerSettings = errors.New("invalid server settings")
)

// Package http implements the local development API of smooai-config.
//
// The API mirrors the read endpoints of the remote configuration platform,
// so a client pointed at it resolves values from the local configuration
// directory instead:
//
//	GET  /organizations/{orgID}/config/values?environment=
//	GET  /organizations/{orgID}/config/values/{key}?environment=
//	POST /api/schema/compatibility
//	POST /api/config/reload
//	GET  /api/version
//
// Every request passes through trace-id and access-logging middleware.
package http

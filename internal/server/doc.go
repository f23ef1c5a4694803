// Package server runs the local development API.
//
// It owns the HTTP server lifecycle: startup and graceful shutdown once the
// caller's context is canceled.
package server

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors used by the
// smooai-config resolver, CLI and development server.
//
// The Logger type embeds zerolog.Logger, so the usual zerolog chain
// (Debug, Info, Warn, Error, ...) is available directly. Components receive a
// *Logger at construction time; HTTP handlers obtain the request-scoped one
// with FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

// NewLogger returns a JSON logger writing to stdout, used by long-running
// processes such as the development server.
//
// Every entry carries a "role" field, a timestamp and the calling function
// name in "func". The global level is set to Debug.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewConsoleLogger returns a human-readable logger for the CLI. Output goes
// to w (usually stderr, keeping stdout free for command results). Entries
// below level are dropped.
func NewConsoleLogger(role string, w io.Writer, level zerolog.Level) *Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}

	logger := zerolog.New(console).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a logger that discards everything. Used in tests and as the
// default when a component is built without a logger.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// OrNop returns l, or a Nop logger when l is nil.
func OrNop(l *Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return l
}

// GetChildLogger returns a logger inheriting every field of l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context by the
// logging middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

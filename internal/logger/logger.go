// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used by every
// layer of the CMS client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Request-scoped loggers are attached to a context with WithRequestID and
// recovered with FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON *Logger writing to stdout, tagged with role.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name instead of file:line.
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stdout)
}

// NewClientLogger constructs a *Logger for the command-line client.
//
// Stdout belongs to command output, so entries are appended to the file at
// path instead. The parent directory is created when missing. If the file
// cannot be opened the logger falls back to stderr.
func NewClientLogger(role, path string) *Logger {
	var out io.Writer = os.Stderr
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err == nil {
			if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
				out = f
			}
		}
	}

	return newLogger(role, out)
}

func newLogger(role string, out io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithRequestID returns a child logger carrying a "request_id" field and a
// context holding that child, so that FromContext finds it downstream.
func (l *Logger) WithRequestID(ctx context.Context, requestID string) (context.Context, *Logger) {
	child := &Logger{l.With().Str("request_id", requestID).Logger()}
	return child.WithContext(ctx), child
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper. If none is attached zerolog returns its default logger, so the
// result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

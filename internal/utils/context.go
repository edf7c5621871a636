// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the client layers: typed
// context keys, request id generation and the preconfigured HTTP client.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys so that they never collide
// with string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the context key under which the id of the current
// facade call is stored. The HTTP client forwards it as X-Request-ID.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, requestID)
}

// GetRequestIDFromContext returns the request id stored in ctx.
// ok is false when none is set or the stored value is not a string.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDCtxKey).(string)
	return requestID, ok
}

// NewRequestID returns a time-ordered UUIDv7, falling back to a random v4.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the session facade of the CMS client: login
// (with the optional one-time passcode round), signup, logout, restoring a
// remembered login, and forwarding API calls, optionally scoped to a space.
package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-cms-cli/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService is the contract the command-line front-end depends on.
// [Session] is the implementation.
type SessionService interface {
	// SetSpaceID scopes all following request paths under spaces/{id}/.
	// An empty id removes the scoping.
	SetSpaceID(id string)

	// Path returns path prefixed with spaces/{id}/ when a space is set.
	Path(path string) string

	// Login authenticates email/password, asking for a one-time passcode if
	// the API requires one, remembers the token and returns the final raw
	// login payload.
	Login(ctx context.Context, email, password string) (json.RawMessage, error)

	// Signup creates an account and remembers its token.
	Signup(ctx context.Context, email, password string) error

	// Logout forgets the remembered token, both on disk and in memory.
	Logout(ctx context.Context) error

	// IsAuthorized loads a remembered token into the session and reports
	// whether one was found.
	IsAuthorized(ctx context.Context) (bool, error)

	// GetComponents returns the components of the current space, or an
	// empty slice when the payload has none.
	GetComponents(ctx context.Context) ([]models.Component, error)

	// Get, Post, Put and Delete forward to the API with the session token.
	Get(ctx context.Context, path string) (models.Response, error)
	Post(ctx context.Context, path string, body any) (models.Response, error)
	Put(ctx context.Context, path string, body any) (models.Response, error)
	Delete(ctx context.Context, path string) (models.Response, error)
}

// Prompter collects answers from the user. Implementations own the
// re-asking loop driven by [models.Question] Validate.
type Prompter interface {
	Ask(ctx context.Context, q models.Question) (string, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists remembered logins on the client device.
//
// Credentials live in a local SQLite database, one row per API host, in the
// spirit of a netrc machine entry. The schema is owned by the migrations
// package and applied on open.
package store

import (
	"context"

	"github.com/MKhiriev/go-cms-cli/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialStore keeps the login of a single API host.
type CredentialStore interface {
	// Get returns the remembered credential, or [ErrCredentialNotFound] when
	// nobody is logged in.
	Get(ctx context.Context) (models.Credential, error)

	// Set remembers token for email, replacing any previous login.
	Set(ctx context.Context, email, token string) error

	// Clear forgets the remembered login. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrCredentialNotFound is returned by [CredentialStore.Get] when no login is
// remembered for the host.
var ErrCredentialNotFound = errors.New("credential not found")

// Low-level database operation errors, wrapped together with the driver error.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails in the database.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan credential row")
)

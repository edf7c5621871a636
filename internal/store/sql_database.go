// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-cms-cli/internal/logger"
	"github.com/MKhiriev/go-cms-cli/migrations"
)

// DB wraps the SQL connection shared by the repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cms-cli/internal/config"
	"github.com/MKhiriev/go-cms-cli/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// Credentials remembers the login for the configured API host.
	Credentials CredentialStore

	db *DB
}

// NewClientStorages opens the SQLite database named by cfg.CredentialsDSN,
// runs pending migrations and wires the repositories for host.
func NewClientStorages(ctx context.Context, cfg config.Storage, host string, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.CredentialsDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Credentials: NewCredentialRepository(db, host, logger),
		db:          db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-cms-cli/internal/logger"
)

// NewConnectSQLite opens the SQLite database at dsn, creating the file and
// its directory (mode 0700, credentials are secrets) when missing.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{DB: conn, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); !os.IsNotExist(err) {
		return nil
	}

	if dir := filepath.Dir(dbFile); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("error creating DB dir: %w", err)
		}
	}

	f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}
	return f.Close()
}

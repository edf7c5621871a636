// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cms-cli/internal/config"
	"github.com/MKhiriev/go-cms-cli/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewClientStorages_RoundTrip runs the credential store against a real
// SQLite file, including the embedded migrations.
func TestNewClientStorages_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "credentials.db")

	storages, err := NewClientStorages(ctx, config.Storage{CredentialsDSN: dsn}, "api.example.com", logger.Nop())
	if err != nil && strings.Contains(err.Error(), "cgo") {
		t.Skip("go-sqlite3 requires cgo")
	}
	require.NoError(t, err)
	defer storages.Close()

	creds := storages.Credentials

	_, err = creds.Get(ctx)
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	require.NoError(t, creds.Set(ctx, "alice@example.com", "first"))
	require.NoError(t, creds.Set(ctx, "bob@example.com", "second"))

	cred, err := creds.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", cred.Email)
	assert.Equal(t, "second", cred.Token)

	require.NoError(t, creds.Clear(ctx))
	require.NoError(t, creds.Clear(ctx))

	_, err = creds.Get(ctx)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestNewClientStorages_HostsAreIsolated(t *testing.T) {
	ctx := context.Background()
	cfg := config.Storage{CredentialsDSN: filepath.Join(t.TempDir(), "credentials.db")}

	first, err := NewClientStorages(ctx, cfg, "eu.example.com", logger.Nop())
	if err != nil && strings.Contains(err.Error(), "cgo") {
		t.Skip("go-sqlite3 requires cgo")
	}
	require.NoError(t, err)
	defer first.Close()

	second, err := NewClientStorages(ctx, cfg, "us.example.com", logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	require.NoError(t, first.Credentials.Set(ctx, "alice@example.com", "T"))

	_, err = second.Credentials.Get(ctx)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cms-cli/internal/logger"
	"github.com/MKhiriev/go-cms-cli/models"
)

type credentialRepository struct {
	db     *DB
	host   string
	now    func() time.Time
	logger *logger.Logger
}

// NewCredentialRepository returns a [CredentialStore] bound to host.
func NewCredentialRepository(db *DB, host string, logger *logger.Logger) CredentialStore {
	return &credentialRepository{
		db:     db,
		host:   host,
		now:    time.Now,
		logger: logger,
	}
}

func (r *credentialRepository) Get(ctx context.Context) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCredentialQuery(r.host)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var cred models.Credential
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&cred.Host, &cred.Email, &cred.Token, &cred.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrCredentialNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Get").
			Str("host", r.host).
			Msg("failed to read credential")
		return models.Credential{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return cred, nil
}

func (r *credentialRepository) Set(ctx context.Context, email, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertCredentialQuery(r.host, email, token, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Set").
			Str("host", r.host).
			Str("email", email).
			Msg("failed to upsert credential")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	log.Debug().Str("host", r.host).Str("email", email).Msg("credential saved")
	return nil
}

func (r *credentialRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCredentialQuery(r.host)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Clear").
			Str("host", r.host).
			Msg("failed to delete credential")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	log.Debug().Str("host", r.host).Msg("credential cleared")
	return nil
}

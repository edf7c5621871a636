// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const credentialsTable = "credentials"

func buildGetCredentialQuery(host string) (string, []any, error) {
	return sq.Select("host", "email", "token", "updated_at").
		From(credentialsTable).
		Where(sq.Eq{"host": host}).
		ToSql()
}

func buildUpsertCredentialQuery(host, email, token string, at time.Time) (string, []any, error) {
	return sq.Insert(credentialsTable).
		Columns("host", "email", "token", "updated_at").
		Values(host, email, token, at).
		Suffix("ON CONFLICT(host) DO UPDATE SET email = excluded.email, token = excluded.token, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteCredentialQuery(host string) (string, []any, error) {
	return sq.Delete(credentialsTable).
		Where(sq.Eq{"host": host}).
		ToSql()
}

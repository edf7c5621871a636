// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGetCredentialQuery(t *testing.T) {
	query, args, err := buildGetCredentialQuery("h")

	require.NoError(t, err)
	assert.Equal(t, selectSQL, query)
	assert.Equal(t, []any{"h"}, args)
}

func TestBuildUpsertCredentialQuery(t *testing.T) {
	query, args, err := buildUpsertCredentialQuery("h", "e", "t", fixedNow)

	require.NoError(t, err)
	assert.Equal(t, upsertSQL, query)
	assert.Equal(t, []any{"h", "e", "t", fixedNow}, args)
}

func TestBuildDeleteCredentialQuery(t *testing.T) {
	query, args, err := buildDeleteCredentialQuery("h")

	require.NoError(t, err)
	assert.Equal(t, deleteSQL, query)
	assert.Equal(t, []any{"h"}, args)
}

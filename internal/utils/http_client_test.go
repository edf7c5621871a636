// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	c1 := NewHTTPClient(time.Second)
	c2 := NewHTTPClient(time.Second)

	require.NotNil(t, c1.Client)
	assert.NotSame(t, c1.Client, c2.Client)
	assert.Equal(t, time.Second, c1.GetClient().Timeout)
}

func TestNewHTTPClient_ForwardsRequestID(t *testing.T) {
	var gotID, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get(RequestIDHeader)
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ctx := WithRequestID(context.Background(), "req-42")
	_, err := NewHTTPClient(0).R().SetContext(ctx).Get(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "req-42", gotID)
	assert.Equal(t, "application/json", gotAccept)
}

func TestNewHTTPClient_NoRequestIDWithoutContextValue(t *testing.T) {
	var gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get(RequestIDHeader)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(0).R().SetContext(context.Background()).Get(srv.URL)

	require.NoError(t, err)
	assert.Empty(t, gotID)
}

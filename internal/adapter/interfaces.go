// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstractions used to talk to
// the CMS.
//
// [AuthTransport] posts JSON to the absolute login and signup URLs.
// [CMSClient] issues management API calls relative to the configured base URL
// on behalf of one OAuth token; a fresh one is obtained for every call from a
// [CMSClientFactory].
//
// Non-2xx responses are mapped by mapHTTPError onto the sentinel values in
// errors.go so that callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cms-cli/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthTransport posts JSON bodies to the authentication endpoints.
type AuthTransport interface {
	// Post sends body as JSON to the absolute url and returns the status and
	// raw body of a 2xx answer. Network failures and non-2xx answers are
	// returned as errors.
	Post(ctx context.Context, url string, body any) (models.Response, error)
}

// CMSClient issues management API requests authorised by a single OAuth
// token. Paths are relative to the API base URL.
type CMSClient interface {
	// Get sends a GET request; params are encoded as the query string.
	Get(ctx context.Context, path string, params map[string]string) (models.Response, error)

	// Post sends body as JSON with a POST request.
	Post(ctx context.Context, path string, body any) (models.Response, error)

	// Put sends body as JSON with a PUT request.
	Put(ctx context.Context, path string, body any) (models.Response, error)

	// Delete sends a DELETE request. body is optional and sent as JSON when
	// non-nil.
	Delete(ctx context.Context, path string, body any) (models.Response, error)
}

// CMSClientFactory builds a [CMSClient] bound to oauthToken. An empty token
// yields a client that sends no Authorization header.
type CMSClientFactory func(oauthToken string) CMSClient

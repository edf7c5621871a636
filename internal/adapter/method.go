// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-cms-cli/models"
)

// Method enumerates the HTTP verbs the facade forwards.
type Method int

const (
	MethodGet Method = iota
	MethodPost
	MethodPut
	MethodDelete
)

// String returns the HTTP method name.
func (m Method) String() string {
	switch m {
	case MethodGet:
		return http.MethodGet
	case MethodPost:
		return http.MethodPost
	case MethodPut:
		return http.MethodPut
	case MethodDelete:
		return http.MethodDelete
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Do calls the verb method of client matching m. For MethodGet a
// map[string]string body is used as query parameters; any other body is
// ignored.
func Do(ctx context.Context, client CMSClient, m Method, path string, body any) (models.Response, error) {
	switch m {
	case MethodGet:
		params, _ := body.(map[string]string)
		return client.Get(ctx, path, params)
	case MethodPost:
		return client.Post(ctx, path, body)
	case MethodPut:
		return client.Put(ctx, path, body)
	case MethodDelete:
		return client.Delete(ctx, path, body)
	default:
		return models.Response{}, fmt.Errorf("unsupported method %s", m)
	}
}

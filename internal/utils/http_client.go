// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the id of the facade call that issued a request.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client so all
// of its methods are available directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that speaks JSON and copies the
// request id found in each request's context into the X-Request-ID header.
//
// A zero timeout leaves resty's default (no timeout) in place.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if requestID, ok := GetRequestIDFromContext(req.Context()); ok && requestID != "" {
				req.SetHeader(RequestIDHeader, requestID)
			}
			return nil
		})

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

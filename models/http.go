// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Response is a successful (2xx) answer from the CMS or its auth endpoints.
// Data holds the raw JSON body exactly as the server sent it.
type Response struct {
	// Status is the HTTP status code.
	Status int `json:"status"`

	// Data is the undecoded response body. It may be empty (e.g. 204).
	Data json.RawMessage `json:"data"`
}

// Component is a single entry of the "components" array returned by the
// CMS components endpoint. Its schema belongs to the CMS, so it is kept as
// a generic JSON object.
type Component map[string]any

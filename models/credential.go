// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credential is the login remembered for one API host.
// The token is an opaque OAuth token issued by the CMS on login or signup.
type Credential struct {
	// Host is the API host the credential belongs to (e.g. "api.storyblok.com").
	Host string `json:"host"`

	// Email is the account the token was issued for.
	Email string `json:"email"`

	// Token is the OAuth access token. Empty means the user is logged out.
	Token string `json:"token"`

	// UpdatedAt is the time of the last login that wrote this record.
	UpdatedAt time.Time `json:"updated_at"`
}

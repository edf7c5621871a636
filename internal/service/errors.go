// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNoAccessToken is returned when a successful login or signup payload
	// carries no access_token. Nothing is remembered in that case.
	ErrNoAccessToken = errors.New("response has no access token")

	// ErrPromptUnavailable is returned when the API asks for a one-time
	// passcode but the session was built without a [Prompter].
	ErrPromptUnavailable = errors.New("one-time passcode required but no prompter configured")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Question is a single line of interactive input.
type Question struct {
	// Name identifies the answer (e.g. "otp_attempt").
	Name string

	// Message is shown to the user.
	Message string

	// Secret masks the typed characters.
	Secret bool

	// Validate rejects an answer by returning an error whose text is shown
	// to the user. The question is asked again until Validate returns nil.
	// A nil Validate accepts anything.
	Validate func(answer string) error
}

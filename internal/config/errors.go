// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAPIConfigs indicates a missing or non-http(s) endpoint URL,
	// or a negative request timeout.
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidStorageConfigs indicates an empty credential store DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"

	"github.com/MKhiriev/go-cms-cli/internal/config"
	"github.com/MKhiriev/go-cms-cli/internal/logger"
	"github.com/MKhiriev/go-cms-cli/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run parses args (including the program name) and executes the selected
	// command.
	Run(ctx context.Context, args []string) error
}

// SessionBuilder constructs the session facade for a loaded configuration.
// The returned closer releases whatever the session holds open.
type SessionBuilder func(
	ctx context.Context,
	cfg *config.StructuredConfig,
	prompter service.Prompter,
	logger *logger.Logger,
) (service.SessionService, io.Closer, error)

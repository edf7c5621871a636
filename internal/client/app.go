// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-cms-cli/internal/adapter"
	"github.com/MKhiriev/go-cms-cli/internal/config"
	"github.com/MKhiriev/go-cms-cli/internal/logger"
	"github.com/MKhiriev/go-cms-cli/internal/service"
	"github.com/MKhiriev/go-cms-cli/internal/store"
	"github.com/MKhiriev/go-cms-cli/internal/tui"
	"github.com/MKhiriev/go-cms-cli/models"
	"github.com/urfave/cli/v2"
)

const appName = "cms"

// App is the cms command-line application.
type App struct {
	buildInfo models.AppBuildInfo

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	newSession SessionBuilder
	prompter   service.Prompter
	logger     *logger.Logger

	session service.SessionService
	closer  io.Closer
}

var _ Client = (*App)(nil)

// Option customises an [App].
type Option func(*App)

// WithIO replaces stdin, stdout and stderr.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.in, a.out, a.errOut = in, out, errOut
	}
}

// WithSessionBuilder replaces the default wiring of the session facade.
func WithSessionBuilder(b SessionBuilder) Option {
	return func(a *App) {
		a.newSession = b
	}
}

// WithPrompter replaces the terminal prompter.
func WithPrompter(p service.Prompter) Option {
	return func(a *App) {
		a.prompter = p
	}
}

// WithLogger replaces the file logger built from the configuration.
func WithLogger(l *logger.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// NewApp returns an App wired to the real terminal, HTTP and SQLite
// implementations unless overridden by opts.
func NewApp(buildInfo models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		buildInfo:  buildInfo,
		in:         os.Stdin,
		out:        os.Stdout,
		errOut:     os.Stderr,
		newSession: NewSessionFromConfig,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	return a.cliApp().RunContext(ctx, args)
}

func (a *App) cliApp() *cli.App {
	return &cli.App{
		Name:      appName,
		Usage:     "log in to the CMS management API and send requests on your behalf",
		Version:   a.buildInfo.String(),
		Flags:     globalFlags(),
		Commands:  a.commands(),
		Before:    a.before,
		After:     a.after,
		Reader:    a.in,
		Writer:    a.out,
		ErrWriter: a.errOut,
		// exit codes are decided by the caller of Run
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// before loads the configuration and builds the session facade.
func (a *App) before(c *cli.Context) error {
	cfg, err := config.GetClientConfig(overridesFromFlags(c))
	if err != nil {
		return err
	}

	if a.logger == nil {
		a.logger = logger.NewClientLogger(appName, cfg.Log.Path)
	}
	if a.prompter == nil {
		a.prompter = tui.NewPrompter(a.in, a.errOut)
	}

	session, closer, err := a.newSession(c.Context, cfg, a.prompter, a.logger)
	if err != nil {
		return err
	}
	session.SetSpaceID(cfg.Session.SpaceID)

	a.session, a.closer = session, closer
	a.logger.Debug().
		Str("api", cfg.API.BaseURL).
		Str("space", cfg.Session.SpaceID).
		Msg("session ready")

	return nil
}

func (a *App) after(*cli.Context) error {
	if a.closer == nil {
		return nil
	}

	err := a.closer.Close()
	a.closer = nil
	return err
}

// NewSessionFromConfig is the default [SessionBuilder]: a SQLite credential
// store keyed by the API host, resty-based transports and the terminal
// prompter.
func NewSessionFromConfig(
	ctx context.Context,
	cfg *config.StructuredConfig,
	prompter service.Prompter,
	log *logger.Logger,
) (service.SessionService, io.Closer, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, cfg.APIHost(), log)
	if err != nil {
		return nil, nil, fmt.Errorf("open credential store: %w", err)
	}

	newClient, err := adapter.NewCMSClientFactory(cfg.API, log)
	if err != nil {
		_ = storages.Close()
		return nil, nil, fmt.Errorf("create API client: %w", err)
	}

	transport := adapter.NewHTTPAuthTransport(cfg.API, log)
	session := service.NewSession(cfg.API, transport, newClient, storages.Credentials, prompter, log)

	return session, storages, nil
}

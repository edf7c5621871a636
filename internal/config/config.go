// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// EnvPrefix is prepended to every environment variable the client reads.
const EnvPrefix = "CMS_"

// Default endpoints of the hosted CMS management API.
const (
	DefaultLoginURL  = "https://api.storyblok.com/v1/users/login"
	DefaultSignupURL = "https://api.storyblok.com/v1/users/signup"
	DefaultBaseURL   = "https://api.storyblok.com/v1/"

	DefaultRequestTimeout = 30 * time.Second
)

// StructuredConfig is the top-level configuration container.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env), on top
//     of [EnvPrefix].
//   - env: variable name for scalar fields.
type StructuredConfig struct {
	// API holds the remote endpoints and the per-request timeout.
	API API `envPrefix:"API_"`

	// Storage holds the credential store location.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds the initial session scoping.
	Session Session `envPrefix:"SESSION_"`

	// Log holds the client log file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CMS_CONFIG
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded into the process environment before
	// variables are parsed. Missing files are ignored.
	// Env: CMS_DOTENV
	DotEnvPath string `env:"DOTENV"`
}

// API holds the endpoints of the CMS.
type API struct {
	// LoginURL receives email/password (and the OTP code on the second round).
	// Env: CMS_API_LOGIN_URL
	LoginURL string `env:"LOGIN_URL"`

	// SignupURL receives email/password for new accounts.
	// Env: CMS_API_SIGNUP_URL
	SignupURL string `env:"SIGNUP_URL"`

	// BaseURL is the root of the management API all request paths are
	// relative to.
	// Env: CMS_API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: CMS_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds the location of the credential store.
type Storage struct {
	// CredentialsDSN is the SQLite file holding remembered logins.
	// Env: CMS_STORAGE_CREDENTIALS_DSN
	CredentialsDSN string `env:"CREDENTIALS_DSN"`
}

// Session holds the initial session state.
type Session struct {
	// SpaceID scopes every API path under spaces/{SpaceID}/ when set.
	// Env: CMS_SESSION_SPACE_ID
	SpaceID string `env:"SPACE_ID"`
}

// Log holds the client log file settings.
type Log struct {
	// Path is the file client logs are appended to.
	// Env: CMS_LOG_PATH
	Path string `env:"PATH"`
}

// APIHost returns the host part of API.BaseURL. Remembered credentials are
// keyed by it.
func (cfg *StructuredConfig) APIHost() string {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// defaultConfig returns the lowest-priority source.
func defaultConfig() *StructuredConfig {
	cfg := &StructuredConfig{
		API: API{
			LoginURL:       DefaultLoginURL,
			SignupURL:      DefaultSignupURL,
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		DotEnvPath: ".env",
	}

	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".cms-cli")
		cfg.Storage.CredentialsDSN = filepath.Join(dir, "credentials.db")
		cfg.Log.Path = filepath.Join(dir, "client.log")
	}

	return cfg
}

// GetClientConfig loads, merges, and validates the configuration.
//
// overrides may be nil; its non-zero fields win over every other source.
func GetClientConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(overrides).
		withEnv().
		withJSON(overrides).
		withOverrides(overrides).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, nil
}

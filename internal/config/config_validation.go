// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the merged configuration before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	for name, raw := range map[string]string{
		"login url":  cfg.API.LoginURL,
		"signup url": cfg.API.SignupURL,
		"base url":   cfg.API.BaseURL,
	} {
		if err := validateHTTPURL(raw); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidAPIConfigs, name, err)
		}
	}

	if cfg.API.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAPIConfigs)
	}

	if cfg.Storage.CredentialsDSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func validateHTTPURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}

	return nil
}

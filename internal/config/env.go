// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from CMS_-prefixed environment variables using the
// `env` and `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected sources in order; later non-zero fields win.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// withDotEnv loads a .env file into the process environment. Variables that
// are already set are left untouched.
func (b *configBuilder) withDotEnv(overrides *StructuredConfig) *configBuilder {
	path := b.lookup(func(c *StructuredConfig) string { return c.DotEnvPath }, nil)
	if v := os.Getenv(EnvPrefix + "DOTENV"); v != "" {
		path = v
	}
	if overrides != nil && overrides.DotEnvPath != "" {
		path = overrides.DotEnvPath
	}
	if path == "" {
		return b
	}

	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", path, err))
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withJSON(overrides *StructuredConfig) *configBuilder {
	jsonPath := b.lookup(func(c *StructuredConfig) string { return c.JSONFilePath }, overrides)
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

func (b *configBuilder) withOverrides(overrides *StructuredConfig) *configBuilder {
	if overrides != nil {
		b.configs = append(b.configs, overrides)
	}
	return b
}

// lookup returns the last non-empty value of field across the collected
// sources and overrides.
func (b *configBuilder) lookup(field func(*StructuredConfig) string, overrides *StructuredConfig) string {
	var value string
	for _, cfg := range b.configs {
		if v := field(cfg); v != "" {
			value = v
		}
	}
	if overrides != nil {
		if v := field(overrides); v != "" {
			value = v
		}
	}
	return value
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	API struct {
		LoginURL       string   `json:"login_url"`
		SignupURL      string   `json:"signup_url"`
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"api,omitempty"`

	Storage struct {
		CredentialsDSN string `json:"credentials_dsn"`
	} `json:"storage,omitempty"`

	Session struct {
		SpaceID string `json:"space_id"`
	} `json:"session,omitempty"`

	Log struct {
		Path string `json:"path"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		API: API{
			LoginURL:       jsonCfg.API.LoginURL,
			SignupURL:      jsonCfg.API.SignupURL,
			BaseURL:        jsonCfg.API.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
		},
		Storage: Storage{CredentialsDSN: jsonCfg.Storage.CredentialsDSN},
		Session: Session{SpaceID: jsonCfg.Session.SpaceID},
		Log:     Log{Path: jsonCfg.Log.Path},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that unmarshals from strings
// like "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation for
// the CMS command-line client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (after an optional .env file has been loaded)
//  3. JSON config file (path from CMS_CONFIG or the --config flag)
//  4. Explicit overrides, normally taken from command-line flags
//
// The entry point is [GetClientConfig].
package config

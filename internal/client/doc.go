// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the cms command-line application.
//
// It loads the configuration, wires the credential store, the HTTP adapters
// and the session facade together, and exposes the facade operations as
// urfave/cli commands. API payloads are printed as indented JSON on stdout;
// prompts and errors go to stderr.
package client

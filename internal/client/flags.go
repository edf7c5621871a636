// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-cms-cli/internal/config"
	"github.com/urfave/cli/v2"
)

const (
	flagSpace       = "space"
	flagConfig      = "config"
	flagAPIURL      = "api-url"
	flagCredentials = "credentials"
	flagLogFile     = "log-file"

	flagEmail    = "email"
	flagPassword = "password"
	flagData     = "data"
)

// globalFlags returns the flags accepted before any command. Values given
// here win over the JSON file, environment and defaults.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagSpace,
			Aliases: []string{"s"},
			Usage:   "space id; request paths are scoped under spaces/{id}/",
		},
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "path to a JSON configuration file",
		},
		&cli.StringFlag{
			Name:  flagAPIURL,
			Usage: "management API base URL (e.g. https://api.storyblok.com/v1/)",
		},
		&cli.StringFlag{
			Name:  flagCredentials,
			Usage: "SQLite file holding remembered logins",
		},
		&cli.StringFlag{
			Name:  flagLogFile,
			Usage: "file client logs are appended to",
		},
	}
}

func authFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagEmail,
			Aliases: []string{"e"},
			Usage:   "account email; asked interactively when omitted",
		},
		&cli.StringFlag{
			Name:    flagPassword,
			Aliases: []string{"p"},
			Usage:   "account password; asked interactively when omitted",
		},
	}
}

func dataFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     flagData,
		Aliases:  []string{"d"},
		Usage:    "JSON request body",
		Required: true,
	}
}

// overridesFromFlags maps the global flags onto the highest-priority
// configuration source.
func overridesFromFlags(c *cli.Context) *config.StructuredConfig {
	return &config.StructuredConfig{
		API: config.API{
			BaseURL: c.String(flagAPIURL),
		},
		Storage: config.Storage{
			CredentialsDSN: c.String(flagCredentials),
		},
		Session: config.Session{
			SpaceID: c.String(flagSpace),
		},
		Log: config.Log{
			Path: c.String(flagLogFile),
		},
		JSONFilePath: c.String(flagConfig),
	}
}

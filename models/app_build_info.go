// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries build metadata injected by linker flags.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo fills unset values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}

	return AppBuildInfo{Version: orNA(version), Date: orNA(date), Commit: orNA(commit)}
}

// String renders the build info the way `--version` prints it.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", a.Version, a.Commit, a.Date)
}

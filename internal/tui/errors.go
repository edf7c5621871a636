// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrPromptAborted is returned by [Prompter.Ask] when the user leaves the
// prompt with esc or ctrl+c.
var ErrPromptAborted = errors.New("prompt aborted")

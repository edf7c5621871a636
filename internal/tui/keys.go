// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit key.Binding
	abort  key.Binding
}

var keys = keyMap{
	submit: key.NewBinding(key.WithKeys("enter")),
	abort:  key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}

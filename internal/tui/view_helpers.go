// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

const helpLine = "enter: submit │ esc: cancel"

func renderPrompt(message, input, errMsg string) string {
	var b strings.Builder

	b.WriteString(questionStyle.Render(message))
	b.WriteString("\n> ")
	b.WriteString(input)
	b.WriteString("\n")

	if errMsg != "" {
		b.WriteString(errorStyle.Render(errMsg))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(helpLine))
	b.WriteString("\n")

	return b.String()
}

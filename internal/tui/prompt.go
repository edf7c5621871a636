// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui collects interactive answers in the terminal with Bubble Tea.
//
// A [Prompter] runs one short-lived program per [models.Question]: a single
// text input that is re-asked until the question's validator accepts it.
package tui

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-cms-cli/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Prompter asks questions on a terminal.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading keys from in and drawing on out.
// nil values default to stdin and stderr, leaving stdout to command output.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}

	return &Prompter{in: in, out: out}
}

// Ask shows q and blocks until a valid answer is submitted, the user aborts
// ([ErrPromptAborted]) or ctx is done. The answer is returned trimmed.
func (p *Prompter) Ask(ctx context.Context, q models.Question) (string, error) {
	program := tea.NewProgram(
		newPromptModel(q),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return "", ctxErr
		}
		return "", err
	}

	result, ok := final.(*promptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.aborted {
		return "", ErrPromptAborted
	}

	return strings.TrimSpace(result.answer), nil
}

// promptModel is the Bubble Tea model behind a single question.
type promptModel struct {
	question models.Question
	input    textinput.Model

	errMsg  string
	answer  string
	done    bool
	aborted bool
}

func newPromptModel(q models.Question) *promptModel {
	input := textinput.New()
	input.CharLimit = 256
	input.Width = 40
	if q.Secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	input.Focus()

	return &promptModel{question: q, input: input}
}

// Init implements [tea.Model].
func (m *promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
//   - esc, ctrl+c: abort.
//   - enter: run the validator; on failure show its message and keep asking.
//
// Other messages go to the text input.
func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.abort):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.submit):
			value := m.input.Value()
			if m.question.Validate != nil {
				if err := m.question.Validate(value); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}

			m.errMsg = ""
			m.answer = value
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Nothing is drawn once the prompt finished.
func (m *promptModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	return renderPrompt(m.question.Message, m.input.View(), m.errMsg)
}

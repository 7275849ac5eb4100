// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/fin-tracker-client/internal/guard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// e-mail and password inputs and dispatches an async login command on
// submission.
//
// A successful login produces no navigation of its own: the session authority
// publishes the new snapshot and [RootModel] lets the route guard pick the
// next screen.
type LoginModel struct {
	ctx  context.Context
	auth SessionAuthority

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with the e-mail input focused.
func NewLoginModel(ctx context.Context, auth SessionAuthority) *LoginModel {
	email := newInput("email", 254, false)
	email.Focus()

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{email, newInput("password", 256, true)},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - loginResultMsg - clears the submitting state; on error populates errMsg.
//   - ctrl+r - opens the registration screen.
//   - tab / shift+tab - moves focus between inputs.
//   - enter - checks that both fields are filled and dispatches the login.
//
// All other key events are forwarded to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		resetInputs(m.inputs)
		m.focus = 0
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.register):
			m.errMsg = ""
			return m, navigate(guard.ScreenRegister)
		case key.Matches(msg, keys.tab):
			m.focus = focusInputs(m.inputs, m.focus, 1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focus = focusInputs(m.inputs, m.focus, -1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if email == "" || pass == "" {
				m.errMsg = "Пожалуйста, заполните все поля."
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(renderForm([]string{"Email", "Пароль"}, m.inputs))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Входим...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}
	writeFeedback(&b, "", m.errMsg)

	return renderPage("ВХОД В FIN-TRACKER", strings.TrimRight(b.String(), "\n"),
		"tab: след. поле │ enter: войти │ ctrl+r: регистрация")
}

func (m *LoginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		complete, err := auth.Login(ctx, email, pass)
		return loginResultMsg{profileComplete: complete, err: err}
	}
}

func navigate(screen guard.Screen) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Screen: screen} }
}

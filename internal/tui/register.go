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

// RegisterModel is the Bubble Tea model for the registration screen: e-mail,
// username, password and its confirmation.
type RegisterModel struct {
	ctx  context.Context
	auth SessionAuthority

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with the e-mail input focused.
func NewRegisterModel(ctx context.Context, auth SessionAuthority) *RegisterModel {
	fields := []textinput.Model{
		newInput("email", 254, false),
		newInput("username", 100, false),
		newInput("password", 256, true),
		newInput("repeat password", 256, true),
	}
	fields[0].Focus()

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - registerResultMsg - clears the submitting state; on error populates
//     errMsg, on success resets the form.
//   - esc - back to the login screen.
//   - tab / shift+tab - moves focus between inputs.
//   - enter - checks the form and dispatches the registration.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
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
		case key.Matches(msg, keys.esc):
			m.errMsg = ""
			return m, navigate(guard.ScreenLogin)
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
			username := strings.TrimSpace(m.inputs[1].Value())
			pass := m.inputs[2].Value()
			repeat := m.inputs[3].Value()

			if email == "" || username == "" || pass == "" {
				m.errMsg = "Пожалуйста, заполните все поля."
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(email, username, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(renderForm([]string{"Email", "Имя пользователя", "Пароль", "Повтор пароля"}, m.inputs))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Регистрируем...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}
	writeFeedback(&b, "", m.errMsg)

	return renderPage("СОЗДАТЬ АККАУНТ", strings.TrimRight(b.String(), "\n"),
		"esc: ко входу │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdRegister(email, username, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		err := auth.Register(ctx, email, username, pass)
		return registerResultMsg{username: username, err: err}
	}
}

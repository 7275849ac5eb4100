// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/fin-tracker-client/internal/guard"
	"github.com/MKhiriev/fin-tracker-client/internal/service"
	"github.com/MKhiriev/fin-tracker-client/internal/session"
	"github.com/MKhiriev/fin-tracker-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// ProfileModel shows the signed-in account and the application version.
type ProfileModel struct {
	ctx     context.Context
	appInfo service.AppInfoService

	user   *models.User
	status string
	errMsg string

	writeClipboard func(string) error
}

// NewProfileModel creates a [ProfileModel].
func NewProfileModel(ctx context.Context, appInfo service.AppInfoService) *ProfileModel {
	return &ProfileModel{
		ctx:            ctx,
		appInfo:        appInfo,
		writeClipboard: clipboard.WriteAll,
	}
}

// SetSession refreshes the shown account.
func (m *ProfileModel) SetSession(s session.Session) {
	m.user = s.CurrentUser
}

func (m *ProfileModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	return nil
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		m.status = "ID скопирован"
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(guard.ScreenDashboard)
		case key.Matches(msg, keys.logout):
			return m, requestLogout
		case key.Matches(msg, keys.copyID):
			if m.user == nil || m.user.ID == "" {
				m.errMsg = "Нечего копировать"
				return m, nil
			}
			if err := m.writeClipboard(m.user.ID); err != nil {
				m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
				return m, nil
			}
			m.errMsg = ""
			return m, func() tea.Msg { return copiedMsg{} }
		}
	}

	return m, nil
}

func (m *ProfileModel) View() string {
	var user models.User
	if m.user != nil {
		user = *m.user
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("ID               │ %s\n", valueOrDash(user.ID)))
	b.WriteString(fmt.Sprintf("Email            │ %s\n", valueOrDash(user.Email)))
	b.WriteString(fmt.Sprintf("Имя пользователя │ %s\n", valueOrDash(user.Username)))
	b.WriteString(fmt.Sprintf("Дата регистрации │ %s\n", valueOrDash(formatCreatedAt(user.CreatedAt))))
	b.WriteString(fmt.Sprintf("Версия           │ %s\n", valueOrNA(m.appInfo.GetAppVersion(m.ctx))))
	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("ПРОФИЛЬ", strings.TrimRight(b.String(), "\n"),
		"esc: назад │ c: копировать ID │ l: выйти")
}

// formatCreatedAt renders the server's ISO-8601 timestamp as a date. Values
// that do not parse are shown as is.
func formatCreatedAt(v string) string {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("02.01.2006")
		}
	}
	return v
}

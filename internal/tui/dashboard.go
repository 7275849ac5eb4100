// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/fin-tracker-client/internal/guard"
	"github.com/MKhiriev/fin-tracker-client/internal/session"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardItem struct {
	title string
	cmd   tea.Cmd
}

// DashboardModel is the landing screen of a user with a complete profile.
type DashboardModel struct {
	username string
	items    []dashboardItem
	idx      int
}

// NewDashboardModel creates a [DashboardModel].
func NewDashboardModel() *DashboardModel {
	return &DashboardModel{
		items: []dashboardItem{
			{title: "Профиль", cmd: navigate(guard.ScreenProfile)},
			{title: "Выйти из аккаунта", cmd: requestLogout},
			{title: "Закрыть программу", cmd: tea.Quit},
		},
	}
}

// SetSession refreshes the greeting.
func (m *DashboardModel) SetSession(s session.Session) {
	m.username = ""
	if s.CurrentUser != nil {
		m.username = s.CurrentUser.Username
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.idx = 0
	return nil
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, m.items[m.idx].cmd
	case key.Matches(keyMsg, keys.profile):
		return m, navigate(guard.ScreenProfile)
	case key.Matches(keyMsg, keys.logout):
		return m, requestLogout
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString("Добро пожаловать, ")
	b.WriteString(valueOrDash(m.username))
	b.WriteString("!\n\n")

	actionColWidth := lipgloss.Width("Действие")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-4s │ %-*s\n", "ID", actionColWidth, "Действие"))
	b.WriteString(strings.Repeat("─", 4))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%-4s │ %-*s\n", fmt.Sprintf("%s %d", cursor, i+1), actionColWidth, item.title))
	}

	return renderPage("ГЛАВНАЯ", strings.TrimRight(b.String(), "\n"),
		"enter: выбрать │ ↑/↓: навигация │ p: профиль │ l: выйти │ v: версия")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadingModel is shown while navigation is deferred until the session
// settles.
type LoadingModel struct {
	spinner spinner.Model
}

// NewLoadingModel returns a [LoadingModel] with a MiniDot spinner.
func NewLoadingModel() *LoadingModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &LoadingModel{spinner: s}
}

func (m *LoadingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *LoadingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m *LoadingModel) View() string {
	return renderPage("FIN-TRACKER", m.spinner.View()+" Загрузка сессии...", "")
}

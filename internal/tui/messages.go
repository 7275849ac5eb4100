// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/fin-tracker-client/internal/guard"
	"github.com/MKhiriev/fin-tracker-client/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to open Screen. The request goes through the
// route guard, so the screen actually shown may differ.
type NavigateTo struct {
	Screen guard.Screen
}

// sessionChangedMsg carries a snapshot published by the session authority.
type sessionChangedMsg struct {
	session session.Session
}

// subscriptionClosedMsg is produced once the session stream is closed.
type subscriptionClosedMsg struct{}

type bootstrapDoneMsg struct {
	err error
}

type loginResultMsg struct {
	profileComplete bool
	err             error
}

type registerResultMsg struct {
	username string
	err      error
}

// logoutRequestMsg asks [RootModel] to confirm and perform a logout.
type logoutRequestMsg struct{}

func requestLogout() tea.Msg { return logoutRequestMsg{} }

type logoutDoneMsg struct {
	err error
}

type onboardingSubmittedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

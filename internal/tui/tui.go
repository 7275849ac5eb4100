// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the fin-tracker client. Every
// screen is reached through the route guard: [RootModel] follows the session
// authority's snapshot stream and re-evaluates the current screen whenever
// the session changes.
package tui

import (
	"context"

	"github.com/MKhiriev/fin-tracker-client/internal/guard"
	"github.com/MKhiriev/fin-tracker-client/internal/logger"
	"github.com/MKhiriev/fin-tracker-client/internal/service"
	"github.com/MKhiriev/fin-tracker-client/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// SessionAuthority is the part of [session.Authority] the UI drives.
type SessionAuthority interface {
	Snapshot() session.Session
	Subscribe() (<-chan session.Session, func())
	Bootstrap(ctx context.Context) (session.Session, error)
	Login(ctx context.Context, email, password string) (bool, error)
	Register(ctx context.Context, email, username, password string) error
	Logout(ctx context.Context) error
}

type TUI struct {
	auth     SessionAuthority
	services *service.ClientServices
	logger   *logger.Logger
}

func New(auth SessionAuthority, services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	return &TUI{auth: auth, services: services, logger: logger}, nil
}

// Run shows the UI until the user quits. The session is bootstrapped by the
// UI itself so that the loading screen is visible meanwhile.
func (t *TUI) Run(ctx context.Context) error {
	updates, unsubscribe := t.auth.Subscribe()
	defer unsubscribe()

	pages := map[guard.Screen]tea.Model{
		guard.ScreenLogin:      NewLoginModel(ctx, t.auth),
		guard.ScreenRegister:   NewRegisterModel(ctx, t.auth),
		guard.ScreenOnboarding: NewOnboardingModel(ctx, t.services.OnboardingService),
		guard.ScreenDashboard:  NewDashboardModel(),
		guard.ScreenProfile:    NewProfileModel(ctx, t.services.AppInfoService),
	}

	root := NewRootModel(ctx, t.auth, t.services.AppInfoService, pages, updates, t.logger)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

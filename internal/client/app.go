// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fin-tracker-client/internal/logger"
	"github.com/MKhiriev/fin-tracker-client/internal/tui"
)

// App runs the UI and releases resources when it ends.
type App struct {
	ui        UI
	resources []Resource

	logger *logger.Logger
}

// NewApp returns an [App] running ui. resources are closed in reverse order
// once ui returns.
func NewApp(ui UI, logger *logger.Logger, resources ...Resource) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: nil ui")
	}
	return &App{ui: ui, resources: resources, logger: logger}, nil
}

// Run blocks until the user quits or a stop signal arrives. Quitting with
// ctrl+c is a normal exit.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	defer a.release()

	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped by user")
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Msg("client stopped by signal")
		return nil
	}

	return fmt.Errorf("run ui: %w", err)
}

func (a *App) release() {
	for i := len(a.resources) - 1; i >= 0; i-- {
		if err := a.resources[i].Close(); err != nil {
			a.logger.Err(err).Str("func", "App.release").Msg("failed to release resource")
		}
	}
}

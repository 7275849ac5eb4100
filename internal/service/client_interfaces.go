// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client use cases that sit next to the session
// authority: the onboarding questionnaire and application info.
package service

import (
	"context"

	"github.com/MKhiriev/fin-tracker-client/internal/session"
	"github.com/MKhiriev/fin-tracker-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=client_interfaces_mock_test.go -package=service

// SessionController is the part of [session.Authority] services depend on.
type SessionController interface {
	// State returns the current lifecycle state.
	State() session.State

	// MarkProfileComplete records that onboarding is finished.
	MarkProfileComplete()

	// HandleUnauthorized clears the session after a 401.
	HandleUnauthorized(ctx context.Context)
}

// OnboardingService drives the onboarding questionnaire.
type OnboardingService interface {
	// ValidateStep checks the questionnaire fields of the given steps
	// (validators.FieldPersonal, ...) so a form can refuse to advance.
	ValidateStep(ctx context.Context, profile models.OnboardingProfile, steps ...string) error

	// Submit validates the whole questionnaire, sends it and marks the
	// session's profile complete. It does nothing when the profile is
	// already complete.
	Submit(ctx context.Context, profile models.OnboardingProfile) error
}

// AppInfoService exposes build and version information.
type AppInfoService interface {
	// GetAppVersion returns the version label shown to the user.
	GetAppVersion(ctx context.Context) string

	// BuildInfo returns the linker-injected build metadata.
	BuildInfo() models.AppBuildInfo
}

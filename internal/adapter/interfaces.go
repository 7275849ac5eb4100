// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the finance API.
//
// The primary abstraction is [ServerAdapter], which decouples the session and
// service layers from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). The
// server's "detail" message is available through [Detail].
package adapter

import (
	"context"

	"github.com/MKhiriev/fin-tracker-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the finance API. Implementations
// are responsible for serialisation, the bearer header, fail-closed decoding
// of response bodies and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty token detaches the credential.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none is attached.
	Token() string

	// Login exchanges credentials for a token via POST /auth/login. It does
	// not attach the returned token; that is the caller's decision.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthToken, error)

	// Register creates an account via POST /auth/register and returns the
	// issued token. Like Login, it does not attach the token.
	Register(ctx context.Context, registration models.Registration) (models.AuthToken, error)

	// Me returns the identity bound to the attached token (GET /auth/me).
	// A token bound to ctx with utils.WithBearerToken replaces the attached
	// one for that call, as it does for every authenticated request.
	Me(ctx context.Context) (models.User, error)

	// OnboardingStatus reports whether the authenticated user has completed
	// the onboarding questionnaire (GET /onboarding/status).
	OnboardingStatus(ctx context.Context) (models.OnboardingStatus, error)

	// SubmitOnboarding posts the questionnaire (POST /onboarding/).
	SubmitOnboarding(ctx context.Context, profile models.OnboardingProfile) (models.OnboardingResult, error)
}

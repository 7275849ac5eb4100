// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fin-tracker-client/internal/adapter"
	"github.com/MKhiriev/fin-tracker-client/internal/app"
	"github.com/MKhiriev/fin-tracker-client/internal/logger"
	"github.com/MKhiriev/fin-tracker-client/internal/session"
	"github.com/MKhiriev/fin-tracker-client/internal/validators"
	"github.com/MKhiriev/fin-tracker-client/models"
)

type clientOnboardingService struct {
	adapter   adapter.ServerAdapter
	session   SessionController
	validator validators.Validator

	logger *logger.Logger
}

// NewClientOnboardingService returns the [OnboardingService] backed by the
// finance API.
func NewClientOnboardingService(serverAdapter adapter.ServerAdapter, sessionController SessionController, logger *logger.Logger) OnboardingService {
	return &clientOnboardingService{
		adapter:   serverAdapter,
		session:   sessionController,
		validator: validators.NewOnboardingValidator(),
		logger:    logger,
	}
}

func (s *clientOnboardingService) ValidateStep(ctx context.Context, profile models.OnboardingProfile, steps ...string) error {
	if err := s.validator.Validate(ctx, profile, steps...); err != nil {
		return fmt.Errorf("%w: %w", session.ErrValidationFailed, err)
	}
	return nil
}

func (s *clientOnboardingService) Submit(ctx context.Context, profile models.OnboardingProfile) error {
	switch s.session.State() {
	case session.AuthenticatedComplete:
		return nil
	case session.AuthenticatedIncomplete:
	default:
		return ErrNotSignedIn
	}

	if err := s.ValidateStep(ctx, profile); err != nil {
		return err
	}

	result, err := s.adapter.SubmitOnboarding(ctx, profile)
	if err != nil {
		return s.handleSubmitError(ctx, err)
	}

	s.logger.Info().
		Str("func", "clientOnboardingService.Submit").
		Str("profile_id", result.ProfileID).
		Msg("onboarding profile saved")

	s.session.MarkProfileComplete()
	return nil
}

func (s *clientOnboardingService) handleSubmitError(ctx context.Context, err error) error {
	log := s.logger.With().Str("func", "clientOnboardingService.Submit").Logger()

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		log.Warn().Err(err).Msg("token rejected while saving onboarding profile")
		s.session.HandleUnauthorized(ctx)
		return fmt.Errorf("%w: %w", session.ErrSessionExpired, err)

	case errors.Is(err, adapter.ErrBadRequest) && adapter.Detail(err) == app.MsgProfileAlreadyExists:
		log.Info().Msg("onboarding profile already exists on server")
		s.session.MarkProfileComplete()
		return nil

	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrUnprocessable):
		return fmt.Errorf("%w: %w", session.ErrValidationFailed, err)

	case errors.Is(err, adapter.ErrNetwork), errors.Is(err, adapter.ErrDecode):
		return fmt.Errorf("%w: %w", session.ErrNetworkUnavailable, err)
	}

	log.Err(err).Msg("failed to save onboarding profile")
	return fmt.Errorf("%w: %w", ErrOnboardingFailed, err)
}

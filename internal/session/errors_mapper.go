// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/fin-tracker-client/internal/adapter"
	"github.com/MKhiriev/fin-tracker-client/internal/app"
	"github.com/MKhiriev/fin-tracker-client/internal/validators"
)

// mapLoginError translates an adapter error of POST /auth/login.
func mapLoginError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, validators.ErrInvalidInput):
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	case errors.Is(err, adapter.ErrBadRequest) && adapter.Detail(err) == app.MsgInactiveUser:
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	case errors.Is(err, adapter.ErrUnprocessable), errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	case isUnreachable(err):
		return fmt.Errorf("%w: %w", ErrNetworkUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrLoginFailed, err)
}

// mapRegisterError translates an adapter error of POST /auth/register.
func mapRegisterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, validators.ErrInvalidInput):
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrAccountExists, err)
	case errors.Is(err, adapter.ErrBadRequest):
		switch adapter.Detail(err) {
		case app.MsgEmailAlreadyRegistered, app.MsgUsernameAlreadyTaken:
			return fmt.Errorf("%w: %w", ErrAccountExists, err)
		}
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	case errors.Is(err, adapter.ErrUnprocessable):
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	case isUnreachable(err):
		return fmt.Errorf("%w: %w", ErrNetworkUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
}

// mapLookupError translates an adapter error of the identity/profile
// lookup made with an established token.
func mapLookupError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	case isUnreachable(err):
		return fmt.Errorf("%w: %w", ErrNetworkUnavailable, err)
	}

	return err
}

func isUnreachable(err error) bool {
	return errors.Is(err, adapter.ErrNetwork) || errors.Is(err, adapter.ErrDecode)
}

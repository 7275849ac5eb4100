// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/fin-tracker-client/models"
)

// Field names accepted by [CredentialsValidator].
const (
	FieldEmail    = "email"
	FieldUsername = "username"
	FieldPassword = "password"
	// FieldPasswordStrength enforces MinPasswordLength on top of FieldPassword.
	FieldPasswordStrength = "password_strength"
)

const (
	// MinPasswordLength is the server's minimum password length.
	MinPasswordLength = 8

	// MaxUsernameLength matches the width of the server's username column.
	MaxUsernameLength = 100
)

// CredentialsValidator validates login and registration forms.
type CredentialsValidator struct{}

// NewCredentialsValidator returns a [Validator] for [models.Credentials] and
// [models.Registration].
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Login forms only need a well-formed e-mail and a non-empty password: a
// short password there is the server's call (it answers "Incorrect email or
// password"). Registration forms additionally need a username and a password
// of at least MinPasswordLength characters.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Registration:
		return v.validateRegistration(ctx, value, fields...)
	case *models.Registration:
		return v.validateRegistration(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(c.Email); err != nil {
				return err
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPasswordStrength:
			if utf8.RuneCountInString(c.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateRegistration(ctx context.Context, r models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldPassword, FieldPasswordStrength}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			username := strings.TrimSpace(r.Username)
			if username == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(username) > MaxUsernameLength {
				return ErrLongUsername
			}
		case FieldEmail, FieldPassword, FieldPasswordStrength:
			c := models.Credentials{Email: r.Email, Password: r.Password}
			if err := v.validateCredentials(ctx, c, f); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail accepts a bare address ("a@b.com"), not a display-name form.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrInvalidEmail
	}

	return nil
}

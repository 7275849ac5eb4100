// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the "detail" messages the finance API writes into its
// error bodies.
//
// The API signals several distinct business failures with the same HTTP
// status (e.g. 400 for both a taken e-mail and a short password), so the
// client tells them apart by the detail text. Keeping the wording in one
// place keeps the session and service layers in step with the server.
package app

const (
	// MsgIncorrectCredentials is returned by POST /auth/login (401) when the
	// e-mail is unknown or the password does not match.
	MsgIncorrectCredentials = "Incorrect email or password"

	// MsgInactiveUser is returned by POST /auth/login (400) for a disabled
	// account.
	MsgInactiveUser = "Inactive user"

	// MsgEmailAlreadyRegistered is returned by POST /auth/register (400).
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgUsernameAlreadyTaken is returned by POST /auth/register (400).
	MsgUsernameAlreadyTaken = "Username already taken"

	// MsgPasswordTooShort is returned by POST /auth/register (400) when the
	// password is shorter than eight characters.
	MsgPasswordTooShort = "Password must be at least 8 characters long"

	// MsgProfileAlreadyExists is returned by POST /onboarding/ (400) when the
	// questionnaire was already submitted.
	MsgProfileAlreadyExists = "Профиль пользователя уже существует"
)

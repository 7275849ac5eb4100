// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

// Errors surfaced to the form that triggered an operation. Match them with
// errors.Is; the wrapped cause carries the server's message where there is
// one.
var (
	// ErrInvalidCredentials means the server rejected the e-mail/password
	// pair.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrAccountExists means the e-mail or username is already registered.
	ErrAccountExists = errors.New("account already exists")

	// ErrValidationFailed means the input was rejected as malformed, either
	// locally or by the server.
	ErrValidationFailed = errors.New("validation failed")

	// ErrSessionExpired means the attached token was rejected. It is handled
	// inside the Authority (the session is cleared) and only escapes from
	// calls made on behalf of an already established session.
	ErrSessionExpired = errors.New("session expired, please sign in again")

	// ErrNetworkUnavailable means no usable response was received: the
	// transport failed or the body could not be decoded.
	ErrNetworkUnavailable = errors.New("server is unavailable")

	// ErrLoginFailed is the generic login failure, used when the token was
	// issued but the identity lookup that follows did not succeed, or the
	// server failed unexpectedly.
	ErrLoginFailed = errors.New("login failed")

	// ErrRegistrationFailed is the generic registration failure for
	// unexpected server responses.
	ErrRegistrationFailed = errors.New("registration failed")

	// ErrBusy is returned by Login and Register until Bootstrap has settled
	// the session, and by Logout while Bootstrap runs.
	ErrBusy = errors.New("session is initializing")
)

// errSuperseded marks a sign-in whose result was dropped because a later
// sign-in or a sign-out happened while it was in flight.
var errSuperseded = errors.New("superseded by a newer sign-in")

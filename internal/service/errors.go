// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNotSignedIn is returned when an operation needs an authenticated
	// session.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrOnboardingFailed is the generic failure of an onboarding submit.
	ErrOnboardingFailed = errors.New("failed to save onboarding profile")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthToken is the response body shared by POST /auth/login and
// POST /auth/register.
type AuthToken struct {
	// AccessToken is the opaque bearer credential. Required.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer" for this API.
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`

	// UserID is the identifier of the account the token was issued for.
	UserID string `json:"user_id"`

	// Username is the display name of the account.
	Username string `json:"username"`
}

// OnboardingStatus is the response body of GET /onboarding/status.
//
// HasProfile is a pointer so that a body without the field is detected and
// rejected instead of silently decoding to false.
type OnboardingStatus struct {
	HasProfile *bool `json:"has_profile"`
}

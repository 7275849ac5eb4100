// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the authentication lifecycle of the fin-tracker
// client.
//
// The [Authority] is the single writer of the session: it acquires tokens
// (login, register), restores a persisted token at start-up (bootstrap),
// resolves the user's identity and onboarding completeness, and clears
// everything on logout or when the server rejects the token. Readers obtain
// immutable [Session] snapshots, either on demand or as a stream via
// [Authority.Subscribe].
//
// The lifecycle is a small state machine:
//
//	Uninitialized ─Bootstrap─▶ Initializing ─┬─▶ Anonymous
//	                                         ├─▶ AuthenticatedIncomplete
//	                                         └─▶ AuthenticatedComplete
//
//	Anonymous ─Login/Register─▶ Authenticated*
//	AuthenticatedIncomplete ─MarkProfileComplete─▶ AuthenticatedComplete
//	Authenticated* ─Logout/HandleUnauthorized─▶ Anonymous
package session

// State is the lifecycle state of a [Session]. It is derived from the
// snapshot's fields and never stored on its own.
type State int

const (
	// Uninitialized is the state before Bootstrap runs.
	Uninitialized State = iota
	// Initializing is the state while Bootstrap restores a persisted token.
	Initializing
	// Anonymous means no user is signed in.
	Anonymous
	// AuthenticatedIncomplete means a user is signed in but has not
	// finished onboarding.
	AuthenticatedIncomplete
	// AuthenticatedComplete means a user is signed in with a complete
	// profile.
	AuthenticatedComplete
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Anonymous:
		return "anonymous"
	case AuthenticatedIncomplete:
		return "authenticated_incomplete"
	case AuthenticatedComplete:
		return "authenticated_complete"
	default:
		return "unknown"
	}
}

// IsAuthenticated reports whether s is one of the two signed-in states.
func (s State) IsAuthenticated() bool {
	return s == AuthenticatedIncomplete || s == AuthenticatedComplete
}

// IsPending reports whether the session is not settled yet
// (Uninitialized or Initializing).
func (s State) IsPending() bool {
	return s == Uninitialized || s == Initializing
}

// ProfileStatus is the tri-state onboarding completeness flag.
type ProfileStatus int

const (
	ProfileUnknown ProfileStatus = iota
	ProfileIncomplete
	ProfileComplete
)

func (p ProfileStatus) String() string {
	switch p {
	case ProfileIncomplete:
		return "incomplete"
	case ProfileComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// profileStatusOf converts the has_profile flag of the API.
func profileStatusOf(hasProfile bool) ProfileStatus {
	if hasProfile {
		return ProfileComplete
	}
	return ProfileIncomplete
}

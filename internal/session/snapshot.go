// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "github.com/MKhiriev/fin-tracker-client/models"

// Session is an immutable snapshot of the authentication state.
//
// CurrentUser is non-nil only if AccessToken is non-empty, and
// HasCompletedProfile is meaningful only while CurrentUser is non-nil. The
// [Authority] never hands out a snapshot violating either rule.
type Session struct {
	// AccessToken is the attached bearer token, empty when signed out.
	AccessToken string

	// CurrentUser is the signed-in identity. Callers must not mutate it.
	CurrentUser *models.User

	// HasCompletedProfile is the onboarding completeness of CurrentUser.
	HasCompletedProfile ProfileStatus

	// IsInitializing is true while Bootstrap is running.
	IsInitializing bool

	// settled is set once Bootstrap has finished or the session was
	// explicitly cleared. It separates Uninitialized from Anonymous.
	settled bool
}

// State derives the lifecycle state from the snapshot.
func (s Session) State() State {
	switch {
	case s.IsInitializing:
		return Initializing
	case !s.settled:
		return Uninitialized
	case s.CurrentUser == nil || s.AccessToken == "":
		// not authenticated wins over any profile flag
		return Anonymous
	case s.HasCompletedProfile == ProfileComplete:
		return AuthenticatedComplete
	default:
		return AuthenticatedIncomplete
	}
}

// IsAuthenticated is shorthand for s.State().IsAuthenticated().
func (s Session) IsAuthenticated() bool {
	return s.State().IsAuthenticated()
}

// anonymousSession is the settled, signed-out snapshot. Every clear path
// produces exactly this value.
func anonymousSession() Session {
	return Session{settled: true}
}

func initializingSession() Session {
	return Session{IsInitializing: true}
}

func authenticatedSession(token string, user models.User, profile ProfileStatus) Session {
	u := user
	return Session{
		AccessToken:         token,
		CurrentUser:         &u,
		HasCompletedProfile: profile,
		settled:             true,
	}
}

// clone returns a copy whose CurrentUser does not alias s.
func (s Session) clone() Session {
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		s.CurrentUser = &u
	}
	return s
}

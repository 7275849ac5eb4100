// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"fmt"

	"github.com/MKhiriev/fin-tracker-client/internal/session"
)

// Action is the outcome kind of a navigation decision.
type Action int

const (
	// Allow renders the target screen.
	Allow Action = iota
	// Defer shows the loading view until the session settles.
	Defer
	// Redirect navigates to Decision.Target instead.
	Redirect
)

func (a Action) String() string {
	switch a {
	case Allow:
		return "allow"
	case Defer:
		return "defer"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Decision is the result of [DecideNavigation].
type Decision struct {
	Action Action

	// Target is the redirect destination. Set only for Redirect.
	Target Screen

	// RememberTarget asks the caller to keep the originally requested
	// screen and resume it after the user signs in.
	RememberTarget bool
}

func (d Decision) String() string {
	if d.Action != Redirect {
		return d.Action.String()
	}
	return fmt.Sprintf("redirect(%s)", d.Target)
}

func allow() Decision { return Decision{Action: Allow} }

func deferUntilSettled() Decision { return Decision{Action: Defer} }

func redirectTo(target Screen) Decision { return Decision{Action: Redirect, Target: target} }

// DecideNavigation decides a navigation attempt to screen in state.
//
//	state                     Public      AnyAuthenticated   RequiresCompleteProfile
//	Uninitialized/Initializing defer      defer              defer
//	Anonymous                  allow      →login (remember)  →login (remember)
//	AuthenticatedIncomplete    →landing   allow              →onboarding
//	AuthenticatedComplete      →landing   allow              allow
//
// The onboarding screen additionally sends AuthenticatedComplete sessions to
// the landing screen. Authentication is always checked before profile
// completeness. ScreenRoot and unknown screens redirect to the landing
// screen once the session has settled.
func DecideNavigation(state session.State, screen Screen) Decision {
	if state.IsPending() {
		return deferUntilSettled()
	}

	class, ok := ClassOf(screen)
	if !ok {
		return redirectTo(Landing)
	}

	if class == Public {
		if state.IsAuthenticated() {
			return redirectTo(Landing)
		}
		return allow()
	}

	if !state.IsAuthenticated() {
		return Decision{Action: Redirect, Target: ScreenLogin, RememberTarget: true}
	}

	if screen == ScreenOnboarding && state == session.AuthenticatedComplete {
		return redirectTo(Landing)
	}

	if class == RequiresCompleteProfile && state != session.AuthenticatedComplete {
		return redirectTo(ScreenOnboarding)
	}

	return allow()
}

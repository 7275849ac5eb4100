// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"errors"
	"sync"

	"github.com/MKhiriev/fin-tracker-client/internal/session"
)

// maxRedirects bounds a redirect chain. The longest legal chain is
// root → dashboard → onboarding.
const maxRedirects = 4

// ErrRedirectLoop is returned when redirects do not converge.
var ErrRedirectLoop = errors.New("navigation redirect loop")

// Outcome is where a navigation attempt ended.
type Outcome struct {
	// Screen is the screen to render. While Deferred it is the screen that
	// was current before the attempt.
	Screen Screen

	// Deferred is true when the session is not settled yet; the attempt is
	// kept and replayed by Reconcile.
	Deferred bool
}

// Navigator tracks the current screen and the screen an anonymous user was
// redirected away from. It is safe for concurrent use.
type Navigator struct {
	mu       sync.Mutex
	current  Screen
	pending  Screen
	intended Screen
}

// NewNavigator returns a Navigator positioned on ScreenRoot.
func NewNavigator() *Navigator {
	return &Navigator{current: ScreenRoot}
}

// Current returns the screen currently shown.
func (n *Navigator) Current() Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Intended returns the remembered target, or "" when there is none.
func (n *Navigator) Intended() Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.intended
}

// Navigate attempts to show target in state, following redirects.
func (n *Navigator) Navigate(state session.State, target Screen) (Outcome, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.navigateLocked(state, target)
}

// Reconcile re-evaluates the navigator after the session changed: it replays
// a deferred attempt, resumes the remembered target once the user is signed
// in, or re-checks the current screen.
func (n *Navigator) Reconcile(state session.State) (Outcome, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if state.IsPending() {
		return Outcome{Screen: n.current, Deferred: true}, nil
	}

	target := n.current
	if n.pending != "" {
		target = n.pending
	}
	if state.IsAuthenticated() && n.intended != "" {
		target = n.intended
		n.intended = ""
	}

	return n.navigateLocked(state, target)
}

func (n *Navigator) navigateLocked(state session.State, target Screen) (Outcome, error) {
	for i := 0; i <= maxRedirects; i++ {
		decision := DecideNavigation(state, target)

		switch decision.Action {
		case Allow:
			n.current = target
			n.pending = ""
			return Outcome{Screen: target}, nil

		case Defer:
			n.pending = target
			return Outcome{Screen: n.current, Deferred: true}, nil

		case Redirect:
			if decision.RememberTarget {
				n.intended = target
			}
			target = decision.Target
		}
	}

	return Outcome{Screen: n.current}, ErrRedirectLoop
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package guard decides, for a session state and a target screen, whether
// navigation is allowed, must wait for the session to settle, or must be
// redirected elsewhere.
//
// [DecideNavigation] is a pure function and the single source of the access
// rules. [Navigator] applies it, following redirects and remembering the
// screen an anonymous user wanted so that it can be resumed after sign-in.
package guard

// Screen names a top-level screen of the client.
type Screen string

const (
	// ScreenRoot is the entry alias; it always leads to the dashboard.
	ScreenRoot       Screen = "root"
	ScreenLogin      Screen = "login"
	ScreenRegister   Screen = "register"
	ScreenOnboarding Screen = "onboarding"
	ScreenDashboard  Screen = "dashboard"
	ScreenProfile    Screen = "profile"
)

// Landing is where authenticated users are sent from public screens.
const Landing = ScreenDashboard

// Class is the access class of a screen.
type Class int

const (
	// Public screens are for anonymous users only.
	Public Class = iota
	// AnyAuthenticated screens need a signed-in user.
	AnyAuthenticated
	// RequiresCompleteProfile screens need a signed-in user who finished
	// onboarding.
	RequiresCompleteProfile
)

func (c Class) String() string {
	switch c {
	case Public:
		return "public"
	case AnyAuthenticated:
		return "any_authenticated"
	case RequiresCompleteProfile:
		return "requires_complete_profile"
	default:
		return "unknown"
	}
}

var screenClasses = map[Screen]Class{
	ScreenLogin:      Public,
	ScreenRegister:   Public,
	ScreenOnboarding: AnyAuthenticated,
	ScreenDashboard:  RequiresCompleteProfile,
	ScreenProfile:    RequiresCompleteProfile,
}

// ClassOf returns the access class of s. ok is false for ScreenRoot and for
// unknown screens, which are not destinations of their own.
func ClassOf(s Screen) (class Class, ok bool) {
	class, ok = screenClasses[s]
	return class, ok
}

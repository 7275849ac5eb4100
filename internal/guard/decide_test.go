// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/fin-tracker-client/internal/session"
)

func TestDecideNavigation_Table(t *testing.T) {
	toLogin := Decision{Action: Redirect, Target: ScreenLogin, RememberTarget: true}

	tests := []struct {
		state  session.State
		screen Screen
		want   Decision
	}{
		// pending states defer everything
		{session.Uninitialized, ScreenLogin, deferUntilSettled()},
		{session.Uninitialized, ScreenDashboard, deferUntilSettled()},
		{session.Initializing, ScreenRegister, deferUntilSettled()},
		{session.Initializing, ScreenOnboarding, deferUntilSettled()},
		{session.Initializing, ScreenProfile, deferUntilSettled()},
		{session.Initializing, ScreenRoot, deferUntilSettled()},

		// anonymous
		{session.Anonymous, ScreenLogin, allow()},
		{session.Anonymous, ScreenRegister, allow()},
		{session.Anonymous, ScreenOnboarding, toLogin},
		{session.Anonymous, ScreenDashboard, toLogin},
		{session.Anonymous, ScreenProfile, toLogin},

		// signed in, onboarding not finished
		{session.AuthenticatedIncomplete, ScreenLogin, redirectTo(ScreenDashboard)},
		{session.AuthenticatedIncomplete, ScreenRegister, redirectTo(ScreenDashboard)},
		{session.AuthenticatedIncomplete, ScreenOnboarding, allow()},
		{session.AuthenticatedIncomplete, ScreenDashboard, redirectTo(ScreenOnboarding)},
		{session.AuthenticatedIncomplete, ScreenProfile, redirectTo(ScreenOnboarding)},

		// signed in, onboarding finished
		{session.AuthenticatedComplete, ScreenLogin, redirectTo(ScreenDashboard)},
		{session.AuthenticatedComplete, ScreenRegister, redirectTo(ScreenDashboard)},
		{session.AuthenticatedComplete, ScreenOnboarding, redirectTo(ScreenDashboard)},
		{session.AuthenticatedComplete, ScreenDashboard, allow()},
		{session.AuthenticatedComplete, ScreenProfile, allow()},

		// aliases
		{session.Anonymous, ScreenRoot, redirectTo(ScreenDashboard)},
		{session.AuthenticatedComplete, Screen("nowhere"), redirectTo(ScreenDashboard)},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.state, tt.screen), func(t *testing.T) {
			assert.Equal(t, tt.want, DecideNavigation(tt.state, tt.screen))
		})
	}
}

func TestDecideNavigation_NotAuthenticatedWinsOverProfile(t *testing.T) {
	got := DecideNavigation(session.Anonymous, ScreenProfile)

	assert.Equal(t, Redirect, got.Action)
	assert.Equal(t, ScreenLogin, got.Target)
	assert.NotEqual(t, ScreenOnboarding, got.Target)
}

func TestClassOf(t *testing.T) {
	class, ok := ClassOf(ScreenOnboarding)
	assert.True(t, ok)
	assert.Equal(t, AnyAuthenticated, class)

	_, ok = ClassOf(ScreenRoot)
	assert.False(t, ok)

	assert.Equal(t, "requires_complete_profile", RequiresCompleteProfile.String())
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "allow", allow().String())
	assert.Equal(t, "defer", deferUntilSettled().String())
	assert.Equal(t, "redirect(onboarding)", redirectTo(ScreenOnboarding).String())
}

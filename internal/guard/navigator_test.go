// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fin-tracker-client/internal/session"
)

func TestNavigator_DefersUntilSettled(t *testing.T) {
	n := NewNavigator()

	out, err := n.Navigate(session.Initializing, ScreenProfile)
	require.NoError(t, err)
	assert.True(t, out.Deferred)
	assert.Equal(t, ScreenRoot, out.Screen)

	out, err = n.Reconcile(session.AuthenticatedComplete)
	require.NoError(t, err)
	assert.False(t, out.Deferred)
	assert.Equal(t, ScreenProfile, out.Screen)
	assert.Equal(t, ScreenProfile, n.Current())
}

func TestNavigator_RootFollowsRedirectChain(t *testing.T) {
	tests := []struct {
		state session.State
		want  Screen
	}{
		{session.Anonymous, ScreenLogin},
		{session.AuthenticatedIncomplete, ScreenOnboarding},
		{session.AuthenticatedComplete, ScreenDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			n := NewNavigator()
			out, err := n.Navigate(tt.state, ScreenRoot)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Screen)
		})
	}
}

func TestNavigator_ResumesRememberedTargetAfterLogin(t *testing.T) {
	n := NewNavigator()

	out, err := n.Navigate(session.Anonymous, ScreenProfile)
	require.NoError(t, err)
	assert.Equal(t, ScreenLogin, out.Screen)
	assert.Equal(t, ScreenProfile, n.Intended())

	out, err = n.Reconcile(session.AuthenticatedComplete)
	require.NoError(t, err)
	assert.Equal(t, ScreenProfile, out.Screen)
	assert.Empty(t, n.Intended())
}

func TestNavigator_RememberedTargetStillGuarded(t *testing.T) {
	n := NewNavigator()

	_, err := n.Navigate(session.Anonymous, ScreenDashboard)
	require.NoError(t, err)

	out, err := n.Reconcile(session.AuthenticatedIncomplete)
	require.NoError(t, err)
	assert.Equal(t, ScreenOnboarding, out.Screen)
}

func TestNavigator_LoginWithoutRememberedTarget(t *testing.T) {
	n := NewNavigator()

	out, err := n.Navigate(session.Anonymous, ScreenLogin)
	require.NoError(t, err)
	require.Equal(t, ScreenLogin, out.Screen)

	out, err = n.Reconcile(session.AuthenticatedComplete)
	require.NoError(t, err)
	assert.Equal(t, ScreenDashboard, out.Screen)
}

func TestNavigator_SessionLossRedirectsToLogin(t *testing.T) {
	n := NewNavigator()

	_, err := n.Navigate(session.AuthenticatedComplete, ScreenProfile)
	require.NoError(t, err)

	out, err := n.Reconcile(session.Anonymous)
	require.NoError(t, err)
	assert.Equal(t, ScreenLogin, out.Screen)
	assert.Equal(t, ScreenProfile, n.Intended())
}

func TestNavigator_OnboardingFinished(t *testing.T) {
	n := NewNavigator()

	_, err := n.Navigate(session.AuthenticatedIncomplete, ScreenOnboarding)
	require.NoError(t, err)

	out, err := n.Reconcile(session.AuthenticatedComplete)
	require.NoError(t, err)
	assert.Equal(t, ScreenDashboard, out.Screen)
}

func TestNavigator_ReconcileWhilePending(t *testing.T) {
	n := NewNavigator()

	out, err := n.Reconcile(session.Initializing)
	require.NoError(t, err)
	assert.True(t, out.Deferred)
	assert.Equal(t, ScreenRoot, out.Screen)
}

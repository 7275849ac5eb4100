// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/fin-tracker-client/internal/adapter"
	"github.com/MKhiriev/fin-tracker-client/internal/app"
)

func TestMapLoginError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "401", err: adapter.NewStatusError(http.StatusUnauthorized, app.MsgIncorrectCredentials), want: ErrInvalidCredentials},
		{name: "inactive user", err: adapter.NewStatusError(http.StatusBadRequest, app.MsgInactiveUser), want: ErrInvalidCredentials},
		{name: "422", err: adapter.NewStatusError(http.StatusUnprocessableEntity, "field required"), want: ErrValidationFailed},
		{name: "network", err: adapter.ErrNetwork, want: ErrNetworkUnavailable},
		{name: "decode", err: adapter.ErrDecode, want: ErrNetworkUnavailable},
		{name: "500", err: adapter.NewStatusError(http.StatusInternalServerError, ""), want: ErrLoginFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapLoginError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, mapLoginError(nil))
}

func TestMapRegisterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "email taken", err: adapter.NewStatusError(http.StatusBadRequest, app.MsgEmailAlreadyRegistered), want: ErrAccountExists},
		{name: "username taken", err: adapter.NewStatusError(http.StatusBadRequest, app.MsgUsernameAlreadyTaken), want: ErrAccountExists},
		{name: "409", err: adapter.NewStatusError(http.StatusConflict, ""), want: ErrAccountExists},
		{name: "short password", err: adapter.NewStatusError(http.StatusBadRequest, app.MsgPasswordTooShort), want: ErrValidationFailed},
		{name: "422", err: adapter.NewStatusError(http.StatusUnprocessableEntity, ""), want: ErrValidationFailed},
		{name: "network", err: adapter.ErrNetwork, want: ErrNetworkUnavailable},
		{name: "502", err: adapter.NewStatusError(http.StatusBadGateway, ""), want: ErrRegistrationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapRegisterError(tt.err), tt.want)
		})
	}
}

func TestMapLookupError(t *testing.T) {
	assert.ErrorIs(t, mapLookupError(adapter.NewStatusError(http.StatusUnauthorized, "")), ErrSessionExpired)
	assert.ErrorIs(t, mapLookupError(adapter.NewStatusError(http.StatusForbidden, "")), ErrSessionExpired)
	assert.ErrorIs(t, mapLookupError(adapter.ErrDecode), ErrNetworkUnavailable)

	other := errors.New("boom")
	assert.Equal(t, other, mapLookupError(other))
	assert.NoError(t, mapLookupError(nil))
}

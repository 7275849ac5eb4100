// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fin-tracker-client/internal/logger"
	"github.com/MKhiriev/fin-tracker-client/internal/tui"
)

type fakeUI struct {
	err    error
	ran    bool
	gotCtx context.Context
}

func (f *fakeUI) Run(ctx context.Context) error {
	f.ran = true
	f.gotCtx = ctx
	return f.err
}

type closeRecorder struct {
	name  string
	order *[]string
	err   error
}

func (c closeRecorder) Close() error {
	*c.order = append(*c.order, c.name)
	return c.err
}

func TestNewApp_NilUI(t *testing.T) {
	_, err := NewApp(nil, logger.Nop())
	require.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr bool
	}{
		{name: "clean exit", uiErr: nil},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: errors.New("terminal lost"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var order []string
			ui := &fakeUI{err: tt.uiErr}

			app, err := NewApp(ui, logger.Nop(),
				closeRecorder{name: "store", order: &order},
				closeRecorder{name: "cache", order: &order, err: errors.New("already closed")},
			)
			require.NoError(t, err)

			err = app.Run()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.uiErr)
			} else {
				require.NoError(t, err)
			}

			assert.True(t, ui.ran)
			assert.NotNil(t, ui.gotCtx)
			assert.Equal(t, []string{"cache", "store"}, order)
		})
	}
}

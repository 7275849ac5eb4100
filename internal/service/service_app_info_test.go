// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/fin-tracker-client/internal/config"
	"github.com/MKhiriev/fin-tracker-client/internal/logger"
	"github.com/MKhiriev/fin-tracker-client/models"
)

func TestAppInfoService_ConfiguredVersionWins(t *testing.T) {
	build := models.NewAppBuildInfo("v0.3.0", "2026-10-01", "abc123")

	svc := NewAppInfoService(config.App{Version: "1.2.3"}, build, logger.Nop())

	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
	assert.Equal(t, build, svc.BuildInfo())
}

func TestAppInfoService_FallsBackToBuildVersion(t *testing.T) {
	build := models.NewAppBuildInfo("v0.3.0", "", "")

	svc := NewAppInfoService(config.App{}, build, logger.Nop())

	assert.Equal(t, "v0.3.0", svc.GetAppVersion(context.Background()))
}

func TestAppInfoService_NothingKnown(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}

func TestNewClientServices(t *testing.T) {
	services := NewClientServices(config.App{Version: "1"}, models.NewAppBuildInfo("", "", ""), nil, nil, logger.Nop())

	assert.NotNil(t, services.OnboardingService)
	assert.NotNil(t, services.AppInfoService)
}

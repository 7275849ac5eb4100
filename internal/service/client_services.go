// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/fin-tracker-client/internal/adapter"
	"github.com/MKhiriev/fin-tracker-client/internal/config"
	"github.com/MKhiriev/fin-tracker-client/internal/logger"
	"github.com/MKhiriev/fin-tracker-client/models"
)

// ClientServices groups the client use cases handed to the UI.
type ClientServices struct {
	OnboardingService OnboardingService
	AppInfoService    AppInfoService
}

// NewClientServices wires the client use cases.
func NewClientServices(cfg config.App, build models.AppBuildInfo, serverAdapter adapter.ServerAdapter, sessionController SessionController, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		OnboardingService: NewClientOnboardingService(serverAdapter, sessionController, logger),
		AppInfoService:    NewAppInfoService(cfg, build, logger),
	}
}

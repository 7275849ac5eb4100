// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/fin-tracker-client/internal/config"
	"github.com/MKhiriev/fin-tracker-client/internal/logger"
	"github.com/MKhiriev/fin-tracker-client/models"
)

type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns an [AppInfoService]. The configured version wins
// over the linker-injected build version.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = build.BuildVersion()
	}

	return &appInfoService{
		appVersion: version,
		build:      build,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) BuildInfo() models.AppBuildInfo {
	return s.build
}

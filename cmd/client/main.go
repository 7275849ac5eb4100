// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/fin-tracker-client/internal/adapter"
	"github.com/MKhiriev/fin-tracker-client/internal/client"
	"github.com/MKhiriev/fin-tracker-client/internal/config"
	"github.com/MKhiriev/fin-tracker-client/internal/logger"
	"github.com/MKhiriev/fin-tracker-client/internal/service"
	"github.com/MKhiriev/fin-tracker-client/internal/session"
	"github.com/MKhiriev/fin-tracker-client/internal/store"
	"github.com/MKhiriev/fin-tracker-client/internal/tui"
	"github.com/MKhiriev/fin-tracker-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("fin-tracker-client", os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("fin-tracker-client", cfg.Log.FilePath)
	log.Debug().
		Str("adapter_address", cfg.Adapter.HTTPAddress).
		Dur("request_timeout", cfg.Adapter.RequestTimeout).
		Str("db_dsn", cfg.Storage.DB.DSN).
		Msg("received configs")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	authority := session.NewAuthority(serverAdapter, storages.TokenStorage, log)
	services := service.NewClientServices(cfg.App, buildInfo, serverAdapter, authority, log)

	ui, err := tui.New(authority, services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log, storages)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

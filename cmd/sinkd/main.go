// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-field-keeper/internal/config"
	"github.com/MKhiriev/go-field-keeper/internal/handler"
	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/server"
	"github.com/MKhiriev/go-field-keeper/internal/service"
	"github.com/MKhiriev/go-field-keeper/internal/store"
	"github.com/MKhiriev/go-field-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("sinkd")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = registerBootstrapClient(ctx, services.AuthService, cfg.Bootstrap, log); err != nil {
		log.Fatal().Err(err).Msg("error registering bootstrap client")
	}

	handlers, err := handler.NewHandlers(services, cfg.HTTP, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.HTTP, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// registerBootstrapClient registers the configured client once; an existing
// registration keeps its original secret.
func registerBootstrapClient(ctx context.Context, auth service.AuthService, client config.BootstrapClient, log *logger.Logger) error {
	if client.ClientID == "" || client.ClientSecret == "" {
		return nil
	}

	err := auth.RegisterClient(ctx, client.ClientID, client.ClientSecret)
	switch {
	case errors.Is(err, store.ErrClientAlreadyExists):
		log.Info().Str("client_id", client.ClientID).Msg("bootstrap client already registered")
		return nil
	case err != nil:
		return err
	}

	log.Info().Str("client_id", client.ClientID).Msg("bootstrap client registered")
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-field-keeper/internal/adapter"
	"github.com/MKhiriev/go-field-keeper/internal/client"
	"github.com/MKhiriev/go-field-keeper/internal/config"
	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/serializer"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("field-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("field-client", cfg.App.LogPath)
	logger.SetLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	identity, sink, rowSerializer, err := newSink(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create sink adapter")
	}

	services := service.NewClientServices(storages, identity, sink, rowSerializer, log,
		service.WithStageObserver(client.StageLogger(log)))

	app, err := client.NewApp(services, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}

// newSink builds the identity provider, sink adapter and row serializer of
// the configured sink kind.
func newSink(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (adapter.IdentityProvider, adapter.SinkAdapter, *serializer.Serializer, error) {
	switch cfg.Adapter.Kind {
	case config.SinkKindWorkbook:
		sink, err := adapter.NewWorkbookSinkAdapter(cfg.Storage.WorkbookPath, log)
		if err != nil {
			return nil, nil, nil, err
		}
		return adapter.LocalIdentity{}, sink, serializer.New(serializer.WithMaxCellLength(adapter.WorkbookMaxCellLength)), nil
	default:
		identity, err := adapter.NewHTTPIdentity(cfg.Adapter, cfg.Identity, log)
		if err != nil {
			return nil, nil, nil, err
		}
		// offline at start is fine: every sync attempt authenticates again
		if err = identity.Initialize(ctx); err != nil {
			log.Warn().Err(err).Msg("initial authentication failed")
		}
		sink, err := adapter.NewHTTPSinkAdapter(cfg.Adapter, log)
		if err != nil {
			return nil, nil, nil, err
		}
		return identity, sink, serializer.New(), nil
	}
}

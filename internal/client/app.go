// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-field-keeper/internal/config"
	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/service"
	"github.com/MKhiriev/go-field-keeper/internal/workers"
	"github.com/MKhiriev/go-field-keeper/models"
)

type App struct {
	services *service.ClientServices
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp builds the client runtime. A zero cfg.SyncInterval leaves the app
// with no background worker, so Run performs a single sync pass.
func NewApp(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || services.SyncService == nil {
		return nil, errNoServices
	}

	ws := workers.NewWorkers()
	if cfg.SyncInterval > 0 {
		ws = workers.NewWorkers(workers.NewSyncWorker(services.SyncJob, cfg.SyncInterval, logger))
	}

	return &App{services: services, workers: ws, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	results, err := a.services.SyncService.SyncAll(ctx)
	for _, result := range results {
		a.logResult(result)
	}
	if err != nil {
		if a.workers.Len() == 0 {
			return fmt.Errorf("sync pass failed: %w", err)
		}
		// the background worker retries on its next tick
		a.logger.Err(err).Str("func", "App.Run").Msg("initial sync pass finished with errors")
	}

	if a.workers.Len() == 0 {
		return nil
	}

	a.workers.Run(ctx)
	return nil
}

func (a *App) logResult(result models.SyncResult) {
	a.logger.Info().
		Str("campaign_id", result.CampaignID).
		Str("sink_id", result.SinkID).
		Bool("sink_created", result.SinkCreated).
		Bool("header_written", result.HeaderWritten).
		Int("appended", len(result.AppendedIDs)).
		Msg("campaign synced")
}

// StageLogger returns a sync stage observer that logs every transition at
// debug level.
func StageLogger(logger *logger.Logger) service.StageObserver {
	return func(campaignID string, stage models.SyncStage) {
		logger.Debug().Str("campaign_id", campaignID).Str("stage", string(stage)).Msg("sync stage")
	}
}

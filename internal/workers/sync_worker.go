// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/service"
)

type syncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
	logger   *logger.Logger
}

// NewSyncWorker runs job every interval for as long as the worker runs.
func NewSyncWorker(job service.ClientSyncJob, interval time.Duration, logger *logger.Logger) Worker {
	return &syncWorker{job: job, interval: interval, logger: logger}
}

func (w *syncWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("sync worker started")

	w.job.Start(ctx, w.interval)
	<-ctx.Done()
	w.job.Stop()

	w.logger.Info().Msg("sync worker stopped")
}

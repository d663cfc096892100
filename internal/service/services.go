// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-field-keeper/internal/config"
	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/store"
	"github.com/MKhiriev/go-field-keeper/internal/utils"
)

// Services groups the sink server services.
type Services struct {
	AuthService    AuthService
	SinkService    SinkService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.ClientRepository, cfg, logger),
		SinkService:    NewSinkService(storages.SinkRepository, store.NewPostgresErrorClassifier(), utils.NewUUIDGenerator(), logger),
		AppInfoService: appInfo,
	}, nil
}

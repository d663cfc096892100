// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-field-keeper/internal/adapter"
	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/serializer"
	"github.com/MKhiriev/go-field-keeper/internal/store"
	"github.com/MKhiriev/go-field-keeper/internal/utils"
)

type ClientServices struct {
	CampaignService CampaignService
	EntryService    EntryService
	SyncService     ClientSyncService
	SyncJob         ClientSyncJob
}

func NewClientServices(
	storages *store.ClientStorages,
	identity adapter.IdentityProvider,
	sink adapter.SinkAdapter,
	rowSerializer *serializer.Serializer,
	logger *logger.Logger,
	opts ...SyncOption,
) *ClientServices {
	ids := utils.NewUUIDGenerator()
	syncSvc := NewClientSyncService(storages.LocalStore, identity, sink, rowSerializer, logger, opts...)

	return &ClientServices{
		CampaignService: NewCampaignService(storages.LocalStore, ids, logger),
		EntryService:    NewEntryService(storages.LocalStore, ids, logger),
		SyncService:     syncSvc,
		SyncJob:         NewClientSyncJob(syncSvc, logger),
	}
}

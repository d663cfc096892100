// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-field-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalStore is the client-side durable store of campaigns and entries.
//
// Multi-row mutations (DeleteCampaign, PutEntry, SetSpreadsheetID,
// MarkSynced) run in a single transaction: either every change is committed
// or none is. Lookups of a missing id report found == false instead of an
// error.
type LocalStore interface {
	PutCampaign(ctx context.Context, campaign models.Campaign) error
	GetCampaigns(ctx context.Context) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, id string) (models.Campaign, bool, error)
	DeleteCampaign(ctx context.Context, id string) error
	SetSpreadsheetID(ctx context.Context, campaignID, sinkID string) error

	PutEntry(ctx context.Context, entry models.Entry) error
	GetEntry(ctx context.Context, id string) (models.Entry, bool, error)
	DeleteEntry(ctx context.Context, id string) error
	ListEntriesByCampaign(ctx context.Context, campaignID string) ([]models.Entry, error)
	ListUnsyncedEntries(ctx context.Context, campaignID string) ([]models.Entry, error)
	MarkSynced(ctx context.Context, ids []string) (int64, error)
}

// ClientRepository stores the credentials of sink server clients.
type ClientRepository interface {
	CreateClient(ctx context.Context, clientID, secretHash string) error
	GetClientSecretHash(ctx context.Context, clientID string) (string, error)
}

// SinkRepository stores tabular sinks on the sink server.
type SinkRepository interface {
	CreateSink(ctx context.Context, sink models.Sink) (models.Sink, error)
	GetSink(ctx context.Context, sinkID, owner string) (models.Sink, error)
	GetHeader(ctx context.Context, sinkID string) ([]string, bool, error)
	InsertHeader(ctx context.Context, sinkID string, cells []string) error
	AppendRows(ctx context.Context, sinkID string, rows [][]string) (int, error)
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// String returns a log-friendly name of the classification.
func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non_retryable"
}

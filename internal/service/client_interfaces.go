// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-field-keeper/models"
)

// ClientSyncService reconciles unsynced local entries with the remote sink.
type ClientSyncService interface {
	// SyncCampaign runs one sync of the campaign through the stages
	// Authenticating, EnsuringSink, EnsuringHeader, Appending and
	// MarkingSynced. At most one run per campaign is in flight; a concurrent
	// request fails with ErrSyncInProgress without touching anything.
	// A failed run returns a *SyncError naming the stage that failed.
	SyncCampaign(ctx context.Context, campaignID string) (models.SyncResult, error)

	// SyncAll syncs every stored campaign one after another. A failure of
	// one campaign does not stop the others; all failures are joined.
	SyncAll(ctx context.Context) ([]models.SyncResult, error)
}

// ClientSyncJob defines the contract for a background sync worker that
// periodically calls SyncAll.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// CampaignService manages campaign schemas on the client.
type CampaignService interface {
	// Create assigns an id and a creation time to draft, validates its schema
	// and stores it. Any SpreadsheetID on the draft is dropped.
	Create(ctx context.Context, draft models.Campaign) (models.Campaign, error)

	// Update replaces name, description and fields of a stored campaign. The
	// id, the creation time and the sink binding are kept. Existing entries
	// are not migrated.
	Update(ctx context.Context, campaign models.Campaign) (models.Campaign, error)

	Get(ctx context.Context, id string) (models.Campaign, error)

	// List returns every campaign, newest first.
	List(ctx context.Context) ([]models.Campaign, error)

	// Delete removes the campaign together with all of its entries.
	Delete(ctx context.Context, id string) error
}

// EntryService captures entries. Raw inputs are typed against the campaign
// schema and validated before anything is written.
type EntryService interface {
	// Create builds a new unsynced entry for campaignID. Reserved location
	// keys in raw are lifted into the entry location unless loc is given.
	Create(ctx context.Context, campaignID string, raw map[string]any, loc *models.Location) (models.Entry, error)

	// Update replaces data, location and the update time of an entry. The
	// synced watermark is kept.
	Update(ctx context.Context, id string, raw map[string]any, loc *models.Location) (models.Entry, error)

	Get(ctx context.Context, id string) (models.Entry, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]models.Entry, error)
	Delete(ctx context.Context, id string) error
}

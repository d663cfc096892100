// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-field-keeper/models"
)

var (
	// ErrSyncInProgress is returned when a campaign is already being synced
	// by this process.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrCampaignNotFound is returned when a campaign id is not stored.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrEntryNotFound is returned when an entry id is not stored.
	ErrEntryNotFound = errors.New("entry not found")
)

// SyncError reports a failed sync run: the campaign, the stage that failed
// and the error kind of that stage ([models.ErrAuth], [models.ErrSink] or
// [models.ErrStore]). errors.Is matches both the kind and the cause.
type SyncError struct {
	CampaignID string
	Stage      models.SyncStage
	Kind       error
	Err        error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync of campaign %s failed while %s: %v", e.CampaignID, e.Stage, e.Err)
}

func (e *SyncError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncStage is a state of the per-campaign sync state machine:
//
//	Idle → Authenticating → EnsuringSink → EnsuringHeader → Appending → MarkingSynced → Idle
//
// Failed is entered from any step on error and returns control to Idle.
type SyncStage string

const (
	StageIdle           SyncStage = "idle"
	StageAuthenticating SyncStage = "authenticating"
	StageEnsuringSink   SyncStage = "ensuring_sink"
	StageEnsuringHeader SyncStage = "ensuring_header"
	StageAppending      SyncStage = "appending"
	StageMarkingSynced  SyncStage = "marking_synced"
	StageFailed         SyncStage = "failed"
)

// SyncResult summarises one completed sync run of a campaign.
type SyncResult struct {
	CampaignID string

	// SinkID is the sink the rows were appended to.
	SinkID string

	// SinkCreated reports whether this run created the sink.
	SinkCreated bool

	// HeaderWritten reports whether this run wrote the header row.
	HeaderWritten bool

	// AppendedIDs are the ids of the entries appended and marked synced,
	// in append order.
	AppendedIDs []string
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-field-keeper/internal/adapter"
	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/serializer"
	"github.com/MKhiriev/go-field-keeper/internal/store"
	"github.com/MKhiriev/go-field-keeper/models"
)

// StageObserver is notified of every stage a sync run enters, including
// [models.StageFailed] and the final [models.StageIdle].
type StageObserver func(campaignID string, stage models.SyncStage)

// SyncOption configures a sync service.
type SyncOption func(*clientSyncService)

// WithStageObserver registers an observer of stage transitions. Observers
// run synchronously on the syncing goroutine.
func WithStageObserver(observer StageObserver) SyncOption {
	return func(s *clientSyncService) {
		if observer != nil {
			s.observers = append(s.observers, observer)
		}
	}
}

type clientSyncService struct {
	localStore store.LocalStore
	identity   adapter.IdentityProvider
	sink       adapter.SinkAdapter
	serializer *serializer.Serializer
	observers  []StageObserver
	logger     *logger.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewClientSyncService wires the sync engine to its collaborators. The
// identity provider and the sink adapter are owned by the returned service
// for its whole lifetime.
func NewClientSyncService(
	localStore store.LocalStore,
	identity adapter.IdentityProvider,
	sink adapter.SinkAdapter,
	rowSerializer *serializer.Serializer,
	logger *logger.Logger,
	opts ...SyncOption,
) ClientSyncService {
	if rowSerializer == nil {
		rowSerializer = serializer.New()
	}

	s := &clientSyncService{
		localStore: localStore,
		identity:   identity,
		sink:       sink,
		serializer: rowSerializer,
		logger:     logger,
		inFlight:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *clientSyncService) SyncCampaign(ctx context.Context, campaignID string) (models.SyncResult, error) {
	if !s.acquire(campaignID) {
		return models.SyncResult{}, fmt.Errorf("%w: campaign %s", ErrSyncInProgress, campaignID)
	}
	defer s.release(campaignID)

	ctx = s.logger.WithCampaign(ctx, campaignID)
	log := logger.FromContext(ctx)

	result, err := s.run(ctx, campaignID)
	if err != nil {
		var syncErr *SyncError
		if errors.As(err, &syncErr) {
			s.notify(campaignID, models.StageFailed)
			log.Err(syncErr.Err).
				Str("func", "clientSyncService.SyncCampaign").
				Str("stage", string(syncErr.Stage)).
				Msg("sync failed")
		}
		s.notify(campaignID, models.StageIdle)
		return result, err
	}

	s.notify(campaignID, models.StageIdle)
	log.Info().
		Str("sink_id", result.SinkID).
		Bool("sink_created", result.SinkCreated).
		Bool("header_written", result.HeaderWritten).
		Int("appended", len(result.AppendedIDs)).
		Msg("sync finished")

	return result, nil
}

// run executes the stages in order. Every stage depends on the durable
// effect of the previous one, so the first failure ends the run.
func (s *clientSyncService) run(ctx context.Context, campaignID string) (models.SyncResult, error) {
	result := models.SyncResult{CampaignID: campaignID}

	s.notify(campaignID, models.StageAuthenticating)
	credential, err := s.identity.Authenticate(ctx)
	if err != nil {
		return result, s.fail(campaignID, models.StageAuthenticating, models.ErrAuth, err)
	}
	s.sink.SetCredential(credential)

	s.notify(campaignID, models.StageEnsuringSink)
	campaign, found, err := s.localStore.GetCampaign(ctx, campaignID)
	if err != nil {
		return result, s.fail(campaignID, models.StageEnsuringSink, models.ErrStore, err)
	}
	if !found {
		return result, s.fail(campaignID, models.StageEnsuringSink, models.ErrStore, ErrCampaignNotFound)
	}

	sinkID, created, err := s.ensureSink(ctx, campaign)
	if err != nil {
		return result, err
	}
	result.SinkID = sinkID
	result.SinkCreated = created

	s.notify(campaignID, models.StageEnsuringHeader)
	result.HeaderWritten, err = s.ensureHeader(ctx, campaign, sinkID)
	if err != nil {
		return result, err
	}

	s.notify(campaignID, models.StageAppending)
	entries, err := s.localStore.ListUnsyncedEntries(ctx, campaignID)
	if err != nil {
		return result, s.fail(campaignID, models.StageAppending, models.ErrStore, err)
	}
	if len(entries) == 0 {
		return result, nil
	}

	if err = s.sink.AppendRows(ctx, sinkID, s.serializer.Rows(campaign, entries)); err != nil {
		return result, s.fail(campaignID, models.StageAppending, models.ErrSink, err)
	}

	// Rows are in the sink now. Until MarkSynced commits, a crash leaves the
	// entries unsynced and the next run appends them again.
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}

	s.notify(campaignID, models.StageMarkingSynced)
	if _, err = s.localStore.MarkSynced(ctx, ids); err != nil {
		return result, s.fail(campaignID, models.StageMarkingSynced, models.ErrStore, err)
	}
	result.AppendedIDs = ids

	return result, nil
}

// ensureSink returns the campaign's sink id, creating the sink on first
// sync. A new id is persisted before anything else happens so an
// interrupted run reuses the sink instead of creating a second one.
func (s *clientSyncService) ensureSink(ctx context.Context, campaign models.Campaign) (string, bool, error) {
	if campaign.HasSink() {
		return *campaign.SpreadsheetID, false, nil
	}

	sinkID, err := s.sink.CreateSink(ctx, campaign.Name)
	if err != nil {
		return "", false, s.fail(campaign.ID, models.StageEnsuringSink, models.ErrSink, err)
	}

	if err = s.localStore.SetSpreadsheetID(ctx, campaign.ID, sinkID); err != nil {
		return "", false, s.fail(campaign.ID, models.StageEnsuringSink, models.ErrStore, err)
	}

	logger.FromContext(ctx).Info().Str("sink_id", sinkID).Msg("sink created")
	return sinkID, true, nil
}

// ensureHeader writes the serializer header when the sink has none. An
// existing header is left as it is, even if the schema has changed since.
func (s *clientSyncService) ensureHeader(ctx context.Context, campaign models.Campaign, sinkID string) (bool, error) {
	existing, err := s.sink.ReadHeaderRow(ctx, sinkID)
	if err != nil {
		return false, s.fail(campaign.ID, models.StageEnsuringHeader, models.ErrSink, err)
	}
	if !isBlankRow(existing) {
		return false, nil
	}

	if err = s.sink.WriteHeaderRow(ctx, sinkID, s.serializer.Header(campaign)); err != nil {
		return false, s.fail(campaign.ID, models.StageEnsuringHeader, models.ErrSink, err)
	}

	return true, nil
}

func (s *clientSyncService) SyncAll(ctx context.Context) ([]models.SyncResult, error) {
	campaigns, err := s.localStore.GetCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns for sync: %w", err)
	}

	results := make([]models.SyncResult, 0, len(campaigns))
	var errs []error
	for _, campaign := range campaigns {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		result, syncErr := s.SyncCampaign(ctx, campaign.ID)
		if syncErr != nil {
			errs = append(errs, syncErr)
			continue
		}
		results = append(results, result)
	}

	return results, errors.Join(errs...)
}

func (s *clientSyncService) acquire(campaignID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[campaignID]; busy {
		return false
	}
	s.inFlight[campaignID] = struct{}{}
	return true
}

func (s *clientSyncService) release(campaignID string) {
	s.mu.Lock()
	delete(s.inFlight, campaignID)
	s.mu.Unlock()
}

func (s *clientSyncService) notify(campaignID string, stage models.SyncStage) {
	for _, observer := range s.observers {
		observer(campaignID, stage)
	}
}

func (s *clientSyncService) fail(campaignID string, stage models.SyncStage, kind, err error) error {
	return &SyncError{CampaignID: campaignID, Stage: stage, Kind: kind, Err: err}
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

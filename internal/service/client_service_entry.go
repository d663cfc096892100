// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/store"
	"github.com/MKhiriev/go-field-keeper/internal/validators"
	"github.com/MKhiriev/go-field-keeper/models"
)

type entryService struct {
	localStore store.LocalStore
	validator  validators.Validator
	ids        IDGenerator
	now        func() time.Time
	logger     *logger.Logger
}

func NewEntryService(localStore store.LocalStore, ids IDGenerator, logger *logger.Logger) EntryService {
	return &entryService{
		localStore: localStore,
		validator:  validators.NewFieldDataValidator(),
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *entryService) Create(ctx context.Context, campaignID string, raw map[string]any, loc *models.Location) (models.Entry, error) {
	log := logger.FromContext(ctx)

	campaign, err := s.campaign(ctx, campaignID)
	if err != nil {
		return models.Entry{}, err
	}

	data, location, err := buildCapture(campaign, raw, loc)
	if err != nil {
		log.Err(err).Str("func", "entryService.Create").Str("campaign_id", campaignID).Msg("invalid capture data")
		return models.Entry{}, err
	}

	now := storeTime(s.now())
	entry := models.Entry{
		ID:         s.ids.Generate(),
		CampaignID: campaign.ID,
		Data:       data,
		Location:   location,
		Synced:     false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.validator.Validate(ctx, validators.SchemaEntry{Campaign: campaign, Entry: entry}); err != nil {
		log.Err(err).Str("func", "entryService.Create").Str("campaign_id", campaignID).Msg("invalid entry")
		return models.Entry{}, err
	}

	if err = s.localStore.PutEntry(ctx, entry); err != nil {
		log.Err(err).Str("func", "entryService.Create").Str("entry_id", entry.ID).Msg("error saving entry")
		return models.Entry{}, fmt.Errorf("create entry: %w", err)
	}

	return entry, nil
}

func (s *entryService) Update(ctx context.Context, id string, raw map[string]any, loc *models.Location) (models.Entry, error) {
	log := logger.FromContext(ctx)

	entry, err := s.Get(ctx, id)
	if err != nil {
		return models.Entry{}, err
	}

	campaign, err := s.campaign(ctx, entry.CampaignID)
	if err != nil {
		return models.Entry{}, err
	}

	data, location, err := buildCapture(campaign, raw, loc)
	if err != nil {
		log.Err(err).Str("func", "entryService.Update").Str("entry_id", id).Msg("invalid capture data")
		return models.Entry{}, err
	}

	entry.Data = data
	entry.Location = location
	entry.UpdatedAt = storeTime(s.now())

	if err = s.validator.Validate(ctx, validators.SchemaEntry{Campaign: campaign, Entry: entry}); err != nil {
		log.Err(err).Str("func", "entryService.Update").Str("entry_id", id).Msg("invalid entry")
		return models.Entry{}, err
	}

	if err = s.localStore.PutEntry(ctx, entry); err != nil {
		log.Err(err).Str("func", "entryService.Update").Str("entry_id", id).Msg("error saving entry")
		return models.Entry{}, fmt.Errorf("update entry: %w", err)
	}

	return entry, nil
}

func (s *entryService) Get(ctx context.Context, id string) (models.Entry, error) {
	entry, found, err := s.localStore.GetEntry(ctx, id)
	if err != nil {
		return models.Entry{}, fmt.Errorf("get entry %s: %w", id, err)
	}
	if !found {
		return models.Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}

	return entry, nil
}

func (s *entryService) ListByCampaign(ctx context.Context, campaignID string) ([]models.Entry, error) {
	entries, err := s.localStore.ListEntriesByCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list entries of campaign %s: %w", campaignID, err)
	}

	return entries, nil
}

func (s *entryService) Delete(ctx context.Context, id string) error {
	if err := s.localStore.DeleteEntry(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "entryService.Delete").Str("entry_id", id).Msg("error deleting entry")
		return fmt.Errorf("delete entry %s: %w", id, err)
	}

	return nil
}

func (s *entryService) campaign(ctx context.Context, campaignID string) (models.Campaign, error) {
	campaign, found, err := s.localStore.GetCampaign(ctx, campaignID)
	if err != nil {
		return models.Campaign{}, fmt.Errorf("get campaign %s: %w", campaignID, err)
	}
	if !found {
		return models.Campaign{}, fmt.Errorf("%w: %s", ErrCampaignNotFound, campaignID)
	}

	return campaign, nil
}

// buildCapture turns raw capture inputs into typed values of the campaign
// schema. Reserved location keys are lifted out of raw; an explicit loc
// takes precedence over them. Nil inputs are treated as absent fields.
func buildCapture(campaign models.Campaign, raw map[string]any, loc *models.Location) (models.FieldValues, *models.Location, error) {
	fields, reserved, err := models.SplitReservedLocation(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", models.ErrValidation, err)
	}
	if loc == nil {
		loc = reserved
	}

	data := make(models.FieldValues, len(fields))
	for key, input := range fields {
		def, ok := campaign.Field(key)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", validators.ErrUnknownValueKey, key)
		}

		value, err := models.NewValue(def.Type, input)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q: %w", validators.ErrValueTypeMismatch, def.Name, err)
		}
		if value != nil {
			data[key] = value
		}
	}

	return data, loc, nil
}

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

// IDGenerator produces globally unique opaque identifiers.
type IDGenerator interface {
	Generate() string
}

type campaignService struct {
	localStore store.LocalStore
	validator  validators.Validator
	ids        IDGenerator
	now        func() time.Time
	logger     *logger.Logger
}

func NewCampaignService(localStore store.LocalStore, ids IDGenerator, logger *logger.Logger) CampaignService {
	return &campaignService{
		localStore: localStore,
		validator:  validators.NewFieldDataValidator(),
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *campaignService) Create(ctx context.Context, draft models.Campaign) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	campaign := draft
	campaign.ID = s.ids.Generate()
	campaign.SpreadsheetID = nil
	campaign.CreatedAt = storeTime(s.now())
	if campaign.Fields == nil {
		campaign.Fields = models.FieldDefinitions{}
	}

	if err := s.validator.Validate(ctx, campaign); err != nil {
		log.Err(err).Str("func", "campaignService.Create").Str("name", campaign.Name).Msg("invalid campaign")
		return models.Campaign{}, err
	}

	if err := s.localStore.PutCampaign(ctx, campaign); err != nil {
		log.Err(err).Str("func", "campaignService.Create").Str("campaign_id", campaign.ID).Msg("error saving campaign")
		return models.Campaign{}, fmt.Errorf("create campaign: %w", err)
	}

	return campaign, nil
}

func (s *campaignService) Update(ctx context.Context, campaign models.Campaign) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	stored, err := s.Get(ctx, campaign.ID)
	if err != nil {
		return models.Campaign{}, err
	}

	stored.Name = campaign.Name
	stored.Description = campaign.Description
	stored.Fields = campaign.Fields
	if stored.Fields == nil {
		stored.Fields = models.FieldDefinitions{}
	}

	if err = s.validator.Validate(ctx, stored); err != nil {
		log.Err(err).Str("func", "campaignService.Update").Str("campaign_id", stored.ID).Msg("invalid campaign")
		return models.Campaign{}, err
	}

	if err = s.localStore.PutCampaign(ctx, stored); err != nil {
		log.Err(err).Str("func", "campaignService.Update").Str("campaign_id", stored.ID).Msg("error saving campaign")
		return models.Campaign{}, fmt.Errorf("update campaign: %w", err)
	}

	return stored, nil
}

func (s *campaignService) Get(ctx context.Context, id string) (models.Campaign, error) {
	campaign, found, err := s.localStore.GetCampaign(ctx, id)
	if err != nil {
		return models.Campaign{}, fmt.Errorf("get campaign %s: %w", id, err)
	}
	if !found {
		return models.Campaign{}, fmt.Errorf("%w: %s", ErrCampaignNotFound, id)
	}

	return campaign, nil
}

func (s *campaignService) List(ctx context.Context) ([]models.Campaign, error) {
	campaigns, err := s.localStore.GetCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	return campaigns, nil
}

func (s *campaignService) Delete(ctx context.Context, id string) error {
	if err := s.localStore.DeleteCampaign(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "campaignService.Delete").Str("campaign_id", id).Msg("error deleting campaign")
		return fmt.Errorf("delete campaign %s: %w", id, err)
	}

	return nil
}

// storeTime drops precision the local store does not keep, so a value
// returned to the caller equals the one read back later.
func storeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/store"
	"github.com/MKhiriev/go-field-keeper/internal/validators"
	"github.com/MKhiriev/go-field-keeper/models"
)

type sinkService struct {
	sinkRepository store.SinkRepository
	classifier     store.ErrorClassificator
	validator      validators.Validator
	ids            IDGenerator
	logger         *logger.Logger
}

func NewSinkService(sinkRepository store.SinkRepository, classifier store.ErrorClassificator, ids IDGenerator, logger *logger.Logger) SinkService {
	return &sinkService{
		sinkRepository: sinkRepository,
		classifier:     classifier,
		validator:      validators.NewSinkRequestValidator(),
		ids:            ids,
		logger:         logger,
	}
}

func (s *sinkService) CreateSink(ctx context.Context, owner, title string) (models.Sink, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.CreateSinkRequest{Title: title}); err != nil {
		log.Err(err).Str("func", "sinkService.CreateSink").Msg("invalid sink title")
		return models.Sink{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	sink, err := s.sinkRepository.CreateSink(ctx, models.Sink{
		ID:    s.ids.Generate(),
		Owner: owner,
		Title: strings.TrimSpace(title),
	})
	if err != nil {
		log.Err(err).Str("func", "sinkService.CreateSink").Str("owner", owner).Msg("sink creation ended with error")
		return models.Sink{}, s.storageError("create sink", err)
	}

	return sink, nil
}

func (s *sinkService) ReadHeader(ctx context.Context, owner, sinkID string) ([]string, bool, error) {
	if err := s.checkOwner(ctx, owner, sinkID); err != nil {
		return nil, false, err
	}

	cells, found, err := s.sinkRepository.GetHeader(ctx, sinkID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sinkService.ReadHeader").Str("sink_id", sinkID).Msg("header lookup failed")
		return nil, false, s.storageError("read header", err)
	}

	return cells, found, nil
}

func (s *sinkService) WriteHeader(ctx context.Context, owner, sinkID string, cells []string) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.HeaderRowRequest{Cells: cells}); err != nil {
		log.Err(err).Str("func", "sinkService.WriteHeader").Str("sink_id", sinkID).Msg("invalid header row")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.checkOwner(ctx, owner, sinkID); err != nil {
		return err
	}

	if err := s.sinkRepository.InsertHeader(ctx, sinkID, cells); err != nil {
		log.Err(err).Str("func", "sinkService.WriteHeader").Str("sink_id", sinkID).Msg("header insert failed")
		return s.storageError("write header", err)
	}

	return nil
}

func (s *sinkService) AppendRows(ctx context.Context, owner, sinkID string, rows [][]string) (int, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.AppendRowsRequest{Rows: rows, Length: len(rows)}); err != nil {
		log.Err(err).Str("func", "sinkService.AppendRows").Str("sink_id", sinkID).Msg("invalid rows")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.checkOwner(ctx, owner, sinkID); err != nil {
		return 0, err
	}

	appended, err := s.sinkRepository.AppendRows(ctx, sinkID, rows)
	if err != nil {
		log.Err(err).Str("func", "sinkService.AppendRows").Str("sink_id", sinkID).Int("rows", len(rows)).Msg("append failed")
		return 0, s.storageError("append rows", err)
	}

	log.Debug().Str("sink_id", sinkID).Int("appended", appended).Msg("rows appended")
	return appended, nil
}

// checkOwner fails with store.ErrSinkNotFound unless owner created sinkID.
func (s *sinkService) checkOwner(ctx context.Context, owner, sinkID string) error {
	if _, err := s.sinkRepository.GetSink(ctx, sinkID, owner); err != nil {
		if !errors.Is(err, store.ErrSinkNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "sinkService.checkOwner").Str("sink_id", sinkID).Msg("sink lookup failed")
		}
		return s.storageError("get sink", err)
	}

	return nil
}

// storageError marks transient repository failures with
// ErrStorageUnavailable so the transport can ask the client to come back.
func (s *sinkService) storageError(op string, err error) error {
	if store.IsRetryable(s.classifier, err) {
		return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/models"
	"github.com/jackc/pgerrcode"
)

// sinkRepository is the PostgreSQL-backed implementation of
// [SinkRepository]. Header and data rows are stored as JSONB arrays of
// string cells.
type sinkRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSinkRepository constructs a [SinkRepository] backed by the provided
// database connection and logger.
func NewSinkRepository(db *DB, logger *logger.Logger) SinkRepository {
	logger.Debug().Msg("creating sink repository")
	return &sinkRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSink stores a new sink and returns it with the server-assigned
// creation time. An owner that is not a registered client yields
// [ErrClientNotFound].
func (r *sinkRepository) CreateSink(ctx context.Context, sink models.Sink) (models.Sink, error) {
	log := logger.FromContext(ctx)

	err := r.db.QueryRowContext(ctx, createSink, sink.ID, sink.Owner, sink.Title).Scan(&sink.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "*sinkRepository.CreateSink").
			Str("owner", sink.Owner).
			Msg("error creating sink")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Sink{}, ErrClientNotFound
		default:
			return models.Sink{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return sink, nil
}

// GetSink returns the sink only if it is owned by owner; any other sink,
// including a malformed id, is reported as [ErrSinkNotFound].
func (r *sinkRepository) GetSink(ctx context.Context, sinkID, owner string) (models.Sink, error) {
	log := logger.FromContext(ctx)

	var sink models.Sink
	err := r.db.QueryRowContext(ctx, getSink, sinkID, owner).Scan(&sink.ID, &sink.Owner, &sink.Title, &sink.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sink{}, ErrSinkNotFound
	}
	if err != nil {
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return models.Sink{}, ErrSinkNotFound
		}
		log.Err(err).
			Str("func", "*sinkRepository.GetSink").
			Str("sink_id", sinkID).
			Msg("error reading sink")
		return models.Sink{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return sink, nil
}

// GetHeader returns the header row of the sink; found is false when no
// header has been written yet.
func (r *sinkRepository) GetHeader(ctx context.Context, sinkID string) ([]string, bool, error) {
	log := logger.FromContext(ctx)

	var payload []byte
	err := r.db.QueryRowContext(ctx, getSinkHeader, sinkID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "*sinkRepository.GetHeader").
			Str("sink_id", sinkID).
			Msg("error reading sink header")
		return nil, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var cells []string
	if err = json.Unmarshal(payload, &cells); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cells, true, nil
}

// InsertHeader writes the header row once. A second write yields
// [ErrHeaderAlreadyExists]; an unknown sink yields [ErrSinkNotFound].
func (r *sinkRepository) InsertHeader(ctx context.Context, sinkID string, cells []string) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(cells)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, insertSinkHeader, sinkID, string(payload)); err != nil {
		log.Err(err).
			Str("func", "*sinkRepository.InsertHeader").
			Str("sink_id", sinkID).
			Msg("error writing sink header")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrHeaderAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return ErrSinkNotFound
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// AppendRows appends rows after the last stored row in a single
// transaction and returns the number of rows stored.
func (r *sinkRepository) AppendRows(ctx context.Context, sinkID string, rows [][]string) (int, error) {
	log := logger.FromContext(ctx)

	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*sinkRepository.AppendRows").
			Str("sink_id", sinkID).
			Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var appended int64
	for _, chunk := range chunkRows(rows, appendRowsChunk) {
		query, args, buildErr := buildAppendRowsQuery(sinkID, chunk)
		if buildErr != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "*sinkRepository.AppendRows").
				Str("sink_id", sinkID).
				Str("classification", r.db.errorClassificator.Classify(execErr).String()).
				Msg("failed to append rows")

			if postgresError(execErr) == pgerrcode.ForeignKeyViolation {
				return 0, ErrSinkNotFound
			}
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		affected, affErr := res.RowsAffected()
		if affErr != nil {
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
		}
		appended += affected
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "*sinkRepository.AppendRows").
			Str("sink_id", sinkID).
			Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return int(appended), nil
}

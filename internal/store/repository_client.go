// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/jackc/pgerrcode"
)

// clientRepository is the PostgreSQL-backed implementation of
// [ClientRepository]. It stores the argon2id hash of every client secret,
// never the secret itself.
type clientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClientRepository constructs a [ClientRepository] backed by the provided
// database connection and logger.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{
		db:     db,
		logger: logger,
	}
}

// CreateClient registers a client id with its secret hash.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrClientAlreadyExists].
//   - Any other driver-level error → [ErrExecutingStatement].
func (r *clientRepository) CreateClient(ctx context.Context, clientID, secretHash string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createClient, clientID, secretHash); err != nil {
		log.Err(err).
			Str("func", "*clientRepository.CreateClient").
			Str("client_id", clientID).
			Msg("error creating client")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrClientAlreadyExists
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// GetClientSecretHash returns the stored secret hash of clientID, or
// [ErrClientNotFound].
func (r *clientRepository) GetClientSecretHash(ctx context.Context, clientID string) (string, error) {
	log := logger.FromContext(ctx)

	var hash string
	err := r.db.QueryRowContext(ctx, getClientSecretHash, clientID).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrClientNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*clientRepository.GetClientSecretHash").
			Str("client_id", clientID).
			Msg("error reading client secret hash")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return hash, nil
}

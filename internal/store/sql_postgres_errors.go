// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database call may succeed when
// the caller repeats it later.
type ErrorClassification int

const (
	// NonRetryable failures repeat on every attempt (constraint violations,
	// bad input, schema mismatch).
	NonRetryable ErrorClassification = iota

	// Retryable failures are transient: lost connections, serialization
	// conflicts, lock contention.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for the sink
// server database.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and classifies it by SQLSTATE.
// Errors that are not PostgreSQL errors are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow,
		pgErr.Code == pgerrcode.LockNotAvailable,
		pgErr.Code == pgerrcode.TooManyConnections:
		return Retryable
	}

	return NonRetryable
}

// IsRetryable reports whether err, anywhere in its chain, is a transient
// failure according to classifier.
func IsRetryable(classifier ErrorClassificator, err error) bool {
	return err != nil && classifier.Classify(err) == Retryable
}

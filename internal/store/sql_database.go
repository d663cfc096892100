// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/migrations"
)

const (
	dialectSQLite   = "sqlite3"
	dialectPostgres = "pgx"
)

// DB wraps a *sql.DB with the dialect it was opened with, an error
// classifier and a logger.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations matching the dialect of db.
func (db *DB) Migrate() error {
	var err error
	switch db.dialect {
	case dialectSQLite:
		err = migrations.MigrateClient(db.DB)
	case dialectPostgres:
		err = migrations.MigrateServer(db.DB)
	default:
		err = fmt.Errorf("unsupported dialect %q", db.dialect)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMigrating, err)
	}
	return nil
}

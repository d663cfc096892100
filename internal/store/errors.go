// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-field-keeper/models"
)

// Sentinel errors returned by repository methods to signal well-known domain
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCampaignNotFound is returned when a write references a campaign id
	// that is not stored.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrEntryCampaignMismatch is returned when an entry is re-put under a
	// campaign different from the one it was created in.
	ErrEntryCampaignMismatch = errors.New("entry belongs to another campaign")

	// ErrSpreadsheetAlreadyAssigned is returned when a campaign already has a
	// different sink id bound to it.
	ErrSpreadsheetAlreadyAssigned = errors.New("campaign already has a sink assigned")

	// ErrClientAlreadyExists is returned when a sink server client id is
	// registered twice.
	ErrClientAlreadyExists = errors.New("client already exists")

	// ErrClientNotFound is returned when no sink server client matches the id.
	ErrClientNotFound = errors.New("client not found")

	// ErrSinkNotFound is returned when a sink id does not exist (or is not
	// owned by the caller).
	ErrSinkNotFound = errors.New("sink not found")

	// ErrHeaderAlreadyExists is returned when a header row is written to a
	// sink that already has one.
	ErrHeaderAlreadyExists = errors.New("sink header already exists")
)

// Low-level database operation errors. Each wraps [models.ErrStore], so a
// caller can classify any of them as a store failure with errors.Is.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = fmt.Errorf("%w: error building sql query", models.ErrStore)

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = fmt.Errorf("%w: error executing sql query", models.ErrStore)

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = fmt.Errorf("%w: failed to begin transaction", models.ErrStore)

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = fmt.Errorf("%w: failed to commit transaction", models.ErrStore)

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = fmt.Errorf("%w: failed to execute statement", models.ErrStore)

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = fmt.Errorf("%w: failed to scan row", models.ErrStore)

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = fmt.Errorf("%w: failed to scan rows", models.ErrStore)

	// ErrConnecting is returned when the database cannot be opened or pinged.
	ErrConnecting = fmt.Errorf("%w: failed to connect database", models.ErrStore)

	// ErrMigrating is returned when schema migrations fail.
	ErrMigrating = fmt.Errorf("%w: failed to migrate database", models.ErrStore)
)

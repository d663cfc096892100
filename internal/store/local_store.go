// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/models"
)

// localStore is the SQLite-backed implementation of [LocalStore].
//
// Timestamps are stored as Unix milliseconds in UTC; field definitions,
// field values and the entry location are stored as JSON text columns.
type localStore struct {
	*DB
	logger *logger.Logger
}

// NewLocalStore constructs a [LocalStore] on an open, migrated SQLite
// database.
func NewLocalStore(db *DB, logger *logger.Logger) LocalStore {
	logger.Debug().Msg("creating local store")
	return &localStore{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// PutCampaign inserts the campaign or replaces its name, description and
// field list. Entries are never touched and a stored spreadsheet id is never
// overwritten.
func (s *localStore) PutCampaign(ctx context.Context, campaign models.Campaign) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, upsertCampaign,
		campaign.ID,
		campaign.Name,
		campaign.Description,
		campaign.Fields,
		campaign.SpreadsheetID,
		toMillis(campaign.CreatedAt),
	)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.PutCampaign").
			Str("campaign_id", campaign.ID).
			Str("classification", s.errorClassificator.Classify(err).String()).
			Msg("failed to upsert campaign")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetCampaigns returns every stored campaign, newest first.
func (s *localStore) GetCampaigns(ctx context.Context) ([]models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCampaignsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localStore.GetCampaigns").Msg("failed to query campaigns")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	campaigns := make([]models.Campaign, 0)
	for rows.Next() {
		campaign, scanErr := scanCampaign(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "localStore.GetCampaigns").Msg("failed to scan campaign row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		campaigns = append(campaigns, campaign)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "localStore.GetCampaigns").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return campaigns, nil
}

// GetCampaign returns the campaign with the given id; found is false when
// no such campaign exists.
func (s *localStore) GetCampaign(ctx context.Context, id string) (models.Campaign, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCampaignQuery(id)
	if err != nil {
		return models.Campaign{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	campaign, err := scanCampaign(s.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Campaign{}, false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "localStore.GetCampaign").
			Str("campaign_id", id).
			Msg("failed to get campaign")
		return models.Campaign{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return campaign, true, nil
}

// DeleteCampaign removes the campaign and all of its entries in a single
// transaction. Deleting a missing campaign is not an error.
func (s *localStore) DeleteCampaign(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.DeleteCampaign").
			Str("campaign_id", id).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, deleteCampaignEntries, id)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.DeleteCampaign").
			Str("campaign_id", id).
			Msg("failed to delete campaign entries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	deletedEntries, _ := res.RowsAffected()

	if _, err = tx.ExecContext(ctx, deleteCampaign, id); err != nil {
		log.Err(err).
			Str("func", "localStore.DeleteCampaign").
			Str("campaign_id", id).
			Msg("failed to delete campaign")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "localStore.DeleteCampaign").
			Str("campaign_id", id).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().
		Str("func", "localStore.DeleteCampaign").
		Str("campaign_id", id).
		Int64("deleted_entries", deletedEntries).
		Msg("campaign deleted")

	return nil
}

// SetSpreadsheetID binds sinkID to the campaign if no sink is bound yet.
// Binding the same id again is a no-op; binding a different one fails with
// [ErrSpreadsheetAlreadyAssigned].
func (s *localStore) SetSpreadsheetID(ctx context.Context, campaignID, sinkID string) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.SetSpreadsheetID").
			Str("campaign_id", campaignID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var current sql.NullString
	err = tx.QueryRowContext(ctx, campaignSpreadsheet, campaignID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCampaignNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localStore.SetSpreadsheetID").
			Str("campaign_id", campaignID).
			Msg("failed to read current spreadsheet id")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if current.Valid {
		if current.String == sinkID {
			return nil
		}
		log.Warn().
			Str("func", "localStore.SetSpreadsheetID").
			Str("campaign_id", campaignID).
			Str("stored_sink_id", current.String).
			Str("sink_id", sinkID).
			Msg("campaign already bound to another sink")
		return ErrSpreadsheetAlreadyAssigned
	}

	if _, err = tx.ExecContext(ctx, assignSpreadsheet, sinkID, campaignID); err != nil {
		log.Err(err).
			Str("func", "localStore.SetSpreadsheetID").
			Str("campaign_id", campaignID).
			Msg("failed to assign spreadsheet id")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "localStore.SetSpreadsheetID").
			Str("campaign_id", campaignID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// PutEntry inserts the entry or replaces its data, location and update
// time. The owning campaign must exist and an existing entry must not move
// to another campaign. The synced flag never goes back to false and the
// creation time of an existing entry is kept.
func (s *localStore) PutEntry(ctx context.Context, entry models.Entry) error {
	log := logger.FromContext(ctx)

	location, err := encodeLocation(entry.Location)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.PutEntry").
			Str("entry_id", entry.ID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, campaignExists, entry.CampaignID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().
			Str("func", "localStore.PutEntry").
			Str("entry_id", entry.ID).
			Str("campaign_id", entry.CampaignID).
			Msg("entry references missing campaign")
		return ErrCampaignNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localStore.PutEntry").
			Str("campaign_id", entry.CampaignID).
			Msg("failed to check campaign existence")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var storedCampaignID string
	err = tx.QueryRowContext(ctx, entryCampaignID, entry.ID).Scan(&storedCampaignID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// new entry
	case err != nil:
		log.Err(err).
			Str("func", "localStore.PutEntry").
			Str("entry_id", entry.ID).
			Msg("failed to read stored entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	case storedCampaignID != entry.CampaignID:
		return ErrEntryCampaignMismatch
	}

	_, err = tx.ExecContext(ctx, upsertEntry,
		entry.ID,
		entry.CampaignID,
		entry.Data,
		location,
		boolToInt(entry.Synced),
		toMillis(entry.CreatedAt),
		toMillis(entry.UpdatedAt),
	)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.PutEntry").
			Str("entry_id", entry.ID).
			Msg("failed to upsert entry")
		if isForeignKeyViolation(err) {
			return ErrCampaignNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "localStore.PutEntry").
			Str("entry_id", entry.ID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// GetEntry returns the entry with the given id; found is false when no such
// entry exists.
func (s *localStore) GetEntry(ctx context.Context, id string) (models.Entry, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryQuery(id)
	if err != nil {
		return models.Entry{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanEntry(s.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "localStore.GetEntry").
			Str("entry_id", id).
			Msg("failed to get entry")
		return models.Entry{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, true, nil
}

// DeleteEntry removes the entry if present.
func (s *localStore) DeleteEntry(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, deleteEntry, id); err != nil {
		log.Err(err).
			Str("func", "localStore.DeleteEntry").
			Str("entry_id", id).
			Msg("failed to delete entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListEntriesByCampaign returns the campaign's entries, newest first.
func (s *localStore) ListEntriesByCampaign(ctx context.Context, campaignID string) ([]models.Entry, error) {
	query, args, err := buildListEntriesQuery(campaignID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.queryEntries(ctx, "localStore.ListEntriesByCampaign", campaignID, query, args)
}

// ListUnsyncedEntries returns the campaign's entries not yet appended to
// the sink, oldest first.
func (s *localStore) ListUnsyncedEntries(ctx context.Context, campaignID string) ([]models.Entry, error) {
	query, args, err := buildListUnsyncedQuery(campaignID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.queryEntries(ctx, "localStore.ListUnsyncedEntries", campaignID, query, args)
}

// MarkSynced sets synced = true on every listed entry in one transaction and
// returns how many entries changed state. Missing ids and entries that are
// already synced are skipped, so repeated calls are harmless.
func (s *localStore) MarkSynced(ctx context.Context, ids []string) (int64, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.MarkSynced").
			Int("ids_count", len(ids)).
			Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var flipped int64
	for _, chunk := range chunkIDs(ids, markSyncedChunk) {
		query, args, buildErr := buildMarkSyncedQuery(chunk)
		if buildErr != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "localStore.MarkSynced").
				Int("chunk_size", len(chunk)).
				Msg("failed to mark entries synced")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		affected, affErr := res.RowsAffected()
		if affErr != nil {
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
		}
		flipped += affected
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "localStore.MarkSynced").
			Int("ids_count", len(ids)).
			Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().
		Str("func", "localStore.MarkSynced").
		Int("ids_count", len(ids)).
		Int64("flipped", flipped).
		Msg("entries marked synced")

	return flipped, nil
}

func (s *localStore) queryEntries(ctx context.Context, funcName, campaignID, query string, args []any) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("campaign_id", campaignID).
			Msg("failed to query entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Str("campaign_id", campaignID).
				Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Str("campaign_id", campaignID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

func scanCampaign(row rowScanner) (models.Campaign, error) {
	var (
		campaign    models.Campaign
		spreadsheet sql.NullString
		createdAt   int64
	)

	err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Description,
		&campaign.Fields,
		&spreadsheet,
		&createdAt,
	)
	if err != nil {
		return models.Campaign{}, err
	}

	if spreadsheet.Valid {
		id := spreadsheet.String
		campaign.SpreadsheetID = &id
	}
	campaign.CreatedAt = fromMillis(createdAt)

	return campaign, nil
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var (
		entry     models.Entry
		location  sql.NullString
		synced    bool
		createdAt int64
		updatedAt int64
	)

	err := row.Scan(
		&entry.ID,
		&entry.CampaignID,
		&entry.Data,
		&location,
		&synced,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.Entry{}, err
	}

	if location.Valid && location.String != "" {
		var loc models.Location
		if err := json.Unmarshal([]byte(location.String), &loc); err != nil {
			return models.Entry{}, fmt.Errorf("decode entry location: %w", err)
		}
		entry.Location = &loc
	}
	entry.Synced = synced
	entry.CreatedAt = fromMillis(createdAt)
	entry.UpdatedAt = fromMillis(updatedAt)

	return entry, nil
}

func encodeLocation(loc *models.Location) (any, error) {
	if loc == nil {
		return nil, nil
	}
	payload, err := json.Marshal(loc)
	if err != nil {
		return nil, fmt.Errorf("encode entry location: %w", err)
	}
	return string(payload), nil
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

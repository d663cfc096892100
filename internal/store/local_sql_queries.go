// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// markSyncedChunk bounds the number of ids bound in one UPDATE statement so
// SQLite's host parameter limit is never hit.
const markSyncedChunk = 500

const (
	upsertCampaign = `
		INSERT INTO campaigns (id, name, description, fields, spreadsheet_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name           = excluded.name,
			description    = excluded.description,
			fields         = excluded.fields,
			spreadsheet_id = COALESCE(campaigns.spreadsheet_id, excluded.spreadsheet_id);`

	upsertEntry = `
		INSERT INTO entries (id, campaign_id, data, location, synced, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			data       = excluded.data,
			location   = excluded.location,
			synced     = MAX(entries.synced, excluded.synced),
			updated_at = excluded.updated_at;`

	campaignExists        = `SELECT 1 FROM campaigns WHERE id = ?;`
	entryCampaignID       = `SELECT campaign_id FROM entries WHERE id = ?;`
	campaignSpreadsheet   = `SELECT spreadsheet_id FROM campaigns WHERE id = ?;`
	assignSpreadsheet     = `UPDATE campaigns SET spreadsheet_id = ? WHERE id = ? AND spreadsheet_id IS NULL;`
	deleteCampaignEntries = `DELETE FROM entries WHERE campaign_id = ?;`
	deleteCampaign        = `DELETE FROM campaigns WHERE id = ?;`
	deleteEntry           = `DELETE FROM entries WHERE id = ?;`
)

var (
	campaignColumns = []string{"id", "name", "description", "fields", "spreadsheet_id", "created_at"}
	entryColumns    = []string{"id", "campaign_id", "data", "location", "synced", "created_at", "updated_at"}
)

func selectCampaigns() sq.SelectBuilder {
	return sq.Select(campaignColumns...).
		From("campaigns").
		PlaceholderFormat(sq.Question)
}

func selectEntries() sq.SelectBuilder {
	return sq.Select(entryColumns...).
		From("entries").
		PlaceholderFormat(sq.Question)
}

func buildGetCampaignsQuery() (string, []any, error) {
	return selectCampaigns().OrderBy("created_at DESC", "id DESC").ToSql()
}

func buildGetCampaignQuery(id string) (string, []any, error) {
	return selectCampaigns().Where(sq.Eq{"id": id}).ToSql()
}

func buildGetEntryQuery(id string) (string, []any, error) {
	return selectEntries().Where(sq.Eq{"id": id}).ToSql()
}

// buildListEntriesQuery lists a campaign's entries newest first; ids break
// ties between equal timestamps so the order is stable.
func buildListEntriesQuery(campaignID string) (string, []any, error) {
	return selectEntries().
		Where(sq.Eq{"campaign_id": campaignID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

// buildListUnsyncedQuery lists a campaign's unsynced entries oldest first, so
// appended rows follow capture order.
func buildListUnsyncedQuery(campaignID string) (string, []any, error) {
	return selectEntries().
		Where(sq.Eq{"campaign_id": campaignID, "synced": 0}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

// buildMarkSyncedQuery flips the watermark of the given ids. Rows already
// synced are excluded so the affected row count is the number of flips.
func buildMarkSyncedQuery(ids []string) (string, []any, error) {
	return sq.Update("entries").
		Set("synced", 1).
		Where(sq.Eq{"id": ids}).
		Where(sq.Eq{"synced": 0}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

func chunkIDs(ids []string, size int) [][]string {
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

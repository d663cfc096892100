// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// appendRowsChunk caps the number of rows in one multi-row INSERT, keeping
// the bound parameters well under PostgreSQL's limit.
const appendRowsChunk = 1000

const (
	createClient = `
		INSERT INTO clients (id, secret_hash)
		VALUES ($1, $2);`

	getClientSecretHash = `SELECT secret_hash FROM clients WHERE id = $1;`

	createSink = `
		INSERT INTO sinks (id, owner, title)
		VALUES ($1, $2, $3)
		RETURNING created_at;`

	getSink = `
		SELECT id, owner, title, created_at
		FROM sinks
		WHERE id = $1 AND owner = $2;`

	getSinkHeader = `SELECT cells FROM sink_headers WHERE sink_id = $1;`

	insertSinkHeader = `
		INSERT INTO sink_headers (sink_id, cells)
		VALUES ($1, $2);`
)

// buildAppendRowsQuery builds one multi-row INSERT into sink_rows. Rows keep
// their order through the BIGSERIAL id.
func buildAppendRowsQuery(sinkID string, rows [][]string) (string, []any, error) {
	insert := sq.Insert("sink_rows").
		Columns("sink_id", "cells").
		PlaceholderFormat(sq.Dollar)

	for i, row := range rows {
		cells, err := json.Marshal(row)
		if err != nil {
			return "", nil, fmt.Errorf("encode row %d: %w", i, err)
		}
		insert = insert.Values(sinkID, string(cells))
	}

	return insert.ToSql()
}

func chunkRows(rows [][]string, size int) [][][]string {
	chunks := make([][][]string, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		chunks = append(chunks, rows[start:end])
	}
	return chunks
}

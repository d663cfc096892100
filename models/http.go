// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CreateSinkRequest asks the sink server to create a new tabular sink.
type CreateSinkRequest struct {
	// Title is the human-readable sink title (the campaign name).
	Title string `json:"title"`
}

// CreateSinkResponse carries the identifier of a newly created sink.
type CreateSinkResponse struct {
	SinkID string `json:"sink_id"`
}

// HeaderRowRequest writes the first row of a sink.
type HeaderRowRequest struct {
	Cells []string `json:"cells"`
}

// HeaderRowResponse carries the first row of a sink.
type HeaderRowResponse struct {
	Cells []string `json:"cells"`
}

// AppendRowsRequest appends rows after the last row of a sink.
type AppendRowsRequest struct {
	// Rows are the string cells to append, in order.
	Rows [][]string `json:"rows"`

	// Length is the number of rows in Rows, used by the server as a
	// consistency check.
	Length int `json:"length"`
}

// AppendRowsResponse reports how many rows the server stored.
type AppendRowsResponse struct {
	Appended int `json:"appended"`
}

// TokenRequest exchanges client credentials for a bearer token.
type TokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// TokenResponse carries a signed bearer token and its expiry.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Sink is the server-side record of a tabular sink.
type Sink struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the collaborators the sync engine talks to: the
// identity provider that yields a credential and the remote tabular sink the
// rows are appended to.
//
// Two sinks ship with the package. [NewHTTPSinkAdapter] talks to the sink
// server over HTTP/REST; [NewWorkbookSinkAdapter] keeps every sink as a sheet
// of a local XLSX workbook.
//
// Sink failures wrap [models.ErrSink] and identity failures wrap
// [models.ErrAuth], so callers can classify them with [errors.Is]. HTTP status
// codes are additionally mapped to the transport sentinels in errors.go
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-field-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SinkAdapter is a title-creatable, row-appendable tabular resource
// identified by an opaque id. Cells are strings.
type SinkAdapter interface {
	// SetCredential stores the credential attached to all subsequent
	// requests.
	SetCredential(cred models.Credential)

	// CreateSink creates a new empty sink titled title and returns its id.
	CreateSink(ctx context.Context, title string) (string, error)

	// ReadHeaderRow returns the first row of the sink, or nil when the sink
	// has no rows yet.
	ReadHeaderRow(ctx context.Context, sinkID string) ([]string, error)

	// WriteHeaderRow writes row as the first row of an empty sink.
	WriteHeaderRow(ctx context.Context, sinkID string, row []string) error

	// AppendRows appends rows after the last row of the sink, in order.
	AppendRows(ctx context.Context, sinkID string, rows [][]string) error
}

// IdentityProvider yields a credential for the sink. Authenticate is
// idempotent: it returns a cached credential while it is still valid.
type IdentityProvider interface {
	Authenticate(ctx context.Context) (models.Credential, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-field-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues bearer tokens to sink server clients.
type AuthService interface {
	// RegisterClient stores a client id with the argon2id hash of its secret.
	RegisterClient(ctx context.Context, clientID, secret string) error

	// IssueToken verifies the client credentials and signs a token for them.
	IssueToken(ctx context.Context, req models.TokenRequest) (models.Token, error)

	// ParseToken validates a raw JWT and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SinkService operates the tabular sinks of the sink server. Every call is
// scoped to the owner, the client the sink was created by; sinks of other
// owners are reported as not found.
type SinkService interface {
	CreateSink(ctx context.Context, owner, title string) (models.Sink, error)

	// ReadHeader returns the header row of a sink; found is false while the
	// sink has none.
	ReadHeader(ctx context.Context, owner, sinkID string) (cells []string, found bool, err error)

	// WriteHeader stores the header row. It never replaces an existing one.
	WriteHeader(ctx context.Context, owner, sinkID string, cells []string) error

	// AppendRows stores rows after the last row of the sink and returns how
	// many were stored. The rows are stored all together or not at all.
	AppendRows(ctx context.Context, owner, sinkID string, rows [][]string) (int, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

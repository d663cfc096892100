// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// defaultClientDSN is the SQLite file used when no DSN is configured.
const defaultClientDSN = "field-keeper.db"

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version is reported in the client log on start.
	Version string
	// LogLevel is the minimum log level.
	LogLevel string
	// LogPath is the file the client log is appended to.
	LogPath string
}

// ClientIdentity holds the credentials the client authenticates with.
type ClientIdentity struct {
	ClientID     string
	ClientSecret string
}

// ClientAdapter holds the sink adapter settings used by the client.
type ClientAdapter struct {
	// Kind is either [SinkKindHTTP] or [SinkKindWorkbook].
	Kind string
	// HTTPAddress is the base URL of the sink server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// WorkbookPath is the XLSX file used by the workbook sink.
	WorkbookPath string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync job runs; zero means a single
	// sync pass.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Identity contains the client credentials.
	Identity ClientIdentity
	// Adapter contains the sink adapter settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields of cfg relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = defaultClientDSN
	}

	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
			LogPath:  cfg.App.LogPath,
		},
		Identity: ClientIdentity{
			ClientID:     cfg.Identity.ClientID,
			ClientSecret: cfg.Identity.ClientSecret,
		},
		Adapter: ClientAdapter{
			Kind:           cfg.Adapter.Kind,
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: dsn,
			},
			WorkbookPath: cfg.Storage.Workbook.Path,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}
}

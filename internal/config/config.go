// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported sink adapter kinds.
const (
	// SinkKindHTTP syncs campaigns to a remote sink server over HTTP.
	SinkKindHTTP = "http"
	// SinkKindWorkbook syncs campaigns into a local XLSX workbook.
	SinkKindWorkbook = "workbook"
)

// StructuredConfig is the top-level configuration container shared by the
// field client and the sink server. It aggregates all sub-configurations and
// is populated by merging values from a .env file, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token parameters, version and
	// logging.
	App App `envPrefix:"APP_"`

	// Identity holds the client credentials exchanged for a bearer token.
	// On the sink server the same pair registers the bootstrap client.
	Identity Identity `envPrefix:"IDENTITY_"`

	// Storage holds configuration for the persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the sink server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the sink adapter used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogPath is the file the field client appends its log to.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Identity holds client credentials.
type Identity struct {
	// ClientID identifies the field client to the sink server.
	// Env: IDENTITY_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret is the shared secret of ClientID.
	// Env: IDENTITY_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Workbook holds the local workbook sink settings.
	Workbook Workbook `envPrefix:"WORKBOOK_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the SQLite file path on the client or the PostgreSQL
	// connection string on the sink server.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workbook holds settings of the XLSX workbook sink.
type Workbook struct {
	// Path is the workbook file; it is created on first sync.
	// Env: STORAGE_WORKBOOK_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the sink server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the sink adapter settings of the field client.
type Adapter struct {
	// Kind selects the sink: "http" or "workbook".
	// Env: ADAPTER_SINK
	Kind string `env:"SINK"`

	// HTTPAddress is the base URL of the sink server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync job. Zero runs a
	// single sync pass.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. Sources are merged with mergo without override, so a field set by
// an earlier source is kept:
//  1. Environment variables (after loading the .env file into the process)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

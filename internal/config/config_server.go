// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds sink server application settings.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	Version       string
	LogLevel      string
}

// ServerHTTP holds the listener settings of the sink server.
type ServerHTTP struct {
	Address         string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// BootstrapClient is registered on start when both fields are set.
type BootstrapClient struct {
	ClientID     string
	ClientSecret string
}

// ServerConfig is the sink server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App       ServerApp
	HTTP      ServerHTTP
	DSN       string
	Bootstrap BootstrapClient
}

// GetServerConfig builds and validates the sink server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the fields of cfg relevant to the sink server.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
			LogLevel:      cfg.App.LogLevel,
		},
		HTTP: ServerHTTP{
			Address:         cfg.Server.HTTPAddress,
			RequestTimeout:  cfg.Server.RequestTimeout,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		},
		DSN: cfg.Storage.DB.DSN,
		Bootstrap: BootstrapClient{
			ClientID:     cfg.Identity.ClientID,
			ClientSecret: cfg.Identity.ClientSecret,
		},
	}
}

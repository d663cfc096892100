// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig] for values that are invalid
// regardless of which binary consumes it.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.App.TokenDuration < 0 || cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Adapter.Kind {
	case SinkKindHTTP:
		if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
			return ErrInvalidAdapterConfigs
		}
		if u, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil || u.Scheme == "" || u.Host == "" {
			return ErrInvalidAdapterConfigs
		}
		if cfg.Identity.ClientID == "" || cfg.Identity.ClientSecret == "" {
			return ErrInvalidIdentityConfigs
		}
	case SinkKindWorkbook:
		if cfg.Storage.WorkbookPath == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.HTTP.Address == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if (cfg.Bootstrap.ClientID == "") != (cfg.Bootstrap.ClientSecret == "") {
		return ErrInvalidIdentityConfigs
	}

	return nil
}

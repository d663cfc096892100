// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	// envFileVariable names a dotenv file to load instead of the default one.
	envFileVariable = "ENV_FILE"
	// defaultEnvFile is loaded when ENV_FILE is not set and the file exists.
	defaultEnvFile = ".env"
)

// loadDotEnv copies a dotenv file into the process environment without
// overriding variables that are already set. A file named by ENV_FILE must
// exist; the default .env is optional.
func loadDotEnv() error {
	path := os.Getenv(envFileVariable)
	if path == "" {
		path = defaultEnvFile
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}
	return nil
}

// parseEnv fills cfg from the APP_, IDENTITY_, STORAGE_, SERVER_, ADAPTER_
// and WORKERS_ variable groups declared on [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}

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

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. A bare PORT variable fills Server.HTTPAddress when SERVER_ADDRESS
// is not set.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" && cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":" + port
	}

	return nil
}

// loadDotEnv seeds the process environment from the given .env files.
// Missing files are skipped; variables already set are never overridden.
func loadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("error loading %s: %w", path, err)
		}
	}

	return nil
}

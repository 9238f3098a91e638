/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vrischmann/envconfig"
)

const (
	DefaultConfigDir = ".stripslab"
	DBStoreDir       = "dbstore"
)

// Config is the planservice process configuration, loaded from the
// environment (and, in cmd/planservice, a .env file via godotenv/autoload).
type Config struct {
	Port            int           `envconfig:"default=8090"`
	SearchTimeout   time.Duration `envconfig:"default=10s"`
	MaxSearchNodes  int           `envconfig:"default=200000,optional"`
	StoragePath     string        `envconfig:"optional"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Init(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.StoragePath != "" {
		return cfg, nil
	}
	path, err := defaultStoragePath()
	if err != nil {
		return Config{}, err
	}
	cfg.StoragePath = path
	return cfg, nil
}

func defaultStoragePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, DefaultConfigDir, DBStoreDir), nil
}

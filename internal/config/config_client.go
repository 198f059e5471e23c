// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage holds the local session store settings.
type ClientStorage struct {
	// DSN is the SQLite file path of the session store.
	DSN string
}

// ClientLog holds the client's logger settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the CLI client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Log     ClientLog
}

// GetClientConfig builds and validates the client configuration. Flags are
// read from args; whatever follows them (the command and its arguments) is
// returned unchanged.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withClientFlags(args).
		withJSON().
		withDefaults(clientDefaults())

	cfg, err := b.build((*StructuredConfig).validateClient)
	if err != nil {
		return nil, nil, fmt.Errorf("error get client config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{DSN: cfg.Storage.DB.DSN},
		Log:     ClientLog{Level: cfg.Log.Level, File: cfg.Log.File},
	}

	return clientCfg, b.rest, nil
}

// clientDataDir is where the client keeps its session store and log when no
// path is configured.
func clientDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "go-budget-tracker")
}

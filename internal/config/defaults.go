// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"
)

const (
	DefaultTokenIssuer      = "go-budget-tracker"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultPasswordHashCost = 10
	DefaultHTTPAddress      = ":5000"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultLogLevel         = "info"
	DefaultAdapterAddress   = "http://localhost:5000"
	DefaultAdapterTimeout   = 10 * time.Second
)

func serverDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			Version:          "dev",
		},
		Log: Log{Level: DefaultLogLevel},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}

func clientDefaults() *StructuredConfig {
	dir := clientDataDir()
	return &StructuredConfig{
		Log: Log{
			Level: DefaultLogLevel,
			File:  filepath.Join(dir, "client.log"),
		},
		Storage: Storage{DB: DB{DSN: filepath.Join(dir, "session.db")}},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-tracker/internal/config"
	"github.com/MKhiriev/go-budget-tracker/internal/logger"
)

// ClientStorages groups the CLI client's local repositories.
type ClientStorages struct {
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DSN, creating it if
// needed, and prepares the session table.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	sessions, err := NewSessionRepository(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &ClientStorages{SessionRepository: sessions, db: db}, nil
}

func (s *ClientStorages) Close() error {
	return s.db.Close()
}

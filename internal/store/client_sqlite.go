// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/models"
	_ "github.com/mattn/go-sqlite3"
)

const (
	createSessionTable = `CREATE TABLE IF NOT EXISTS session (
        id         INTEGER PRIMARY KEY CHECK (id = 1),
        token      TEXT     NOT NULL,
        user_id    TEXT     NOT NULL,
        server     TEXT     NOT NULL,
        created_at DATETIME NOT NULL
    );`

	upsertSession = `INSERT INTO session (id, token, user_id, server, created_at)
    VALUES (1, ?, ?, ?, ?)
    ON CONFLICT (id) DO UPDATE SET
        token = excluded.token,
        user_id = excluded.user_id,
        server = excluded.server,
        created_at = excluded.created_at;`

	selectSession = `SELECT token, user_id, server, created_at FROM session WHERE id = 1;`

	deleteSession = `DELETE FROM session;`
)

// NewConnectSQLite opens the SQLite file at dsn, creating its directory when
// missing.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{DB: conn, logger: log}, nil
}

// sessionRepository stores the single CLI login in SQLite.
type sessionRepository struct {
	db *DB
}

// NewSessionRepository creates the session table if needed.
func NewSessionRepository(ctx context.Context, db *DB) (SessionRepository, error) {
	if _, err := db.ExecContext(ctx, createSessionTable); err != nil {
		return nil, fmt.Errorf("error creating session table: %w", err)
	}
	return &sessionRepository{db: db}, nil
}

// SaveSession replaces the stored session.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := r.db.ExecContext(ctx, upsertSession, session.Token, session.UserID, session.Server, session.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// GetSession returns the stored session or [ErrSessionNotFound].
func (r *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := r.db.QueryRowContext(ctx, selectSession).Scan(&session.Token, &session.UserID, &session.Server, &session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteSession); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

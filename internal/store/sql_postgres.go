// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-budget-tracker/internal/config"
	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewConnectPostgres opens a pgx-backed connection pool for cfg.DSN and
// verifies it with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

func postgresError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

// uniqueViolationError maps a violation of one of the named unique
// constraints on users to its sentinel. ok is false for any other error.
func uniqueViolationError(err error) (error, bool) {
	pgErr := postgresError(err)
	if pgErr == nil || pgErr.Code != pgerrcode.UniqueViolation {
		return nil, false
	}

	switch pgErr.ConstraintName {
	case constraintUsersEmailUnique:
		return ErrEmailAlreadyExists, true
	case constraintUsersUsernameUnique:
		return ErrUsernameAlreadyExists, true
	default:
		return fmt.Errorf("unique violation on %s: %w", pgErr.ConstraintName, err), true
	}
}

// isRejectedValue reports whether Postgres refused the row because of a
// value: a failed CHECK constraint or a number too large for its column.
func isRejectedValue(err error) bool {
	pgErr := postgresError(err)
	if pgErr == nil {
		return false
	}
	return pgErr.Code == pgerrcode.CheckViolation || pgErr.Code == pgerrcode.NumericValueOutOfRange
}

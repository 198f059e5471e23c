// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/shopspring/decimal"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the stored row with its
// server-assigned timestamps.
//
// Error handling:
//   - users_email_unique violation → [ErrEmailAlreadyExists].
//   - users_username_unique violation → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.UserID,
		user.Username,
		user.Email,
		user.PasswordHash,
		string(user.Preferences.Currency),
		string(user.Preferences.Language),
	)

	created, err := scanUser(row)
	if err != nil {
		if uniqueErr, ok := uniqueViolationError(err); ok {
			log.Warn().Err(err).Str("func", "*userRepository.CreateUser").Msg("user already exists")
			return models.User{}, uniqueErr
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", r.db.wrapError(err))
	}

	return created, nil
}

// FindUserByEmail returns the user registered with email, or
// [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID returns the user with the given id, or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) UpdateBudget(ctx context.Context, userID string, total decimal.Decimal) (models.User, error) {
	return r.findOne(ctx, "*userRepository.UpdateBudget", updateUserBudget, userID, total)
}

// UpdateEmail changes the login email. A clash with another account yields
// [ErrEmailAlreadyExists].
func (r *userRepository) UpdateEmail(ctx context.Context, userID, email string) (models.User, error) {
	user, err := r.findOne(ctx, "*userRepository.UpdateEmail", updateUserEmail, userID, email)
	if err != nil {
		if uniqueErr, ok := uniqueViolationError(err); ok {
			return models.User{}, uniqueErr
		}
		return models.User{}, err
	}
	return user, nil
}

func (r *userRepository) UpdatePreferences(ctx context.Context, userID string, prefs models.Preferences) (models.User, error) {
	return r.findOne(ctx, "*userRepository.UpdatePreferences", updateUserPreferences,
		userID, string(prefs.Currency), string(prefs.Language))
}

// DeleteUser removes the user's transactions and then the user inside one
// database transaction. Nothing is deleted when the user does not exist.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		deleted, err := tx.ExecContext(ctx, deleteUserTransactions, userID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.wrapError(err))
		}
		transactionsDeleted, _ := deleted.RowsAffected()

		result, err := tx.ExecContext(ctx, deleteUser, userID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.wrapError(err))
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if rowsAffected == 0 {
			return ErrUserNotFound
		}

		log.Info().
			Str("func", "*userRepository.DeleteUser").
			Int64("transactions_deleted", transactionsDeleted).
			Msg("user account deleted")
		return nil
	})
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
	}

	return err
}

// ResetUserData deletes every transaction of the user and zeroes the budget
// inside one database transaction.
func (r *userRepository) ResetUserData(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, deleteUserTransactions, userID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.wrapError(err))
		}

		var err error
		user, err = scanUser(tx.QueryRowContext(ctx, resetUserBudget, userID))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, r.db.wrapError(err))
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Err(err).Str("func", "*userRepository.ResetUserData").Msg("error resetting user data")
		}
		return models.User{}, err
	}

	return user, nil
}

// findOne runs a query that yields at most one user row.
func (r *userRepository) findOne(ctx context.Context, funcName, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("func", funcName).Msg("user not found")
			return models.User{}, ErrUserNotFound
		}
		if _, ok := uniqueViolationError(err); ok {
			return models.User{}, err
		}
		log.Err(err).Str("func", funcName).Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", r.db.wrapError(err))
	}

	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user     models.User
		currency string
		language string
	)

	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Budget.Total,
		&user.Budget.Remaining,
		&currency,
		&language,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Preferences = models.Preferences{
		Currency: models.Currency(currency),
		Language: models.Language(language),
	}
	return user, nil
}

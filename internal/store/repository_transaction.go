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
)

// transactionRepository is the PostgreSQL-backed implementation of
// [TransactionRepository]. Queries are assembled with squirrel in
// sql_queries.go.
type transactionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *transactionRepository) Create(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTransactionQuery(tx)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Create").Msg("error building query")
		return models.Transaction{}, err
	}

	created, err := scanTransaction(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Create").Msg("error inserting transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.wrapError(err))
	}

	return created, nil
}

// FindByID returns the transaction regardless of its owner. Callers
// compare the returned UserID with the requesting user.
func (r *transactionRepository) FindByID(ctx context.Context, id string) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTransactionQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.FindByID").Msg("error building query")
		return models.Transaction{}, err
	}

	found, err := scanTransaction(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, ErrTransactionNotFound
		}
		log.Err(err).Str("func", "*transactionRepository.FindByID").Msg("error selecting transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.wrapError(err))
	}

	return found, nil
}

// Find lists the transactions matching filter, newest first. An empty
// result is an empty slice, never nil.
func (r *transactionRepository) Find(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindTransactionsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Find").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Find").Msg("error selecting transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.wrapError(err))
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		tx, scanErr := scanTransaction(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*transactionRepository.Find").Msg("error scanning transaction")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		transactions = append(transactions, tx)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*transactionRepository.Find").Msg("error iterating transactions")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.wrapError(err))
	}

	log.Debug().Str("func", "*transactionRepository.Find").Int("count", len(transactions)).Msg("transactions found")
	return transactions, nil
}

// Update applies the non-nil fields of update to the transaction identified
// by update.ID and owned by update.UserID.
func (r *transactionRepository) Update(ctx context.Context, update models.TransactionUpdate) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTransactionQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Update").Msg("error building query")
		return models.Transaction{}, err
	}

	updated, err := scanTransaction(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, ErrTransactionNotFound
		}
		log.Err(err).Str("func", "*transactionRepository.Update").Msg("error updating transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.wrapError(err))
	}

	return updated, nil
}

func (r *transactionRepository) Delete(ctx context.Context, id, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTransactionQuery(id, userID)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Delete").Msg("error building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Delete").Msg("error deleting transaction")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.wrapError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) SumBySubcategory(ctx context.Context, userID string) ([]models.SubcategoryTotal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSumBySubcategoryQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.SumBySubcategory").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.SumBySubcategory").Msg("error aggregating transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.wrapError(err))
	}
	defer rows.Close()

	totals := make([]models.SubcategoryTotal, 0)
	for rows.Next() {
		var (
			total    models.SubcategoryTotal
			category string
		)
		if err = rows.Scan(&category, &total.Subcategory, &total.Total, &total.Count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		total.Category = models.Category(category)
		totals = append(totals, total)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.wrapError(err))
	}

	return totals, nil
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var (
		tx       models.Transaction
		category string
	)

	err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.Amount,
		&category,
		&tx.Subcategory,
		&tx.Description,
		&tx.Date,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		return models.Transaction{}, err
	}

	tx.Category = models.Category(category)
	return tx, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-budget-tracker/models"
)

const (
	constraintUsersEmailUnique    = "users_email_unique"
	constraintUsersUsernameUnique = "users_username_unique"
)

// userColumns reads a user row aliased as "u". The remaining budget is
// derived from the user's expenses on every read so it never goes stale.
const userColumns = `u.id, u.username, u.email, u.password_hash, u.budget_total,
    GREATEST(0, u.budget_total - COALESCE((
        SELECT SUM(t.amount) FROM transactions t
        WHERE t.user_id = u.id AND t.category = 'expense'
    ), 0)) AS budget_remaining,
    u.currency, u.language, u.created_at, u.updated_at`

const (
	createUser = `WITH u AS (
        INSERT INTO users (id, username, email, password_hash, currency, language)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING *
    )
    SELECT ` + userColumns + ` FROM u;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users u
    WHERE u.email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users u
    WHERE u.id = $1;`

	updateUserBudget = `WITH u AS (
        UPDATE users SET budget_total = $2, updated_at = now()
        WHERE id = $1
        RETURNING *
    )
    SELECT ` + userColumns + ` FROM u;`

	updateUserEmail = `WITH u AS (
        UPDATE users SET email = $2, updated_at = now()
        WHERE id = $1
        RETURNING *
    )
    SELECT ` + userColumns + ` FROM u;`

	updateUserPreferences = `WITH u AS (
        UPDATE users SET currency = $2, language = $3, updated_at = now()
        WHERE id = $1
        RETURNING *
    )
    SELECT ` + userColumns + ` FROM u;`

	resetUserBudget = `WITH u AS (
        UPDATE users SET budget_total = 0, updated_at = now()
        WHERE id = $1
        RETURNING *
    )
    SELECT ` + userColumns + ` FROM u;`

	deleteUserTransactions = `DELETE FROM transactions WHERE user_id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`
)

const transactionsTable = "transactions"

var transactionColumns = []string{
	"id",
	"user_id",
	"amount",
	"category",
	"subcategory",
	"description",
	"date",
	"created_at",
	"updated_at",
}

var errEmptyUpdate = errors.New("no fields to update")

// psql is the squirrel builder configured for PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returningTransactionColumns() string {
	return "RETURNING " + strings.Join(transactionColumns, ", ")
}

func buildInsertTransactionQuery(tx models.Transaction) (string, []any, error) {
	query, args, err := psql.
		Insert(transactionsTable).
		Columns("id", "user_id", "amount", "category", "subcategory", "description", "date").
		Values(tx.ID, tx.UserID, tx.Amount, string(tx.Category), tx.Subcategory, tx.Description, tx.Date).
		Suffix(returningTransactionColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectTransactionQuery(id string) (string, []any, error) {
	query, args, err := psql.
		Select(transactionColumns...).
		From(transactionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindTransactionsQuery(filter models.TransactionFilter) (string, []any, error) {
	builder := psql.
		Select(transactionColumns...).
		From(transactionsTable).
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": string(filter.Category)})
	}
	if filter.Subcategory != "" {
		builder = builder.Where(sq.Eq{"subcategory": filter.Subcategory})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"date": *filter.To})
	}

	query, args, err := builder.OrderBy("date DESC", "created_at DESC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateTransactionQuery sets only the fields present in update. The
// WHERE clause is always scoped by both id and owner.
func buildUpdateTransactionQuery(update models.TransactionUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, errEmptyUpdate)
	}

	builder := psql.Update(transactionsTable)

	if update.Amount != nil {
		builder = builder.Set("amount", *update.Amount)
	}
	if update.Category != nil {
		builder = builder.Set("category", string(*update.Category))
	}
	if update.Subcategory != nil {
		builder = builder.Set("subcategory", *update.Subcategory)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Date != nil {
		builder = builder.Set("date", *update.Date)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix(returningTransactionColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteTransactionQuery(id, userID string) (string, []any, error) {
	query, args, err := psql.
		Delete(transactionsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSumBySubcategoryQuery(userID string) (string, []any, error) {
	query, args, err := psql.
		Select("category", "subcategory", "COALESCE(SUM(amount), 0) AS total", "COUNT(*) AS count").
		From(transactionsTable).
		Where(sq.Eq{"user_id": userID}).
		GroupBy("category", "subcategory").
		OrderBy("category", "total DESC", "subcategory").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

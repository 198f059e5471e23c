// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for users, their transactions and
// the CLI client's local session.
//
// Server-side repositories talk to PostgreSQL through database/sql and the
// pgx stdlib driver; PostgreSQL errors are translated into the sentinel
// errors declared in errors.go. The client session store is a small SQLite
// database.
package store

import (
	"context"

	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts, their budget and preferences.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateBudget sets the budget total and recomputes the remaining amount
	// from the user's expenses in the same statement.
	UpdateBudget(ctx context.Context, userID string, total decimal.Decimal) (models.User, error)
	UpdateEmail(ctx context.Context, userID, email string) (models.User, error)
	UpdatePreferences(ctx context.Context, userID string, prefs models.Preferences) (models.User, error)

	// DeleteUser removes the user and all of their transactions atomically.
	DeleteUser(ctx context.Context, userID string) error

	// ResetUserData removes all of the user's transactions and zeroes the
	// budget atomically. The account itself is kept.
	ResetUserData(ctx context.Context, userID string) (models.User, error)
}

// TransactionRepository persists income and expense records. Update and
// Delete are scoped by both the record id and its owner.
type TransactionRepository interface {
	Create(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	FindByID(ctx context.Context, id string) (models.Transaction, error)
	Find(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	Update(ctx context.Context, update models.TransactionUpdate) (models.Transaction, error)
	Delete(ctx context.Context, id, userID string) error

	// SumBySubcategory groups the user's transactions by category and
	// subcategory.
	SumBySubcategory(ctx context.Context, userID string) ([]models.SubcategoryTotal, error)
}

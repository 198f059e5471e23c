// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the budget tracker: account
// lifecycle, token issuing, budgets and transactions on the server side, and
// the session-aware operations the CLI client runs against the server.
//
// Every server service that touches a user's resource compares the owner of
// that resource with the user id the auth middleware put into the context,
// and refuses with [ErrUnauthorizedAccess] on mismatch.
package service

import (
	"context"

	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/shopspring/decimal"
)

type AuthService interface {
	// RegisterUser hashes the password and creates the account with default
	// preferences and an empty budget.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login returns the user matching the credentials, or
	// ErrInvalidCredentials for an unknown email or a wrong password.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw token and returns ErrTokenIsExpired or
	// ErrTokenIsInvalid on failure.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService manages the profile of an account. userID is the owner named
// by the request; it must match the authenticated user.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (models.User, error)
	UpdateBudget(ctx context.Context, userID string, total decimal.Decimal) (models.User, error)
	UpdateEmail(ctx context.Context, userID, email string) (models.User, error)
	UpdatePreferences(ctx context.Context, userID string, req models.UpdatePreferencesRequest) (models.User, error)
	DeleteAccount(ctx context.Context, userID string) error
	ResetData(ctx context.Context, userID string) (models.User, error)
}

// TransactionService manages the transactions of the authenticated user.
// The owner is always taken from the context.
type TransactionService interface {
	Create(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	Get(ctx context.Context, id string) (models.Transaction, error)
	Update(ctx context.Context, update models.TransactionUpdate) (models.Transaction, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (models.Summary, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TransactionServiceWrapper defines middleware composition for
// TransactionService. Implementations wrap an existing TransactionService to
// add behavior such as validation.
type TransactionServiceWrapper interface {
	Wrap(TransactionService) TransactionService
}

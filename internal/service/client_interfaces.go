// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/shopspring/decimal"
)

// ClientAuthService defines the client-side contract for registration and the
// local login session.
type ClientAuthService interface {
	// Register creates a new account on the server. It does not log in.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates against the server and stores the returned token
	// in the local session store, replacing any previous session.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Logout forgets the local session. Logging out twice is not an error.
	Logout(ctx context.Context) error

	// RestoreSession loads the stored session and hands its token to the
	// server adapter. Returns ErrNotLoggedIn when there is none or when it
	// was issued by a different server.
	RestoreSession(ctx context.Context) (models.Session, error)
}

// ClientProfileService runs the profile operations of the logged-in user.
type ClientProfileService interface {
	Profile(ctx context.Context) (models.User, error)
	SetBudget(ctx context.Context, total decimal.Decimal) (models.Budget, error)
	UpdateEmail(ctx context.Context, email string) (models.User, error)
	UpdatePreferences(ctx context.Context, req models.UpdatePreferencesRequest) (models.User, error)

	// DeleteAccount deletes the account on the server and then the local
	// session.
	DeleteAccount(ctx context.Context) error
	Reset(ctx context.Context) (models.User, error)
}

// ClientTransactionService runs the transaction operations of the logged-in
// user.
type ClientTransactionService interface {
	Add(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	ListBySubcategory(ctx context.Context, subcategory string) ([]models.Transaction, error)
	Get(ctx context.Context, id string) (models.Transaction, error)
	Update(ctx context.Context, id string, req models.UpdateTransactionRequest) (models.Transaction, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (models.Summary, error)
}

// ClientAppInfoService reports information about the server. It needs no
// session.
type ClientAppInfoService interface {
	ServerVersion(ctx context.Context) (string, error)
}

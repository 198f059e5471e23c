// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the CLI client to talk to the
// budget tracker server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go, so that callers can use [errors.Is] without knowing the status
// codes (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401). The
// server's message is kept in the error text and available via [Message].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the budget
// tracker server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. The server does not log the user in.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login exchanges credentials for a session token. On success the token
	// is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	GetProfile(ctx context.Context) (models.User, error)
	UpdateBudget(ctx context.Context, userID string, total decimal.Decimal) (models.Budget, error)
	UpdateEmail(ctx context.Context, userID, email string) (models.User, error)
	UpdatePreferences(ctx context.Context, userID string, req models.UpdatePreferencesRequest) (models.User, error)
	DeleteAccount(ctx context.Context, userID string) error
	ResetData(ctx context.Context, userID string) (models.User, error)

	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error)

	// ListTransactions returns the user's transactions, newest first,
	// narrowed by the optional fields of filter. filter.UserID is ignored;
	// the server takes the owner from the token.
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	ListTransactionsBySubcategory(ctx context.Context, subcategory string) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id string) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, req models.UpdateTransactionRequest) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	Summary(ctx context.Context) (models.Summary, error)

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)
}

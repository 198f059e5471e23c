// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/shopspring/decimal"
)

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=254"`
	// bcrypt rejects passwords longer than 72 bytes, so the limit is
	// counted in bytes rather than characters.
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// UpdateBudgetRequest is the body of PUT /api/auth/budget/{userId}.
type UpdateBudgetRequest struct {
	Total *decimal.Decimal `json:"total" validate:"required,gte=0,money"`
}

// UpdateEmailRequest is the body of PUT /api/auth/email/{userId}.
type UpdateEmailRequest struct {
	NewEmail string `json:"newEmail" validate:"required,email,max=254"`
}

// UpdatePreferencesRequest is the body of PUT /api/auth/preferences/{userId}.
type UpdatePreferencesRequest struct {
	Currency *Currency `json:"currency" validate:"omitempty,oneof=USD EUR GBP"`
	Language *Language `json:"language" validate:"omitempty,oneof=en es fr"`
}

// CreateTransactionRequest is the body of POST /api/transactions.
//
// The owner is always the authenticated user; a userId sent by the client
// is not part of the schema and is dropped while decoding.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"gt=0,money"`
	Category    Category        `json:"category" validate:"required,oneof=income expense"`
	Subcategory string          `json:"subcategory" validate:"required,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Date        string          `json:"date" validate:"required,txdate"`
}

// UpdateTransactionRequest is the body of PUT /api/transactions/{transactionId}.
// Only the provided fields are changed.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,gt=0,money"`
	Category    *Category        `json:"category" validate:"omitempty,oneof=income expense"`
	Subcategory *string          `json:"subcategory" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Date        *string          `json:"date" validate:"omitempty,txdate"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// BudgetResponse is returned after a budget update.
type BudgetResponse struct {
	Message string `json:"message"`
	Budget  Budget `json:"budget"`
}

// UserResponse is returned after a profile mutation.
type UserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// TransactionResponse is returned after a transaction is created or updated.
type TransactionResponse struct {
	Message     string      `json:"message"`
	Transaction Transaction `json:"transaction"`
}

// FieldError describes why a single request field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	TraceID string       `json:"traceId,omitempty"`
}

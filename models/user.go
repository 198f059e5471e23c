// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the ISO code of the currency the user keeps the budget in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// Language is the UI language preferred by the user.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
	LanguageFrench  Language = "fr"
)

// Default preferences applied to newly registered users.
const (
	DefaultCurrency = CurrencyUSD
	DefaultLanguage = LanguageEnglish
)

// Budget holds the user's spending limit. Both fields are never negative.
type Budget struct {
	// Total is the budget set by the user.
	Total decimal.Decimal `json:"total"`

	// Remaining is Total minus the sum of expense transactions, floored at zero.
	Remaining decimal.Decimal `json:"remaining"`
}

// Preferences are user-selected display settings.
type Preferences struct {
	Currency Currency `json:"currency"`
	Language Language `json:"language"`
}

// User represents an account entity used for authentication and as the owner
// of transactions.
type User struct {
	// UserID is the opaque unique identifier of the user (UUIDv7).
	UserID string `json:"id"`

	// Username is the unique display name chosen at registration.
	Username string `json:"username"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	Budget      Budget      `json:"budget"`
	Preferences Preferences `json:"preferences"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category splits transactions into money coming in and money going out.
type Category string

const (
	CategoryIncome  Category = "income"
	CategoryExpense Category = "expense"
)

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	return c == CategoryIncome || c == CategoryExpense
}

// Transaction is a single income or expense record owned by a user.
type Transaction struct {
	// ID is the opaque unique identifier of the transaction (UUIDv7).
	ID string `json:"id"`

	// Amount is always positive; the direction is given by Category.
	Amount decimal.Decimal `json:"amount"`

	Category Category `json:"category"`

	// Subcategory is a free-text label such as "groceries" or "salary".
	Subcategory string `json:"subcategory"`

	// Description is optional and at most 500 characters long.
	Description string `json:"description"`

	Date time.Time `json:"date"`

	// UserID references the owning user.
	UserID string `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}

// TransactionUpdate describes a partial update of a transaction.
// Nil fields are left untouched. ID and UserID select the row.
type TransactionUpdate struct {
	ID     string
	UserID string

	Amount      *decimal.Decimal
	Category    *Category
	Subcategory *string
	Description *string
	Date        *time.Time
}

// IsEmpty reports whether the update changes nothing.
func (u TransactionUpdate) IsEmpty() bool {
	return u.Amount == nil &&
		u.Category == nil &&
		u.Subcategory == nil &&
		u.Description == nil &&
		u.Date == nil
}

// TransactionFilter narrows a transaction listing. UserID is mandatory,
// every other field is optional.
type TransactionFilter struct {
	UserID      string
	Category    Category
	Subcategory string
	From        *time.Time
	To          *time.Time
}

// SubcategoryTotal is the aggregated amount of one category/subcategory pair.
type SubcategoryTotal struct {
	Category    Category        `json:"category"`
	Subcategory string          `json:"subcategory"`
	Total       decimal.Decimal `json:"total"`
	Count       int             `json:"count"`
}

// Summary is the budget overview of a user.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`

	Budget Budget `json:"budget"`

	Expenses []SubcategoryTotal `json:"expenses"`
	Incomes  []SubcategoryTotal `json:"incomes"`

	TransactionsCount int `json:"transactionsCount"`
}

// DateLayout is the short date format accepted alongside RFC 3339.
const DateLayout = time.DateOnly

// ParseDate parses s either as RFC 3339 or as YYYY-MM-DD (UTC midnight).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected RFC 3339 or %s", s, DateLayout)
	}

	return t, nil
}

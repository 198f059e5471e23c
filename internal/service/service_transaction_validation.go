// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-budget-tracker/internal/validators"
	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/shopspring/decimal"
)

const (
	maxSubcategoryLength = 100
	maxDescriptionLength = 500
)

// TransactionValidationService checks transaction values before they reach
// the wrapped TransactionService. Failures are returned as
// validators.ValidationErrors.
type TransactionValidationService struct {
	inner TransactionService
}

func NewTransactionValidationService() TransactionServiceWrapper {
	return &TransactionValidationService{}
}

func (v *TransactionValidationService) Wrap(inner TransactionService) TransactionService {
	v.inner = inner
	return v
}

func (v *TransactionValidationService) Create(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	tx.Subcategory = strings.TrimSpace(tx.Subcategory)

	var errs validators.ValidationErrors
	errs = checkAmount(errs, tx.Amount)
	errs = checkCategory(errs, tx.Category)
	errs = checkSubcategory(errs, tx.Subcategory)
	errs = checkDescription(errs, tx.Description)
	if tx.Date.IsZero() {
		errs = append(errs, models.FieldError{Field: "date", Message: "date is required"})
	}

	if len(errs) > 0 {
		return models.Transaction{}, fmt.Errorf("error during transaction validation before saving: %w", errs)
	}

	return v.inner.Create(ctx, tx)
}

func (v *TransactionValidationService) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	var errs validators.ValidationErrors
	if filter.Category != "" {
		errs = checkCategory(errs, filter.Category)
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		errs = append(errs, models.FieldError{Field: "from", Message: "from must not be after to"})
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("error during transaction filter validation: %w", errs)
	}

	return v.inner.List(ctx, filter)
}

func (v *TransactionValidationService) Get(ctx context.Context, id string) (models.Transaction, error) {
	return v.inner.Get(ctx, id)
}

func (v *TransactionValidationService) Update(ctx context.Context, update models.TransactionUpdate) (models.Transaction, error) {
	var errs validators.ValidationErrors
	if update.Amount != nil {
		errs = checkAmount(errs, *update.Amount)
	}
	if update.Category != nil {
		errs = checkCategory(errs, *update.Category)
	}
	if update.Subcategory != nil {
		trimmed := strings.TrimSpace(*update.Subcategory)
		update.Subcategory = &trimmed
		errs = checkSubcategory(errs, trimmed)
	}
	if update.Description != nil {
		errs = checkDescription(errs, *update.Description)
	}
	if update.Date != nil && update.Date.IsZero() {
		errs = append(errs, models.FieldError{Field: "date", Message: "date must not be empty"})
	}

	if len(errs) > 0 {
		return models.Transaction{}, fmt.Errorf("error during transaction validation before update: %w", errs)
	}

	return v.inner.Update(ctx, update)
}

func (v *TransactionValidationService) Delete(ctx context.Context, id string) error {
	return v.inner.Delete(ctx, id)
}

func (v *TransactionValidationService) Summary(ctx context.Context) (models.Summary, error) {
	return v.inner.Summary(ctx)
}

func checkAmount(errs validators.ValidationErrors, amount decimal.Decimal) validators.ValidationErrors {
	if !amount.IsPositive() {
		return append(errs, models.FieldError{Field: "amount", Message: "amount must be greater than 0"})
	}
	return errs
}

func checkCategory(errs validators.ValidationErrors, category models.Category) validators.ValidationErrors {
	if !category.IsValid() {
		return append(errs, models.FieldError{Field: "category", Message: "category must be one of: income expense"})
	}
	return errs
}

func checkSubcategory(errs validators.ValidationErrors, subcategory string) validators.ValidationErrors {
	switch {
	case subcategory == "":
		return append(errs, models.FieldError{Field: "subcategory", Message: "subcategory is required"})
	case utf8.RuneCountInString(subcategory) > maxSubcategoryLength:
		return append(errs, models.FieldError{Field: "subcategory", Message: fmt.Sprintf("subcategory must be at most %d characters long", maxSubcategoryLength)})
	}
	return errs
}

func checkDescription(errs validators.ValidationErrors, description string) validators.ValidationErrors {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return append(errs, models.FieldError{Field: "description", Message: fmt.Sprintf("description must be at most %d characters long", maxDescriptionLength)})
	}
	return errs
}

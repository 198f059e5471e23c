// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/internal/store"
	"github.com/MKhiriev/go-budget-tracker/internal/utils"
	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/shopspring/decimal"
)

type transactionService struct {
	transactionRepository store.TransactionRepository
	userRepository        store.UserRepository
	idGenerator           utils.IDGenerator

	logger *logger.Logger
}

func NewTransactionService(
	transactionRepository store.TransactionRepository,
	userRepository store.UserRepository,
	idGenerator utils.IDGenerator,
	logger *logger.Logger,
) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		userRepository:        userRepository,
		idGenerator:           idGenerator,
		logger:                logger,
	}
}

// Create stores tx for the authenticated user. Any owner set on tx is
// replaced.
func (s *transactionService) Create(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	tx.ID = s.idGenerator.Generate()
	tx.UserID = userID

	created, err := s.transactionRepository.Create(ctx, tx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("transaction creation failed")
		return models.Transaction{}, fmt.Errorf("transaction creation failed: %w", err)
	}

	return created, nil
}

func (s *transactionService) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	filter.UserID = userID

	transactions, err := s.transactionRepository.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("transaction listing failed: %w", err)
	}

	return transactions, nil
}

func (s *transactionService) Get(ctx context.Context, id string) (models.Transaction, error) {
	return s.fetchOwned(ctx, id)
}

// Update applies the non-nil fields of update after the owner check.
// The repository call is additionally scoped by owner.
func (s *transactionService) Update(ctx context.Context, update models.TransactionUpdate) (models.Transaction, error) {
	if update.IsEmpty() {
		return models.Transaction{}, ErrNoFieldsToUpdate
	}

	existing, err := s.fetchOwned(ctx, update.ID)
	if err != nil {
		return models.Transaction{}, err
	}
	update.UserID = existing.UserID

	updated, err := s.transactionRepository.Update(ctx, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("transaction_id", update.ID).Msg("transaction update failed")
		return models.Transaction{}, fmt.Errorf("transaction update failed: %w", err)
	}

	return updated, nil
}

func (s *transactionService) Delete(ctx context.Context, id string) error {
	existing, err := s.fetchOwned(ctx, id)
	if err != nil {
		return err
	}

	if err = s.transactionRepository.Delete(ctx, existing.ID, existing.UserID); err != nil {
		logger.FromContext(ctx).Err(err).Str("transaction_id", id).Msg("transaction deletion failed")
		return fmt.Errorf("transaction deletion failed: %w", err)
	}

	return nil
}

// Summary totals the user's transactions per category and subcategory and
// reports the budget alongside.
func (s *transactionService) Summary(ctx context.Context) (models.Summary, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return models.Summary{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.Summary{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	totals, err := s.transactionRepository.SumBySubcategory(ctx, userID)
	if err != nil {
		return models.Summary{}, fmt.Errorf("transaction summary failed: %w", err)
	}

	return buildSummary(user.Budget, totals), nil
}

// fetchOwned loads the transaction and checks that the authenticated user
// owns it. An id that is not a UUID cannot exist and is reported as not found.
func (s *transactionService) fetchOwned(ctx context.Context, id string) (models.Transaction, error) {
	if _, err := currentUserID(ctx); err != nil {
		return models.Transaction{}, err
	}
	if !utils.IsUUID(id) {
		return models.Transaction{}, store.ErrTransactionNotFound
	}

	tx, err := s.transactionRepository.FindByID(ctx, id)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("transaction lookup failed: %w", err)
	}

	if err = checkOwner(ctx, tx.UserID); err != nil {
		return models.Transaction{}, err
	}

	return tx, nil
}

func buildSummary(budget models.Budget, totals []models.SubcategoryTotal) models.Summary {
	summary := models.Summary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Budget:        budget,
		Expenses:      []models.SubcategoryTotal{},
		Incomes:       []models.SubcategoryTotal{},
	}

	for _, t := range totals {
		summary.TransactionsCount += t.Count
		switch t.Category {
		case models.CategoryIncome:
			summary.TotalIncome = summary.TotalIncome.Add(t.Total)
			summary.Incomes = append(summary.Incomes, t)
		case models.CategoryExpense:
			summary.TotalExpenses = summary.TotalExpenses.Add(t.Total)
			summary.Expenses = append(summary.Expenses, t)
		}
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpenses)

	return summary
}

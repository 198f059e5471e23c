// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-budget-tracker/internal/adapter"
	"github.com/MKhiriev/go-budget-tracker/internal/store"
	"github.com/MKhiriev/go-budget-tracker/models"
)

type clientTransactionService struct {
	*clientSession
}

func NewClientTransactionService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, server string) ClientTransactionService {
	return &clientTransactionService{clientSession: newClientSession(sessions, serverAdapter, server)}
}

func (c *clientTransactionService) Add(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
	if _, err := c.restore(ctx); err != nil {
		return models.Transaction{}, err
	}

	tx, err := c.adapter.CreateTransaction(ctx, req)
	return tx, mapAdapterError(err)
}

func (c *clientTransactionService) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	if _, err := c.restore(ctx); err != nil {
		return nil, err
	}

	list, err := c.adapter.ListTransactions(ctx, filter)
	return list, mapAdapterError(err)
}

func (c *clientTransactionService) ListBySubcategory(ctx context.Context, subcategory string) ([]models.Transaction, error) {
	if _, err := c.restore(ctx); err != nil {
		return nil, err
	}

	list, err := c.adapter.ListTransactionsBySubcategory(ctx, subcategory)
	return list, mapAdapterError(err)
}

func (c *clientTransactionService) Get(ctx context.Context, id string) (models.Transaction, error) {
	if _, err := c.restore(ctx); err != nil {
		return models.Transaction{}, err
	}

	tx, err := c.adapter.GetTransaction(ctx, id)
	return tx, mapAdapterError(err)
}

func (c *clientTransactionService) Update(ctx context.Context, id string, req models.UpdateTransactionRequest) (models.Transaction, error) {
	if _, err := c.restore(ctx); err != nil {
		return models.Transaction{}, err
	}

	tx, err := c.adapter.UpdateTransaction(ctx, id, req)
	return tx, mapAdapterError(err)
}

func (c *clientTransactionService) Delete(ctx context.Context, id string) error {
	if _, err := c.restore(ctx); err != nil {
		return err
	}

	return mapAdapterError(c.adapter.DeleteTransaction(ctx, id))
}

func (c *clientTransactionService) Summary(ctx context.Context) (models.Summary, error) {
	if _, err := c.restore(ctx); err != nil {
		return models.Summary{}, err
	}

	summary, err := c.adapter.Summary(ctx)
	return summary, mapAdapterError(err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-tracker/internal/adapter"
	"github.com/MKhiriev/go-budget-tracker/internal/store"
	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/shopspring/decimal"
)

type clientProfileService struct {
	*clientSession
}

func NewClientProfileService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, server string) ClientProfileService {
	return &clientProfileService{clientSession: newClientSession(sessions, serverAdapter, server)}
}

func (p *clientProfileService) Profile(ctx context.Context) (models.User, error) {
	if _, err := p.restore(ctx); err != nil {
		return models.User{}, err
	}

	user, err := p.adapter.GetProfile(ctx)
	return user, mapAdapterError(err)
}

func (p *clientProfileService) SetBudget(ctx context.Context, total decimal.Decimal) (models.Budget, error) {
	session, err := p.restore(ctx)
	if err != nil {
		return models.Budget{}, err
	}

	budget, err := p.adapter.UpdateBudget(ctx, session.UserID, total)
	return budget, mapAdapterError(err)
}

func (p *clientProfileService) UpdateEmail(ctx context.Context, email string) (models.User, error) {
	session, err := p.restore(ctx)
	if err != nil {
		return models.User{}, err
	}

	user, err := p.adapter.UpdateEmail(ctx, session.UserID, email)
	return user, mapAdapterError(err)
}

func (p *clientProfileService) UpdatePreferences(ctx context.Context, req models.UpdatePreferencesRequest) (models.User, error) {
	session, err := p.restore(ctx)
	if err != nil {
		return models.User{}, err
	}

	user, err := p.adapter.UpdatePreferences(ctx, session.UserID, req)
	return user, mapAdapterError(err)
}

func (p *clientProfileService) DeleteAccount(ctx context.Context) error {
	session, err := p.restore(ctx)
	if err != nil {
		return err
	}

	if err = p.adapter.DeleteAccount(ctx, session.UserID); err != nil {
		return mapAdapterError(err)
	}

	if err = p.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete local session: %w", err)
	}

	return nil
}

func (p *clientProfileService) Reset(ctx context.Context) (models.User, error) {
	session, err := p.restore(ctx)
	if err != nil {
		return models.User{}, err
	}

	user, err := p.adapter.ResetData(ctx, session.UserID)
	return user, mapAdapterError(err)
}

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

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	if err := s.authorize(ctx, userID); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// UpdateBudget sets the budget total; the remaining amount is recomputed
// from the user's expenses by the store.
func (s *userService) UpdateBudget(ctx context.Context, userID string, total decimal.Decimal) (models.User, error) {
	if err := s.authorize(ctx, userID); err != nil {
		return models.User{}, err
	}

	if total.IsNegative() {
		return models.User{}, fmt.Errorf("%w: budget total must not be negative", ErrInvalidDataProvided)
	}

	user, err := s.userRepository.UpdateBudget(ctx, userID, total)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("total", total.String()).Msg("budget update failed")
		return models.User{}, fmt.Errorf("budget update failed: %w", err)
	}

	return user, nil
}

func (s *userService) UpdateEmail(ctx context.Context, userID, email string) (models.User, error) {
	if err := s.authorize(ctx, userID); err != nil {
		return models.User{}, err
	}

	email = normalizeEmail(email)
	if email == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.UpdateEmail(ctx, userID, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("email update failed")
		return models.User{}, fmt.Errorf("email update failed: %w", err)
	}

	return user, nil
}

// UpdatePreferences changes only the preferences present in req.
func (s *userService) UpdatePreferences(ctx context.Context, userID string, req models.UpdatePreferencesRequest) (models.User, error) {
	if err := s.authorize(ctx, userID); err != nil {
		return models.User{}, err
	}

	if req.Currency == nil && req.Language == nil {
		return models.User{}, ErrNoFieldsToUpdate
	}

	current, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	prefs := current.Preferences
	if req.Currency != nil {
		prefs.Currency = *req.Currency
	}
	if req.Language != nil {
		prefs.Language = *req.Language
	}

	user, err := s.userRepository.UpdatePreferences(ctx, userID, prefs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Any("preferences", prefs).Msg("preferences update failed")
		return models.User{}, fmt.Errorf("preferences update failed: %w", err)
	}

	return user, nil
}

func (s *userService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.authorize(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().Msg("account deleted")
	return nil
}

// ResetData removes all transactions of the user and zeroes the budget.
func (s *userService) ResetData(ctx context.Context, userID string) (models.User, error) {
	if err := s.authorize(ctx, userID); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.ResetUserData(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("data reset failed")
		return models.User{}, fmt.Errorf("data reset failed: %w", err)
	}

	return user, nil
}

// authorize runs the owner check. An id that is not a UUID cannot name an
// account and is reported as store.ErrUserNotFound once ownership passes.
func (s *userService) authorize(ctx context.Context, userID string) error {
	if err := checkOwner(ctx, userID); err != nil {
		return err
	}
	if !utils.IsUUID(userID) {
		return store.ErrUserNotFound
	}

	return nil
}

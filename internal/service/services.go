// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-budget-tracker/internal/config"
	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/internal/store"
	"github.com/MKhiriev/go-budget-tracker/internal/utils"
)

type Services struct {
	AuthService        AuthService
	UserService        UserService
	TransactionService TransactionService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	idGenerator := utils.NewUUIDGenerator()
	auth, err := NewAuthService(storages.UserRepository, idGenerator, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	transactions := NewTransactionService(storages.TransactionRepository, storages.UserRepository, idGenerator, logger)

	return &Services{
		AuthService:        auth,
		UserService:        NewUserService(storages.UserRepository, logger),
		TransactionService: NewTransactionValidationService().Wrap(transactions),
		AppInfoService:     appInfo,
	}, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-budget-tracker/internal/app"
	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/shopspring/decimal"
)

type sessionOutput struct {
	Message   string    `json:"message"`
	UserID    string    `json:"userId"`
	Server    string    `json:"server"`
	CreatedAt time.Time `json:"createdAt"`
}

type versionOutput struct {
	Client models.AppBuildInfo `json:"client"`
	Server string              `json:"server"`
}

func (a *App) register(ctx context.Context, args []string) (any, error) {
	err := a.services.AuthService.Register(ctx, models.RegisterRequest{
		Username: args[0],
		Email:    args[1],
		Password: args[2],
	})
	if err != nil {
		return nil, err
	}
	return models.MessageResponse{Message: app.MsgUserRegistered}, nil
}

func (a *App) login(ctx context.Context, args []string) (any, error) {
	session, err := a.services.AuthService.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
	if err != nil {
		return nil, err
	}

	// the token stays in the session store
	return sessionOutput{
		Message:   "logged in",
		UserID:    session.UserID,
		Server:    session.Server,
		CreatedAt: session.CreatedAt,
	}, nil
}

func (a *App) logout(ctx context.Context, _ []string) (any, error) {
	if err := a.services.AuthService.Logout(ctx); err != nil {
		return nil, err
	}
	return models.MessageResponse{Message: "logged out"}, nil
}

func (a *App) profile(ctx context.Context, _ []string) (any, error) {
	return a.services.ProfileService.Profile(ctx)
}

func (a *App) budget(ctx context.Context, args []string) (any, error) {
	total, err := decimal.NewFromString(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: budget total %q is not a number", ErrUsage, args[0])
	}

	budget, err := a.services.ProfileService.SetBudget(ctx, total)
	if err != nil {
		return nil, err
	}
	return models.BudgetResponse{Message: app.MsgBudgetUpdated, Budget: budget}, nil
}

func (a *App) email(ctx context.Context, args []string) (any, error) {
	user, err := a.services.ProfileService.UpdateEmail(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return models.UserResponse{Message: app.MsgEmailUpdated, User: user}, nil
}

func (a *App) add(ctx context.Context, args []string) (any, error) {
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return nil, fmt.Errorf("%w: amount %q is not a number", ErrUsage, args[1])
	}

	tx, err := a.services.TransactionService.Add(ctx, models.CreateTransactionRequest{
		Category:    models.Category(args[0]),
		Amount:      amount,
		Subcategory: args[2],
		Date:        args[3],
		Description: strings.Join(args[4:], " "),
	})
	if err != nil {
		return nil, err
	}
	return models.TransactionResponse{Message: app.MsgTransactionAdded, Transaction: tx}, nil
}

func (a *App) list(ctx context.Context, args []string) (any, error) {
	var (
		list []models.Transaction
		err  error
	)
	if len(args) == 1 {
		list, err = a.services.TransactionService.ListBySubcategory(ctx, args[0])
	} else {
		list, err = a.services.TransactionService.List(ctx, models.TransactionFilter{})
	}
	if err != nil {
		return nil, err
	}

	if list == nil {
		list = []models.Transaction{}
	}
	return list, nil
}

func (a *App) get(ctx context.Context, args []string) (any, error) {
	return a.services.TransactionService.Get(ctx, args[0])
}

func (a *App) delete(ctx context.Context, args []string) (any, error) {
	if err := a.services.TransactionService.Delete(ctx, args[0]); err != nil {
		return nil, err
	}
	return models.MessageResponse{Message: app.MsgTransactionDeleted}, nil
}

func (a *App) summary(ctx context.Context, _ []string) (any, error) {
	return a.services.TransactionService.Summary(ctx)
}

func (a *App) reset(ctx context.Context, _ []string) (any, error) {
	user, err := a.services.ProfileService.Reset(ctx)
	if err != nil {
		return nil, err
	}
	return models.UserResponse{Message: app.MsgDataReset, User: user}, nil
}

func (a *App) deleteAccount(ctx context.Context, _ []string) (any, error) {
	if err := a.services.ProfileService.DeleteAccount(ctx); err != nil {
		return nil, err
	}
	return models.MessageResponse{Message: app.MsgAccountDeleted}, nil
}

func (a *App) version(ctx context.Context, _ []string) (any, error) {
	serverVersion, err := a.services.AppInfoService.ServerVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting server version: %w", err)
	}
	return versionOutput{Client: a.buildInfo, Server: serverVersion}, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-budget-tracker/internal/adapter"
	"github.com/MKhiriev/go-budget-tracker/internal/store"
	"github.com/MKhiriev/go-budget-tracker/models"
)

// clientSession binds the local session store to the server adapter.
// It is shared by all client services of one process.
type clientSession struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter

	// server is the address the adapter talks to. A session saved for
	// another address is ignored.
	server string
}

func newClientSession(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, server string) *clientSession {
	return &clientSession{sessions: sessions, adapter: serverAdapter, server: server}
}

func (c *clientSession) restore(ctx context.Context) (models.Session, error) {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrNotLoggedIn
		}
		return models.Session{}, fmt.Errorf("read local session: %w", err)
	}

	if session.Server != c.server || session.Token == "" {
		return models.Session{}, ErrNotLoggedIn
	}

	c.adapter.SetToken(session.Token)
	return session, nil
}

type clientAuthService struct {
	*clientSession
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, server string) ClientAuthService {
	return &clientAuthService{clientSession: newClientSession(sessions, serverAdapter, server)}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := a.adapter.Register(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	session := models.Session{
		Token:     resp.Token,
		UserID:    resp.UserID,
		Server:    a.server,
		CreatedAt: time.Now().UTC(),
	}

	if err = a.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save local session: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete local session: %w", err)
	}

	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	return a.restore(ctx)
}

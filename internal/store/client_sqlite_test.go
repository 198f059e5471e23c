// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-budget-tracker/internal/config"
	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "nested", "session.db")

	storages, err := NewClientStorages(context.Background(), config.ClientStorage{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

func TestSessionRepository_Empty(t *testing.T) {
	sessions := newTestClientStorages(t).SessionRepository

	_, err := sessions.GetSession(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	sessions := newTestClientStorages(t).SessionRepository

	first := models.Session{
		Token:     "token-1",
		UserID:    "user-1",
		Server:    "http://localhost:5000",
		CreatedAt: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, sessions.SaveSession(ctx, first))

	got, err := sessions.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Token, got.Token)
	assert.Equal(t, first.UserID, got.UserID)
	assert.Equal(t, first.Server, got.Server)
	assert.True(t, first.CreatedAt.Equal(got.CreatedAt))

	second := first
	second.Token = "token-2"
	second.UserID = "user-2"
	require.NoError(t, sessions.SaveSession(ctx, second))

	got, err = sessions.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", got.Token)
	assert.Equal(t, "user-2", got.UserID)

	require.NoError(t, sessions.DeleteSession(ctx))
	_, err = sessions.GetSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_PersistsAcrossConnections(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, storages.SessionRepository.SaveSession(ctx, models.Session{
		Token: "persisted", UserID: "user-1", Server: "http://localhost:5000", CreatedAt: time.Now(),
	}))
	require.NoError(t, storages.Close())

	reopened, err := NewClientStorages(ctx, config.ClientStorage{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.SessionRepository.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Token)
}

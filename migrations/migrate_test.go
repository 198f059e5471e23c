// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(sql.ErrConnDone)
	mock.ExpectExec(".*").WillReturnError(sql.ErrConnDone)

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 2)

	for _, name := range files {
		data, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)

		content := string(data)
		assert.True(t, strings.Contains(content, "-- +goose Up"), "%s has no Up section", name)
		assert.True(t, strings.Contains(content, "-- +goose Down"), "%s has no Down section", name)
	}
}

func TestUsersMigration_NamedUniqueConstraints(t *testing.T) {
	data, err := fs.ReadFile(embedMigrations, "00001_create_users.sql")
	require.NoError(t, err)

	assert.Contains(t, string(data), "users_email_unique")
	assert.Contains(t, string(data), "users_username_unique")
}

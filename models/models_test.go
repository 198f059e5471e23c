// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", input: "2026-10-01", want: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", input: " 2026-10-01 ", want: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", input: "2026-10-01T12:30:00Z", want: time.Date(2026, 10, 1, 12, 30, 0, 0, time.UTC)},
		{name: "rfc3339 with offset", input: "2026-10-01T12:30:00+02:00", want: time.Date(2026, 10, 1, 10, 30, 0, 0, time.UTC)},
		{name: "day out of range", input: "2026-02-30", wantErr: true},
		{name: "us format", input: "10/01/2026", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestCategory_IsValid(t *testing.T) {
	assert.True(t, CategoryIncome.IsValid())
	assert.True(t, CategoryExpense.IsValid())
	assert.False(t, Category("transfer").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestTransactionUpdate_IsEmpty(t *testing.T) {
	assert.True(t, TransactionUpdate{ID: "id", UserID: "user"}.IsEmpty())

	amount := decimal.NewFromInt(5)
	assert.False(t, TransactionUpdate{Amount: &amount}.IsEmpty())
}

func TestUser_PasswordHashIsNotSerialized(t *testing.T) {
	raw, err := json.Marshal(User{UserID: "u1", Email: "alice@example.com", PasswordHash: "$2a$10$secret"})
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret")
	assert.Contains(t, string(raw), `"id":"u1"`)
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc123")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: abc123\n", info.String())

	raw, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.0.0","date":"N/A","commit":"abc123"}`, string(raw))
}

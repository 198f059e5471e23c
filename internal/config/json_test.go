// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeTempFile(t, `{
		"app": {"token_sign_key": "json-secret", "token_duration": "6h", "password_hash_cost": 12, "version": "2.0.0"},
		"log": {"level": "debug"},
		"storage": {"db": {"dsn": "postgres://json/budget"}},
		"server": {"http_address": ":7000", "request_timeout": "20s", "cors_allowed_origins": ["http://spa.test"]},
		"adapter": {"http_address": "http://localhost:7000", "request_timeout": 1000000000}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 6*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "postgres://json/budget", cfg.Storage.DB.DSN)
	assert.Equal(t, ":7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://spa.test"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = parseJSON(writeTempFile(t, `{not json`))
	assert.Error(t, err)

	_, err = parseJSON(writeTempFile(t, `{"app": {"token_duration": "forever"}}`))
	assert.Error(t, err)
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`5`), &d))
	assert.Equal(t, time.Duration(5), time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))

	out, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(out))
}

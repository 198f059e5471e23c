// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "test-issuer"
	testSignKey = "secret-key"
)

// signClaims signs arbitrary claims, bypassing GenerateJWTToken's checks.
func signClaims(t *testing.T, method jwt.SigningMethod, claims jwt.Claims, key any) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "user-1", time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "user-1", token.UserID)

	claims, ok := token.Token.Claims.(*models.Claims)
	require.True(t, ok, "claims must be *models.Claims")
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 2*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "user-1", time.Hour, testSignKey},
		{"empty user id", testIssuer, "", time.Hour, testSignKey},
		{"zero duration", testIssuer, "user-1", 0, testSignKey},
		{"negative duration", testIssuer, "user-1", -time.Hour, testSignKey},
		{"empty key", testIssuer, "user-1", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, "user-1", 24*time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	tokenString := signClaims(t, jwt.SigningMethodHS256, &models.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			IssuedAt:  jwt.NewNumericDate(past.Add(-24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
	}, []byte(testSignKey))

	_, err := ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrJWTExpired)
	assert.NotErrorIs(t, err, ErrJWTInvalid)
}

func TestValidateAndParseJWTToken_Invalid(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, "user-1", time.Hour, testSignKey)
	require.NoError(t, err)

	expiredWithOtherKey := signClaims(t, jwt.SigningMethodHS256, &models.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, []byte("other-key"))

	noExpiry := signClaims(t, jwt.SigningMethodHS256, &models.Claims{
		UserID:           "user-1",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: testIssuer},
	}, []byte(testSignKey))

	noUserID := signClaims(t, jwt.SigningMethodHS256, &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, []byte(testSignKey))

	otherAlg := signClaims(t, jwt.SigningMethodHS512, &models.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, []byte(testSignKey))

	tests := []struct {
		name        string
		tokenString string
		signKey     string
		issuer      string
	}{
		{name: "wrong sign key", tokenString: valid.SignedString, signKey: "wrong-key", issuer: testIssuer},
		{name: "tampered signature", tokenString: valid.SignedString + "x", signKey: testSignKey, issuer: testIssuer},
		{name: "wrong issuer", tokenString: valid.SignedString, signKey: testSignKey, issuer: "someone-else"},
		{name: "garbage", tokenString: "not.a.token", signKey: testSignKey, issuer: testIssuer},
		{name: "expired and signed with another key", tokenString: expiredWithOtherKey, signKey: testSignKey, issuer: testIssuer},
		{name: "missing expiry", tokenString: noExpiry, signKey: testSignKey, issuer: testIssuer},
		{name: "missing id claim", tokenString: noUserID, signKey: testSignKey, issuer: testIssuer},
		{name: "unexpected algorithm", tokenString: otherAlg, signKey: testSignKey, issuer: testIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.tokenString, tt.signKey, tt.issuer)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrJWTInvalid), "expected ErrJWTInvalid, got %v", err)
			assert.False(t, errors.Is(err, ErrJWTExpired))
		})
	}
}

func TestParseBearerToken_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "empty token", header: "Bearer ", wantErr: true},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "lowercase scheme", header: "bearer abc", wantErr: true},
		{name: "extra parts", header: "Bearer abc def", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

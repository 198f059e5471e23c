// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-budget-tracker/internal/app"
	"github.com/MKhiriev/go-budget-tracker/internal/service"
	"github.com/MKhiriev/go-budget-tracker/internal/store"
	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validRegistration = models.RegisterRequest{
	Username: "alice",
	Email:    "alice@example.com",
	Password: "password123",
}

func newHandlerWithAuth(auth service.AuthService) *Handler {
	return newTestHandler(&service.Services{AuthService: auth})
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	var got models.RegisterRequest
	h := newHandlerWithAuth(&mockAuthService{
		registerUserFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			got = req
			return models.User{UserID: aliceID, Username: req.Username}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", encodeBody(t, validRegistration))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, validRegistration, got)

	var body models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, app.MsgUserRegistered, body.Message)
	assert.NotContains(t, rec.Body.String(), validRegistration.Password)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeError(t, rec).Message)
}

func TestRegister_ValidationErrors(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{})
	bad := models.RegisterRequest{Username: "al", Email: "not-an-email", Password: "short"}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", encodeBody(t, bad))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, app.MsgValidationFailed, body.Message)

	fields := make([]string, 0, len(body.Errors))
	for _, fe := range body.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"username", "email", "password"}, fields)
}

func TestRegister_PasswordOverByteLimit(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{
		registerUserFn: func(context.Context, models.RegisterRequest) (models.User, error) {
			t.Fatal("a password over 72 bytes must not reach the service")
			return models.User{}, nil
		},
	})

	// 25 runes, 75 bytes
	reg := validRegistration
	reg.Password = strings.Repeat("€", 25)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", encodeBody(t, reg))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, app.MsgValidationFailed, body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "password", body.Errors[0].Field)
	assert.Contains(t, body.Errors[0].Message, "72 bytes")
}

func TestRegister_Duplicates(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "email", err: store.ErrEmailAlreadyExists, message: app.MsgUserAlreadyExists},
		{name: "username", err: store.ErrUsernameAlreadyExists, message: app.MsgUsernameAlreadyTaken},
		{name: "wrapped email", err: fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists), message: app.MsgUserAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(&mockAuthService{
				registerUserFn: func(context.Context, models.RegisterRequest) (models.User, error) {
					return models.User{}, tt.err
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", encodeBody(t, validRegistration))
			rec := httptest.NewRecorder()

			h.register(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec).Message)
		})
	}
}

func TestRegister_UnexpectedError(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{
		registerUserFn: func(context.Context, models.RegisterRequest) (models.User, error) {
			return models.User{}, errors.New("pq: relation users does not exist")
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", encodeBody(t, validRegistration))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, app.MsgInternalServerError, body.Message)
	assert.NotContains(t, rec.Body.String(), "relation")
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	h := newHandlerWithAuth(&mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			assert.Equal(t, "alice@example.com", req.Email)
			return models.User{UserID: aliceID}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			assert.Equal(t, aliceID, user.UserID)
			return models.Token{SignedString: signedToken, UserID: aliceID}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		encodeBody(t, models.LoginRequest{Email: "alice@example.com", Password: "password123"}))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var body models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.LoginResponse{Token: signedToken, UserID: aliceID}, body)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLogin_InvalidCredentials(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	})

	var bodies []string
	for _, email := range []string{"nobody@example.com", "alice@example.com"} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			encodeBody(t, models.LoginRequest{Email: email, Password: "wrong"}))
		rec := httptest.NewRecorder()

		h.login(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, app.MsgInvalidCredentials, decodeError(t, rec).Message)
		assert.Empty(t, rec.Header().Get("Authorization"))
		bodies = append(bodies, rec.Body.String())
	}
	assert.Equal(t, bodies[0], bodies[1])
}

func TestLogin_MissingFields(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, decodeError(t, rec).Errors, 2)
}

func TestLogin_CreateTokenFails(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.User, error) {
			return models.User{UserID: aliceID}, nil
		},
		createTokenFn: func(context.Context, models.User) (models.Token, error) {
			return models.Token{}, fmt.Errorf("%w: empty sign key", service.ErrTokenCreationFailed)
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		encodeBody(t, models.LoginRequest{Email: "alice@example.com", Password: "password123"}))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-budget-tracker/internal/app"
	"github.com/MKhiriev/go-budget-tracker/internal/service"
	"github.com/MKhiriev/go-budget-tracker/internal/utils"
	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "no space", header: "BearerToken", wantErr: ErrInvalidAuthorizationHeader},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "lowercase scheme", header: "bearer token", wantErr: ErrInvalidAuthorizationHeader},
		{name: "three parts", header: "Bearer a b", wantErr: ErrInvalidAuthorizationHeader},
		{name: "scheme only with space", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		parseTokenFn   func(ctx context.Context, s string) (models.Token, error)
		expectedStatus int
		wantMessage    string
		nextCalled     bool
	}{
		{
			name:           "missing header → 401",
			expectedStatus: http.StatusUnauthorized,
			wantMessage:    app.MsgMissingToken,
		},
		{
			name:           "malformed header → 401",
			authHeader:     "Token abc",
			expectedStatus: http.StatusUnauthorized,
			wantMessage:    app.MsgMissingToken,
		},
		{
			name:       "valid token → next called",
			authHeader: "Bearer valid-token",
			parseTokenFn: func(context.Context, string) (models.Token, error) {
				return models.Token{UserID: aliceID}, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:       "expired token → 403",
			authHeader: "Bearer expired-token",
			parseTokenFn: func(context.Context, string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpired
			},
			expectedStatus: http.StatusForbidden,
			wantMessage:    app.MsgTokenIsExpired,
		},
		{
			name:       "tampered token → 403",
			authHeader: "Bearer bad-token",
			parseTokenFn: func(context.Context, string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsInvalid
			},
			expectedStatus: http.StatusForbidden,
			wantMessage:    app.MsgTokenIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parse := tt.parseTokenFn
			if parse == nil {
				parse = func(context.Context, string) (models.Token, error) {
					t.Fatal("ParseToken should not be called")
					return models.Token{}, nil
				}
			}
			h := newHandlerWithAuth(&mockAuthService{parseTokenFn: parse})

			nextCalled := false
			var capturedUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.nextCalled {
				assert.Equal(t, aliceID, capturedUserID)
				return
			}
			assert.Equal(t, tt.wantMessage, decodeError(t, rr).Message)
		})
	}
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newHandlerWithAuth(validTokenAuth())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	var wg sync.WaitGroup
	codes := make([]int, 20)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			header := "Bearer good-token"
			if i%2 == 1 {
				header = "Bearer forged-token"
			}
			codes[i] = executeAuth(h, header, next).Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		if i%2 == 1 {
			assert.Equal(t, http.StatusForbidden, code)
		} else {
			assert.Equal(t, http.StatusNoContent, code)
		}
	}
}

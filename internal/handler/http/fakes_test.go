// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-budget-tracker/internal/config"
	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/internal/service"
	"github.com/MKhiriev/go-budget-tracker/internal/utils"
	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	aliceID   = "0190f1e2-7a10-7000-8000-00000000a11c"
	bobID     = "0190f1e2-7a10-7000-8000-0000000000b0"
	aliceTxID = "0190f1e2-7a10-7000-8000-0000000000a1"
)

// ─────────────────────────────────────────────
// Service fakes. Each method field can be overridden per test case; an unset
// field panics, which fails the test that reached it.
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockUserService struct {
	getProfileFn        func(ctx context.Context, userID string) (models.User, error)
	updateBudgetFn      func(ctx context.Context, userID string, total decimal.Decimal) (models.User, error)
	updateEmailFn       func(ctx context.Context, userID, email string) (models.User, error)
	updatePreferencesFn func(ctx context.Context, userID string, req models.UpdatePreferencesRequest) (models.User, error)
	deleteAccountFn     func(ctx context.Context, userID string) error
	resetDataFn         func(ctx context.Context, userID string) (models.User, error)
}

func (m *mockUserService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockUserService) UpdateBudget(ctx context.Context, userID string, total decimal.Decimal) (models.User, error) {
	return m.updateBudgetFn(ctx, userID, total)
}

func (m *mockUserService) UpdateEmail(ctx context.Context, userID, email string) (models.User, error) {
	return m.updateEmailFn(ctx, userID, email)
}

func (m *mockUserService) UpdatePreferences(ctx context.Context, userID string, req models.UpdatePreferencesRequest) (models.User, error) {
	return m.updatePreferencesFn(ctx, userID, req)
}

func (m *mockUserService) DeleteAccount(ctx context.Context, userID string) error {
	return m.deleteAccountFn(ctx, userID)
}

func (m *mockUserService) ResetData(ctx context.Context, userID string) (models.User, error) {
	return m.resetDataFn(ctx, userID)
}

type mockTransactionService struct {
	createFn  func(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	listFn    func(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	getFn     func(ctx context.Context, id string) (models.Transaction, error)
	updateFn  func(ctx context.Context, update models.TransactionUpdate) (models.Transaction, error)
	deleteFn  func(ctx context.Context, id string) error
	summaryFn func(ctx context.Context) (models.Summary, error)
}

func (m *mockTransactionService) Create(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	return m.createFn(ctx, tx)
}

func (m *mockTransactionService) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	return m.listFn(ctx, filter)
}

func (m *mockTransactionService) Get(ctx context.Context, id string) (models.Transaction, error) {
	return m.getFn(ctx, id)
}

func (m *mockTransactionService) Update(ctx context.Context, update models.TransactionUpdate) (models.Transaction, error) {
	return m.updateFn(ctx, update)
}

func (m *mockTransactionService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockTransactionService) Summary(ctx context.Context) (models.Summary, error) {
	return m.summaryFn(ctx)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(svcs *service.Services) *Handler {
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, config.Server{HTTPAddress: ":5000"}, logger.Nop())
}

func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// asUser returns r as the auth middleware would pass it on for userID.
func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(utils.WithUserID(r.Context(), userID))
}

// withURLParams attaches chi route parameters, as the router does.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// validTokenAuth accepts "good-token" for aliceID and nothing else.
func validTokenAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString == "good-token" {
				return models.Token{UserID: aliceID}, nil
			}
			return models.Token{}, service.ErrTokenIsInvalid
		},
	}
}

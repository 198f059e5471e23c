// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-budget-tracker/internal/config"
	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/internal/utils"
	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter] via POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter] via POST /api/auth/login. The token is
// taken from the response body, or from the Authorization response header
// when the body carries none.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if result.Token == "" {
		result.Token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
	}

	h.SetToken(result.Token)
	return result, nil
}

func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/auth/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) UpdateBudget(ctx context.Context, userID string, total decimal.Decimal) (models.Budget, error) {
	var result models.BudgetResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("userId", userID).
		SetBody(models.UpdateBudgetRequest{Total: &total}).
		SetResult(&result).
		Put("/api/auth/budget/{userId}")
	if err != nil {
		return models.Budget{}, fmt.Errorf("update budget request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Budget{}, err
	}

	return result.Budget, nil
}

func (h *httpServerAdapter) UpdateEmail(ctx context.Context, userID, email string) (models.User, error) {
	return h.putUser(ctx, "/api/auth/email/{userId}", userID, models.UpdateEmailRequest{NewEmail: email})
}

func (h *httpServerAdapter) UpdatePreferences(ctx context.Context, userID string, req models.UpdatePreferencesRequest) (models.User, error) {
	return h.putUser(ctx, "/api/auth/preferences/{userId}", userID, req)
}

func (h *httpServerAdapter) ResetData(ctx context.Context, userID string) (models.User, error) {
	return h.putUser(ctx, "/api/auth/reset-data/{userId}", userID, nil)
}

func (h *httpServerAdapter) DeleteAccount(ctx context.Context, userID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("userId", userID).
		Delete("/api/auth/delete-account/{userId}")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
	var result models.TransactionResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/transactions")
	if err != nil {
		return models.Transaction{}, fmt.Errorf("create transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	return result.Transaction, nil
}

func (h *httpServerAdapter) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	req := h.authedRequest(ctx)
	if filter.Category != "" {
		req.SetQueryParam("category", string(filter.Category))
	}
	if filter.Subcategory != "" {
		req.SetQueryParam("subcategory", filter.Subcategory)
	}
	if filter.From != nil {
		req.SetQueryParam("from", filter.From.Format(models.DateLayout))
	}
	if filter.To != nil {
		req.SetQueryParam("to", filter.To.Format(models.DateLayout))
	}

	return h.getTransactions(req, "/api/transactions")
}

func (h *httpServerAdapter) ListTransactionsBySubcategory(ctx context.Context, subcategory string) ([]models.Transaction, error) {
	req := h.authedRequest(ctx).SetPathParam("subcategory", subcategory)

	return h.getTransactions(req, "/api/transactions/subcategory/{subcategory}")
}

func (h *httpServerAdapter) GetTransaction(ctx context.Context, id string) (models.Transaction, error) {
	var tx models.Transaction

	resp, err := h.authedRequest(ctx).
		SetPathParam("transactionId", id).
		SetResult(&tx).
		Get("/api/transactions/{transactionId}")
	if err != nil {
		return models.Transaction{}, fmt.Errorf("get transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	return tx, nil
}

func (h *httpServerAdapter) UpdateTransaction(ctx context.Context, id string, req models.UpdateTransactionRequest) (models.Transaction, error) {
	var result models.TransactionResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("transactionId", id).
		SetBody(req).
		SetResult(&result).
		Put("/api/transactions/{transactionId}")
	if err != nil {
		return models.Transaction{}, fmt.Errorf("update transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	return result.Transaction, nil
}

func (h *httpServerAdapter) DeleteTransaction(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("transactionId", id).
		Delete("/api/transactions/{transactionId}")
	if err != nil {
		return fmt.Errorf("delete transaction request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Summary(ctx context.Context) (models.Summary, error) {
	var summary models.Summary

	resp, err := h.authedRequest(ctx).
		SetResult(&summary).
		Get("/api/transactions/summary")
	if err != nil {
		return models.Summary{}, fmt.Errorf("summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Summary{}, err
	}

	return summary, nil
}

// Version implements [ServerAdapter]. The endpoint answers in plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) putUser(ctx context.Context, path, userID string, body any) (models.User, error) {
	var result models.UserResponse

	req := h.authedRequest(ctx).
		SetPathParam("userId", userID).
		SetResult(&result)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Put(path)
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

func (h *httpServerAdapter) getTransactions(req *resty.Request, path string) ([]models.Transaction, error) {
	var transactions []models.Transaction

	resp, err := req.SetResult(&transactions).Get(path)
	if err != nil {
		return nil, fmt.Errorf("list transactions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

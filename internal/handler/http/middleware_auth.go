// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-budget-tracker/internal/app"
	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/internal/service"
	"github.com/MKhiriev/go-budget-tracker/internal/utils"
	"github.com/MKhiriev/go-budget-tracker/models"
)

// auth is the bearer token gate of the protected routes.
//
// A missing or malformed Authorization header is answered with 401. A token
// that fails verification is answered with 403, with a distinct message for
// an expired one. On success the token's user id is stored in the request
// context under [utils.UserIDCtxKey] and the request logger is tagged with it.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Warn().Err(err).Msg("request without a usable bearer token")
			writeMessage(w, r, http.StatusUnauthorized, models.ErrorResponse{Message: app.MsgMissingToken})
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			message := app.MsgTokenIsInvalid
			if errors.Is(err, service.ErrTokenIsExpired) {
				message = app.MsgTokenIsExpired
			}
			log.Warn().Err(err).Msg("token rejected")
			writeMessage(w, r, http.StatusForbidden, models.ErrorResponse{Message: message})
			return
		}

		ctx = utils.WithUserID(ctx, token.UserID)
		ctx = log.WithUserID(token.UserID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from a header of the exact form
//
//	Authorization: Bearer <token>
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidAuthorizationHeader
	}

	if parts[1] == "" {
		return "", ErrEmptyToken
	}

	return parts[1], nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrJWTExpired is returned by ValidateAndParseJWTToken when the token
	// signature is valid but the current time is at or past its expiry.
	ErrJWTExpired = errors.New("jwt is expired")

	// ErrJWTInvalid is returned by ValidateAndParseJWTToken for every other
	// failure: bad signature, unexpected algorithm, wrong issuer, malformed
	// token or missing user id claim.
	ErrJWTInvalid = errors.New("jwt is invalid")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - id        : the user ID, read by the auth middleware
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID, for standard tooling
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or
// the duration is not positive.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-budget-tracker", userID, 24*time.Hour, "secret")
func GenerateJWTToken(issuer string, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check
//   - id claim presence
//
// The signature is verified before any claim, so a tampered token is always
// reported as [ErrJWTInvalid] even when it is also expired.
//
// Returns:
//
//	models.Token - contains the parsed jwt.Token object and the extracted UserID
//	error        - wraps ErrJWTExpired or ErrJWTInvalid
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrJWTExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrJWTInvalid, err)
	}

	if claims.UserID == "" {
		return models.Token{}, fmt.Errorf("%w: empty id claim", ErrJWTInvalid)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: claims.UserID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The header must consist of exactly the "Bearer" scheme and a
// non-empty token separated by a single space.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(authorizationHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

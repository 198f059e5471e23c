// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/internal/utils"
)

// checkOwner compares the authenticated user in ctx with ownerID. A missing
// identity counts as a mismatch.
func checkOwner(ctx context.Context, ownerID string) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok || userID != ownerID {
		logger.FromContext(ctx).Warn().
			Str("owner_id", ownerID).
			Msg("access to a resource of another user denied")
		return ErrUnauthorizedAccess
	}

	return nil
}

// currentUserID returns the authenticated user or ErrUnauthorizedAccess.
func currentUserID(ctx context.Context) (string, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return "", ErrUnauthorizedAccess
	}

	return userID, nil
}

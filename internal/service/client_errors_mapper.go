// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-budget-tracker/internal/adapter"
	"github.com/MKhiriev/go-budget-tracker/internal/app"
	"github.com/MKhiriev/go-budget-tracker/internal/store"
	"github.com/MKhiriev/go-budget-tracker/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Unknown errors are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.Message(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		var respErr *adapter.ResponseError
		if errors.As(err, &respErr) && len(respErr.Errors) > 0 {
			return validators.ValidationErrors(respErr.Errors)
		}

		switch msg {
		case app.MsgUserAlreadyExists:
			return store.ErrEmailAlreadyExists
		case app.MsgUsernameAlreadyTaken:
			return store.ErrUsernameAlreadyExists
		case app.MsgNoFieldsToUpdate:
			return ErrNoFieldsToUpdate
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			return ErrInvalidCredentials
		}
		return ErrNotLoggedIn

	case errors.Is(err, adapter.ErrForbidden):
		switch msg {
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenIsInvalid:
			return ErrTokenIsInvalid
		}
		return ErrUnauthorizedAccess

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgUserNotFound:
			return store.ErrUserNotFound
		case app.MsgTransactionNotFound:
			return store.ErrTransactionNotFound
		}

	case errors.Is(err, adapter.ErrServiceUnavailable):
		return store.ErrStorageUnavailable
	}

	return err
}

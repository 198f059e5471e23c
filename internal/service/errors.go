// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login both for an unknown email
	// and for a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrUnauthorizedAccess is returned when the authenticated user is not
	// the owner of the resource being read or changed.
	ErrUnauthorizedAccess = errors.New("unauthorized access to another user's data")

	ErrNoFieldsToUpdate      = errors.New("no fields to update")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")

	// ErrNotLoggedIn is returned by client services that need a session when
	// none is stored locally.
	ErrNotLoggedIn = errors.New("not logged in")
)

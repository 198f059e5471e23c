// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the HTTP handlers and
// the CLI client.
//
// The server writes these strings into the "message" field of JSON response
// bodies; the client matches on them to turn a response back into a typed
// error. Keeping them in one place keeps both sides in step.
package app

// Error messages.
const (
	// MsgMissingToken is returned when the Authorization header is absent or
	// is not exactly "Bearer <token>".
	MsgMissingToken = "Access denied. Missing or malformed token."

	// MsgTokenIsExpired is returned when a bearer token has a valid signature
	// but its expiry time has passed.
	MsgTokenIsExpired = "Token has expired. Please log in again."

	// MsgTokenIsInvalid is returned for any other token verification failure.
	MsgTokenIsInvalid = "Invalid token. Access forbidden."

	// MsgInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid credentials."

	MsgUserAlreadyExists    = "User already exists."
	MsgUsernameAlreadyTaken = "Username is already taken."

	MsgUserNotFound        = "User not found."
	MsgTransactionNotFound = "Transaction not found."

	// MsgAccessDenied is returned when the authenticated user attempts to
	// access or modify a resource that belongs to a different user.
	MsgAccessDenied = "Unauthorized to access this resource."

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "Invalid data provided."

	// MsgValidationFailed accompanies a list of rejected fields.
	MsgValidationFailed = "Validation failed."

	MsgNoFieldsToUpdate = "No fields to update."

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error."

	// MsgServiceUnavailable is returned when the database is temporarily
	// unreachable; the request may be retried.
	MsgServiceUnavailable = "Service temporarily unavailable. Please retry."

	MsgRouteNotFound    = "Route not found."
	MsgMethodNotAllowed = "Method not allowed."
)

// Success messages.
const (
	MsgAPIRunning = "API is running..."

	MsgUserRegistered     = "User registered successfully."
	MsgBudgetUpdated      = "Budget updated successfully."
	MsgEmailUpdated       = "Email updated successfully."
	MsgPreferencesUpdated = "Preferences updated successfully."
	MsgAccountDeleted     = "User account and related transactions deleted successfully."
	MsgDataReset          = "User data reset successfully."

	MsgTransactionAdded   = "Transaction added successfully!"
	MsgTransactionUpdated = "Transaction updated successfully!"
	MsgTransactionDeleted = "Transaction deleted successfully!"
)

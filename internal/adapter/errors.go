// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-budget-tracker/models"
)

// Sentinels for non-2xx responses, one per status the server uses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrUnexpectedStatus covers every other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// ResponseError is a non-2xx response decoded from the server's error body.
// It matches one of the sentinels above under errors.Is.
type ResponseError struct {
	StatusCode int
	Message    string
	Errors     []models.FieldError
	TraceID    string

	kind error
}

// NewResponseError builds the error for a response with the given status.
func NewResponseError(statusCode int, message string, fieldErrors []models.FieldError) *ResponseError {
	return &ResponseError{
		StatusCode: statusCode,
		Message:    message,
		Errors:     fieldErrors,
		kind:       kindOf(statusCode),
	}
}

func (e *ResponseError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s: %s", e.kind, e.Message)
	}
	return fmt.Sprintf("%s: %s %v", e.kind, e.Message, e.Errors)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}

// Message returns the server message carried by err, or "" when err is not
// a ResponseError.
func Message(err error) string {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.Message
	}
	return ""
}

func kindOf(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return ErrUnexpectedStatus
	}
}

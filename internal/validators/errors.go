// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-budget-tracker/models"
)

var (
	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationErrors lists every rejected field of a single request.
// It matches ErrValidationFailed under errors.Is.
type ValidationErrors []models.FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e ValidationErrors) Unwrap() error {
	return ErrValidationFailed
}

// Fields returns the rejected fields carried by err, or nil when err is not
// a ValidationErrors.
func Fields(err error) []models.FieldError {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-budget-tracker/internal/app"
	"github.com/MKhiriev/go-budget-tracker/models"
)

// marshalFailureBody is sent when a response body cannot be encoded. It is
// shaped like every other error body so clients can decode it the same way.
var marshalFailureBody, _ = json.Marshal(models.ErrorResponse{Message: app.MsgInternalServerError})

// WriteJSON encodes data and writes it with statusCode. Decimal amounts
// keep their string form. It returns the number of body bytes written.
//
// The body is encoded before any header goes out, so a value that cannot
// be encoded turns the reply into a 500 instead of a truncated 2xx.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(marshalFailureBody)
		return 0, fmt.Errorf("error encoding %T response: %w", data, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(body)
}

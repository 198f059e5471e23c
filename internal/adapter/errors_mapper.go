// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for a 2xx response and a *ResponseError
// otherwise. A JSON error body is decoded; any other body is kept verbatim as
// the message.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Message == "" {
		body = models.ErrorResponse{Message: strings.TrimSpace(string(resp.Body()))}
	}
	if body.Message == "" {
		body.Message = http.StatusText(resp.StatusCode())
	}

	respErr := NewResponseError(resp.StatusCode(), body.Message, body.Errors)
	respErr.TraceID = body.TraceID

	return respErr
}

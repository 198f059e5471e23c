// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-budget-tracker/internal/app"
	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/internal/service"
	"github.com/MKhiriev/go-budget-tracker/internal/store"
	"github.com/MKhiriev/go-budget-tracker/internal/utils"
	"github.com/MKhiriev/go-budget-tracker/internal/validators"
	"github.com/MKhiriev/go-budget-tracker/models"
)

type errorReply struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorReply{
	validators.ErrValidationFailed: {http.StatusBadRequest, app.MsgValidationFailed},
	service.ErrInvalidDataProvided: {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrNoFieldsToUpdate:    {http.StatusBadRequest, app.MsgNoFieldsToUpdate},
	ErrInvalidJSON:                 {http.StatusBadRequest, app.MsgInvalidDataProvided},
	store.ErrEmailAlreadyExists:    {http.StatusBadRequest, app.MsgUserAlreadyExists},
	store.ErrUsernameAlreadyExists: {http.StatusBadRequest, app.MsgUsernameAlreadyTaken},
	store.ErrValueOutOfRange:       {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrInvalidCredentials:  {http.StatusUnauthorized, app.MsgInvalidCredentials},
	ErrNoUserInContext:             {http.StatusUnauthorized, app.MsgMissingToken},
	service.ErrTokenIsExpired:      {http.StatusForbidden, app.MsgTokenIsExpired},
	service.ErrTokenIsInvalid:      {http.StatusForbidden, app.MsgTokenIsInvalid},
	service.ErrUnauthorizedAccess:  {http.StatusForbidden, app.MsgAccessDenied},
	store.ErrUserNotFound:          {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrTransactionNotFound:   {http.StatusNotFound, app.MsgTransactionNotFound},
	store.ErrStorageUnavailable:    {http.StatusServiceUnavailable, app.MsgServiceUnavailable},
	validators.ErrUnsupportedType:  {http.StatusInternalServerError, app.MsgInternalServerError},
	service.ErrTokenCreationFailed: {http.StatusInternalServerError, app.MsgInternalServerError},
}

func replyFromError(err error) errorReply {
	for target, reply := range errorStatusMap {
		if errors.Is(err, target) {
			return reply
		}
	}
	return errorReply{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return replyFromError(err).status
}

// writeError logs err and writes the JSON error body. Server-side failures
// get a generic message; their detail stays in the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	reply := replyFromError(err)

	if reply.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", reply.status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", reply.status).Msg("request rejected")
	}

	writeMessage(w, r, reply.status, models.ErrorResponse{
		Message: reply.message,
		Errors:  validators.Fields(err),
	})
}

// writeMessage writes an error body with the given status, stamping the
// request's trace id.
func writeMessage(w http.ResponseWriter, r *http.Request, status int, body models.ErrorResponse) {
	body.TraceID = traceIDFromContext(r.Context())
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-budget-tracker/internal/app"
	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/go-chi/chi/v5"
)

const userIDParam = "userId"

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) updateBudget(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBudgetRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateBudget(r.Context(), chi.URLParam(r, userIDParam), *req.Total)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.BudgetResponse{Message: app.MsgBudgetUpdated, Budget: user.Budget}, http.StatusOK)
}

func (h *Handler) updateEmail(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateEmailRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateEmail(r.Context(), chi.URLParam(r, userIDParam), req.NewEmail)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.UserResponse{Message: app.MsgEmailUpdated, User: user}, http.StatusOK)
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePreferencesRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdatePreferences(r.Context(), chi.URLParam(r, userIDParam), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.UserResponse{Message: app.MsgPreferencesUpdated, User: user}, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.services.UserService.DeleteAccount(r.Context(), chi.URLParam(r, userIDParam)); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: app.MsgAccountDeleted}, http.StatusOK)
}

func (h *Handler) resetData(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.ResetData(r.Context(), chi.URLParam(r, userIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.UserResponse{Message: app.MsgDataReset, User: user}, http.StatusOK)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-budget-tracker/internal/app"
	"github.com/MKhiriev/go-budget-tracker/internal/validators"
	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/go-chi/chi/v5"
)

const (
	transactionIDParam = "transactionId"
	subcategoryParam   = "subcategory"
)

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransactionRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	// the txdate tag has already accepted the value
	date, _ := models.ParseDate(req.Date)

	tx, err := h.services.TransactionService.Create(r.Context(), models.Transaction{
		Amount:      req.Amount,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.TransactionResponse{Message: app.MsgTransactionAdded, Transaction: tx}, http.StatusCreated)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeTransactions(w, r, filter)
}

func (h *Handler) listTransactionsBySubcategory(w http.ResponseWriter, r *http.Request) {
	h.writeTransactions(w, r, models.TransactionFilter{Subcategory: chi.URLParam(r, subcategoryParam)})
}

func (h *Handler) writeTransactions(w http.ResponseWriter, r *http.Request, filter models.TransactionFilter) {
	list, err := h.services.TransactionService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if list == nil {
		list = []models.Transaction{}
	}

	writeJSON(w, r, list, http.StatusOK)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := h.services.TransactionService.Get(r.Context(), chi.URLParam(r, transactionIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, tx, http.StatusOK)
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTransactionRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	update := models.TransactionUpdate{
		ID:          chi.URLParam(r, transactionIDParam),
		Amount:      req.Amount,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Description: req.Description,
	}
	if req.Date != nil {
		date, _ := models.ParseDate(*req.Date)
		update.Date = &date
	}

	tx, err := h.services.TransactionService.Update(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.TransactionResponse{Message: app.MsgTransactionUpdated, Transaction: tx}, http.StatusOK)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.services.TransactionService.Delete(r.Context(), chi.URLParam(r, transactionIDParam)); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: app.MsgTransactionDeleted}, http.StatusOK)
}

func (h *Handler) transactionSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.services.TransactionService.Summary(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, summary, http.StatusOK)
}

// filterFromQuery reads the optional category, subcategory, from and to
// query parameters. A date-only "to" covers the whole day.
func filterFromQuery(r *http.Request) (models.TransactionFilter, error) {
	query := r.URL.Query()
	filter := models.TransactionFilter{
		Category:    models.Category(strings.TrimSpace(query.Get("category"))),
		Subcategory: strings.TrimSpace(query.Get("subcategory")),
	}

	var errs validators.ValidationErrors
	if raw := query.Get("from"); raw != "" {
		from, err := models.ParseDate(raw)
		if err != nil {
			errs = append(errs, models.FieldError{Field: "from", Message: err.Error()})
		} else {
			filter.From = &from
		}
	}
	if raw := query.Get("to"); raw != "" {
		to, err := models.ParseDate(raw)
		if err != nil {
			errs = append(errs, models.FieldError{Field: "to", Message: err.Error()})
		} else {
			if len(strings.TrimSpace(raw)) == len(models.DateLayout) {
				to = to.Add(24*time.Hour - time.Nanosecond)
			}
			filter.To = &to
		}
	}

	if len(errs) > 0 {
		return models.TransactionFilter{}, errs
	}
	return filter, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-budget-tracker/internal/app"
	"github.com/MKhiriev/go-budget-tracker/internal/logger"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeText(w, r, h.services.AppInfoService.GetAppVersion(r.Context()))
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeText(w, r, app.MsgAPIRunning)
}

func writeText(w http.ResponseWriter, r *http.Request, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

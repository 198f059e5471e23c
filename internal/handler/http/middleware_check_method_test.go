// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-budget-tracker/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRouter creates a minimal chi.Mux without Handler.Init() so that no
// services are needed.
func buildRouter() *chi.Mux {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router := chi.NewRouter()
	router.Get("/api/items", ok)
	router.Post("/api/items", ok)
	router.Route("/api/things", func(r chi.Router) {
		r.Get("/{id}", ok)
		r.Delete("/{id}", ok)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedAllow  string
		wantMessage    string
	}{
		{name: "registered method", method: http.MethodGet, path: "/api/items", expectedStatus: http.StatusOK},
		{name: "static route wrong method", method: http.MethodDelete, path: "/api/items",
			expectedStatus: http.StatusMethodNotAllowed, expectedAllow: "GET, POST", wantMessage: app.MsgMethodNotAllowed},
		{name: "param route registered method", method: http.MethodDelete, path: "/api/things/42", expectedStatus: http.StatusOK},
		{name: "param route wrong method", method: http.MethodPut, path: "/api/things/42",
			expectedStatus: http.StatusMethodNotAllowed, expectedAllow: "GET, DELETE", wantMessage: app.MsgMethodNotAllowed},
		{name: "unknown path", method: http.MethodGet, path: "/api/nothing",
			expectedStatus: http.StatusNotFound, wantMessage: app.MsgRouteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedAllow, rr.Header().Get("Allow"))
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeError(t, rr).Message)
			}
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-budget-tracker/internal/adapter"
	"github.com/MKhiriev/go-budget-tracker/internal/store"
)

type ClientServices struct {
	AuthService        ClientAuthService
	ProfileService     ClientProfileService
	TransactionService ClientTransactionService
	AppInfoService     ClientAppInfoService
}

// NewClientServices wires the client services to one session store and one
// adapter. server identifies the adapter's target in stored sessions.
func NewClientServices(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, server string) *ClientServices {
	return &ClientServices{
		AuthService:        NewClientAuthService(sessions, serverAdapter, server),
		ProfileService:     NewClientProfileService(sessions, serverAdapter, server),
		TransactionService: NewClientTransactionService(sessions, serverAdapter, server),
		AppInfoService:     NewClientAppInfoService(serverAdapter),
	}
}

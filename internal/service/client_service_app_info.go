// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-budget-tracker/internal/adapter"
)

type clientAppInfoService struct {
	adapter adapter.ServerAdapter
}

func NewClientAppInfoService(serverAdapter adapter.ServerAdapter) ClientAppInfoService {
	return &clientAppInfoService{adapter: serverAdapter}
}

func (c *clientAppInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.adapter.Version(ctx)
	return version, mapAdapterError(err)
}

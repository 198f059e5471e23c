// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the budget tracker.
//
// It wires the chi router, decodes and validates request bodies, and maps
// service errors to JSON error responses. Cross-cutting concerns (trace ids,
// access logging, compression, CORS, request timeouts and bearer token
// authentication) are applied as middleware before a request reaches the
// service layer.
package http

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP API until the process is asked to stop.
//
// RunServer listens on the configured address and blocks. On SIGINT, SIGTERM
// or SIGQUIT the listener is closed and in-flight requests are given
// Server.ShutdownTimeout to finish.
package server

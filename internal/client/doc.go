// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the budget tracker.
//
// Every invocation runs one command against the API and prints the result
// as JSON on stdout. The login token is kept in the local session store
// between invocations.
package client

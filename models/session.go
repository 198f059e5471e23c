// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the login state the CLI client keeps between invocations.
type Session struct {
	Token     string
	UserID    string
	Server    string
	CreatedAt time.Time
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordMismatch is returned by ComparePassword when the password
	// does not match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match hash")

	// ErrPasswordTooLong is returned by HashPassword for passwords longer
	// than bcrypt's 72 byte input.
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

const dummyPassword = "not-a-real-password"

// HashPassword hashes password with bcrypt at the given cost. The salt is
// generated by bcrypt and stored inside the returned hash.
//
// A cost outside [bcrypt.MinCost, bcrypt.MaxCost] falls back to
// [bcrypt.DefaultCost].
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// NewDummyHash hashes a throwaway password at cost. Comparing against it
// costs as much as comparing against a real hash of the same cost, so it
// stands in for the hash of an account that does not exist.
func NewDummyHash(cost int) (string, error) {
	return HashPassword(dummyPassword, cost)
}

// ComparePassword checks password against a bcrypt hash. An empty hash never
// matches.
func ComparePassword(hash, password string) error {
	if hash == "" {
		return ErrPasswordMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password: %w", err)
	}
}

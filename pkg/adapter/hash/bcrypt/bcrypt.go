// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package bcrypt adapts the golang.org/x/crypto/bcrypt password
// hashing algorithm to the core hash.Hasher interface, so the use
// cases layer can digest and verify passwords without a dependency on
// the actual implementation. The produced digest embeds its own salt
// and cost, hence, no extra columns are required for them.
package bcrypt

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher digests passwords with a fixed bcrypt cost.
// It implements the hash.Hasher interface.
type Hasher struct {
	cost int
}

// New instantiates a Hasher with the bcrypt default cost.
func New() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// NewWithCost instantiates a Hasher with the given cost, which is
// useful for tests preferring speed over digest strength.
func NewWithCost(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf(
			"cost %d is out of the [%d, %d] range",
			cost, bcrypt.MinCost, bcrypt.MaxCost,
		)
	}
	return &Hasher{cost: cost}, nil
}

// Hash computes the bcrypt digest of password.
func (h *Hasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(digest), nil
}

// Compare checks password against a digest which was computed by the
// Hash method, returning a non-nil error for a mismatch.
func (h *Hasher) Compare(digest, password string) error {
	return bcrypt.CompareHashAndPassword(
		[]byte(digest), []byte(password),
	)
}

// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package hash declares the password hashing interface which the use
// cases layer consumes. The concrete algorithm lives in the adapters
// layer (see pkg/adapter/hash/bcrypt), so the core stays independent
// of the chosen third-party implementation.
package hash

// Hasher derives storable digests from raw passwords and verifies
// candidate passwords against previously stored digests.
type Hasher interface {
	// Hash derives a self-describing digest from the raw password.
	// The digest embeds any salt and cost parameters it needs for a
	// later Compare call.
	Hash(password string) (string, error)

	// Compare checks the candidate password against the stored digest.
	// A nil error means the password matches. A mismatch is reported
	// as an error, so it can be wrapped with more context uniformly
	// with genuine failures.
	Compare(digest, password string) error
}

// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo declares the repository interfaces which the use cases
// layer depends on, together with the Pool, Conn, and Tx unit-of-work
// abstractions. A use case borrows a Conn from a Pool for the duration
// of one operation and opens a Tx whenever a multi-row mutation has to
// commit or roll back atomically, e.g., the paired car-status and
// rental-row writes of the rental lifecycle.
package repo

import "context"

// TxHandler runs a unit of work within the given transaction. If it
// returns a non-nil error, the transaction is rolled back, otherwise
// it is committed.
type TxHandler func(context.Context, Tx) error

// Conn is a single database connection, borrowed from a Pool, which
// may run statements directly or start serial transactions via Tx.
// It is unsafe for concurrent use.
type Conn interface {
	Queryer

	// Tx begins a transaction, calls handler with it, and commits or
	// rolls back depending on the returned error (a panic also rolls
	// the transaction back). Errors of the handler and of the
	// commit/rollback steps are wrapped and returned.
	Tx(ctx context.Context, handler TxHandler) error

	// IsConn method prevents a non-Conn object (such as a Tx) to
	// mistakenly implement the Conn interface.
	IsConn()
}

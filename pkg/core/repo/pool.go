// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// ConnHandler runs a unit of work with a borrowed connection. The
// connection is returned to the pool when the handler returns.
type ConnHandler func(context.Context, Conn) error

// Pool is a pool of database connections, safe for concurrent use.
type Pool interface {
	// Conn borrows a connection from the pool and passes it to the
	// handler, releasing it when the handler returns.
	Conn(ctx context.Context, handler ConnHandler) error

	// Close releases all pooled connections. All handlers must have
	// returned before closing the pool.
	Close() error
}

// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// Queryer runs raw SQL statements on a connection or transaction.
// Repository packages normally use the framework-level query builder
// of the adapter instead; this interface exists for schema management
// and tests which need to run literal SQL.
type Queryer interface {
	// Exec runs a statement and reports the affected rows count.
	// With args present, sql is prepared and must contain exactly one
	// statement; without args, multiple semicolon separated statements
	// are allowed.
	Exec(ctx context.Context, sql string, args ...any) (count int64, err error)

	// Query runs a single statement and returns its result set.
	// The Rows must be closed before the next statement is issued on
	// the same connection or transaction.
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// Rows is a database result set cursor.
type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
	Values() ([]any, error)
}

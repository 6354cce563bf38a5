// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"

	"github.com/izhdrive/rentweb/pkg/core/repo"
	"gorm.io/gorm"
)

// Tx is one database transaction, implementing repo.Tx. It embeds the
// transactional *gorm.DB, hence, may be used like GORM from within the
// repository packages (which can depend on frameworks). It is unsafe
// for concurrent use. The READ-COMMITTED isolation of PostgreSQL is
// relied upon; see the repo.Tx documentation.
type Tx struct {
	*gorm.DB
}

// Exec runs a statement with the given args; see Conn.Exec for the
// statement and placeholder rules.
func (tx *Tx) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tt := tx.DB.WithContext(ctx).Exec(sql, args...)
	if err := tt.Error; err != nil {
		return 0, err
	}
	return tt.RowsAffected, nil
}

// Query runs one statement and returns its result set; see Conn.Query
// for the cursor rules.
func (tx *Tx) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	rows, err := tx.DB.WithContext(ctx).Raw(sql, args...).Rows()
	return rowsAdapter{rows}, err
}

// IsTx method prevents a non-Tx object (such as a Conn) to
// mistakenly implement the Tx interface.
func (tx *Tx) IsTx() {
}

// GORM returns the embedded *gorm.DB instance, configuring it to
// operate on the given ctx context.
func (tx *Tx) GORM(ctx context.Context) *gorm.DB {
	return tx.DB.WithContext(ctx)
}

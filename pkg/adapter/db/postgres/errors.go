// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"errors"

	"github.com/izhdrive/rentweb/pkg/core/cerr"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// unique_violation in the PostgreSQL error codes table
const uniqueViolationCode = "23505"

// WrapError translates driver level failures into the error kinds
// known to the core layer. A gorm.ErrRecordNotFound becomes a
// cerr.NotFound error and a violated unique constraint becomes a
// cerr.Conflict error, so the repository packages do not have to
// repeat this classification after each query.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cerr.NotFound(err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return cerr.Conflict(err)
	}
	return err
}

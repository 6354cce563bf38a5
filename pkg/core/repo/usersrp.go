// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/core/model"
)

// UserFilter narrows down a users listing. Zero valued fields are
// ignored.
type UserFilter struct {
	EmailLike string // case-insensitive substring of the email
	Role      *model.Role
}

// UsersQueryer declares the account statements which may run on
// either a connection or a transaction. Lookups of missing rows fail
// with wrapped cerr.NotFound errors; inserts and updates violating a
// unique constraint (email, phone, licence pair, passport pair)
// surface wrapped cerr.Conflict errors.
type UsersQueryer interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, f UserFilter) ([]model.User, error)

	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, digest string) error
	UpdateRole(ctx context.Context, userID uuid.UUID, r model.Role) error
	Delete(ctx context.Context, userID uuid.UUID) error

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	ExistsByLicense(ctx context.Context, series, number string) (bool, error)
	ExistsByPassport(ctx context.Context, series, number string) (bool, error)

	// CountByRole reports how many accounts hold the given role.
	CountByRole(ctx context.Context, r model.Role) (int64, error)
}

// UsersConnQueryer is the Conn-bound variant of UsersQueryer.
type UsersConnQueryer interface {
	UsersQueryer
}

// UsersTxQueryer is the Tx-bound variant of UsersQueryer.
type UsersTxQueryer interface {
	UsersQueryer
}

// Users binds account statements to a borrowed connection or
// transaction.
type Users interface {
	Conn(Conn) UsersConnQueryer
	Tx(Tx) UsersTxQueryer
}

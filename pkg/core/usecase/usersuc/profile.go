// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package usersuc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/core/cerr"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
)

// Profile carries the self-editable account fields. The password,
// role, and birth date are deliberately absent: the first two have
// dedicated operations and the last is fixed at registration.
type Profile struct {
	Email       string
	Phone       string
	LastName    string
	FirstName   string
	MiddleName  string
	LicenseSer  string
	LicenseNum  string
	PassportSer string
	PassportNum string
}

// validate applies the same field rules as registration to the
// editable subset.
func (p *Profile) validate() error {
	switch {
	case p.Email == "":
		return ErrEmailRequired
	case !PhoneValid(p.Phone):
		return ErrBadPhone
	case !DocumentSeriesValid(p.LicenseSer):
		return ErrBadLicenseSeries
	case !DocumentNumberValid(p.LicenseNum):
		return ErrBadLicenseNumber
	case !DocumentSeriesValid(p.PassportSer):
		return ErrBadPassportSeries
	case !DocumentNumberValid(p.PassportNum):
		return ErrBadPassportNumber
	case !NameCyrillic(p.LastName), !NameCyrillic(p.FirstName):
		return ErrNameNotCyrillic
	case p.MiddleName != "" && !NameCyrillic(p.MiddleName):
		return ErrNameNotCyrillic
	}
	return nil
}

// UpdateProfile overwrites the editable fields of an existing account,
// leaving the password hash, role, and birth date untouched. The
// update re-reads the stored row first, so a missing account yields a
// wrapped cerr.NotFound error before anything is written.
func (users *UseCase) UpdateProfile(
	ctx context.Context, userID uuid.UUID, p Profile,
) (u *model.User, err error) {
	if err := p.validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	err = users.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := users.usersrp.Tx(tx)
			u, err = q.GetByID(ctx, userID)
			if err != nil {
				return fmt.Errorf("loading account: %w", err)
			}
			u.Email = p.Email
			u.Phone = p.Phone
			u.LastName = p.LastName
			u.FirstName = p.FirstName
			u.MiddleName = p.MiddleName
			u.LicenseSer = p.LicenseSer
			u.LicenseNum = p.LicenseNum
			u.PassportSer = p.PassportSer
			u.PassportNum = p.PassportNum
			return q.Update(ctx, u)
		})
	})
	if err != nil {
		u = nil
	}
	return
}

// ChangePassword verifies the current password and stores a hash of
// the new one, which must satisfy the strength policy.
func (users *UseCase) ChangePassword(
	ctx context.Context, userID uuid.UUID, current, next string,
) error {
	if !PasswordStrong(next) {
		return cerr.BadRequest(ErrWeakPassword)
	}
	digest, err := users.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	return users.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := users.usersrp.Tx(tx)
			u, err := q.GetByID(ctx, userID)
			if err != nil {
				return fmt.Errorf("loading account: %w", err)
			}
			if err := users.hasher.Compare(u.PasswordHash, current); err != nil {
				return cerr.Authentication(ErrBadCredentials)
			}
			return q.UpdatePassword(ctx, userID, digest)
		})
	})
}

// List returns accounts matching the filter for the back office.
func (users *UseCase) List(
	ctx context.Context, f repo.UserFilter,
) (us []model.User, err error) {
	err = users.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		us, err = users.usersrp.Conn(c).List(ctx, f)
		return err
	})
	if err != nil {
		us = nil
	}
	return
}

// UpdateRole switches one account between the USER and ADMIN roles.
func (users *UseCase) UpdateRole(
	ctx context.Context, userID uuid.UUID, r model.Role,
) error {
	if err := r.Validate(); err != nil {
		return cerr.BadRequest(err)
	}
	return users.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return users.usersrp.Conn(c).UpdateRole(ctx, userID, r)
	})
}

// Delete removes one account.
func (users *UseCase) Delete(
	ctx context.Context, userID uuid.UUID,
) error {
	return users.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return users.usersrp.Conn(c).Delete(ctx, userID)
	})
}

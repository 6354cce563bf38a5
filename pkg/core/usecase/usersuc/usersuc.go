// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package usersuc contains the users UseCase which covers account
// registration with its validation rules, credentials verification,
// self-service profile management, and the back-office operations on
// accounts. Passwords are hashed through the core hash.Hasher
// interface; this package never sees a concrete algorithm.
package usersuc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/core/cerr"
	"github.com/izhdrive/rentweb/pkg/core/hash"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
)

// Registration and profile validation errors, reported as
// cerr.BadRequest.
var (
	ErrBirthDateRequired = errors.New("birth date is required")
	ErrUnderage          = errors.New("clients must be at least 18 years old")
	ErrEmailRequired     = errors.New("email is required")
	ErrWeakPassword      = errors.New("password must be at least 8 characters with a digit, an upper-case letter, and a special character, without 4 repeated characters in a row")
	ErrBadPhone          = errors.New("phone must be +7 followed by 10 digits")
	ErrBadLicenseSeries  = errors.New("driver licence series must be 4 digits")
	ErrBadLicenseNumber  = errors.New("driver licence number must be 6 digits")
	ErrBadPassportSeries = errors.New("passport series must be 4 digits")
	ErrBadPassportNumber = errors.New("passport number must be 6 digits")
	ErrNameNotCyrillic   = errors.New("name fields must contain Cyrillic letters only")
)

// Uniqueness probe errors, reported together as one cerr.Conflict.
var (
	ErrEmailTaken    = errors.New("email is already in use")
	ErrPhoneTaken    = errors.New("phone is already in use")
	ErrLicenseTaken  = errors.New("driver licence is already in use")
	ErrPassportTaken = errors.New("passport is already in use")
)

// ErrBadCredentials hides whether the email or the password was wrong,
// reported as cerr.Authentication.
var ErrBadCredentials = errors.New("invalid email or password")

// UseCase represents the users use case. It holds a database
// connection pool, the users repository instance, and the password
// hasher.
type UseCase struct {
	pool    repo.Pool
	usersrp repo.Users
	hasher  hash.Hasher

	now func() time.Time
}

// New instantiates a users use case.
func New(p repo.Pool, users repo.Users, h hash.Hasher) *UseCase {
	return &UseCase{
		pool:    p,
		usersrp: users,
		hasher:  h,
		now:     time.Now,
	}
}

// Registration is the validated input of the Register operation. The
// password arrives raw and is hashed before it is stored.
type Registration struct {
	Email       string
	Password    string
	LastName    string
	FirstName   string
	MiddleName  string
	LicenseSer  string
	LicenseNum  string
	PassportSer string
	PassportNum string
	Phone       string
	BirthDate   time.Time
}

// validate applies the registration field rules, reporting the first
// violated rule the way the registration form reports them one at a
// time.
func (reg *Registration) validate(now time.Time) error {
	switch {
	case reg.BirthDate.IsZero():
		return ErrBirthDateRequired
	case !AdultAt(reg.BirthDate, now):
		return ErrUnderage
	case strings.TrimSpace(reg.Email) == "":
		return ErrEmailRequired
	case !PasswordStrong(reg.Password):
		return ErrWeakPassword
	case !PhoneValid(reg.Phone):
		return ErrBadPhone
	case !DocumentSeriesValid(reg.LicenseSer):
		return ErrBadLicenseSeries
	case !DocumentNumberValid(reg.LicenseNum):
		return ErrBadLicenseNumber
	case !DocumentSeriesValid(reg.PassportSer):
		return ErrBadPassportSeries
	case !DocumentNumberValid(reg.PassportNum):
		return ErrBadPassportNumber
	case !NameCyrillic(reg.LastName), !NameCyrillic(reg.FirstName):
		return ErrNameNotCyrillic
	case reg.MiddleName != "" && !NameCyrillic(reg.MiddleName):
		return ErrNameNotCyrillic
	}
	return nil
}

// Register creates a new USER account after validating the field
// rules and probing all four uniqueness constraints. Violated field
// rules yield wrapped cerr.BadRequest errors; taken identifiers are
// collected and reported together as one wrapped cerr.Conflict error,
// so the client learns all conflicts at once. A uniqueness race which
// slips past the probes is caught by the database constraints and
// surfaces as cerr.Conflict from the repository as well.
func (users *UseCase) Register(
	ctx context.Context, reg Registration,
) (u *model.User, err error) {
	if err := reg.validate(users.now()); err != nil {
		return nil, cerr.BadRequest(err)
	}
	digest, err := users.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	err = users.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := users.usersrp.Tx(tx)
			var taken []error
			probes := []struct {
				exists func() (bool, error)
				err    error
			}{
				{func() (bool, error) { return q.ExistsByEmail(ctx, reg.Email) }, ErrEmailTaken},
				{func() (bool, error) { return q.ExistsByPhone(ctx, reg.Phone) }, ErrPhoneTaken},
				{func() (bool, error) { return q.ExistsByLicense(ctx, reg.LicenseSer, reg.LicenseNum) }, ErrLicenseTaken},
				{func() (bool, error) { return q.ExistsByPassport(ctx, reg.PassportSer, reg.PassportNum) }, ErrPassportTaken},
			}
			for _, p := range probes {
				exists, err := p.exists()
				if err != nil {
					return fmt.Errorf("uniqueness probe: %w", err)
				}
				if exists {
					taken = append(taken, p.err)
				}
			}
			if len(taken) > 0 {
				return cerr.Conflict(errors.Join(taken...))
			}
			u = &model.User{
				Email:        strings.TrimSpace(reg.Email),
				PasswordHash: digest,
				LastName:     reg.LastName,
				FirstName:    reg.FirstName,
				MiddleName:   reg.MiddleName,
				LicenseSer:   reg.LicenseSer,
				LicenseNum:   reg.LicenseNum,
				PassportSer:  reg.PassportSer,
				PassportNum:  reg.PassportNum,
				Phone:        reg.Phone,
				BirthDate:    reg.BirthDate,
				Role:         model.RoleUser,
			}
			return q.Create(ctx, u)
		})
	})
	if err != nil {
		u = nil
	}
	return
}

// Authenticate verifies the email/password pair and returns the
// matching account. Both an unknown email and a wrong password yield
// the same wrapped cerr.Authentication error, so the response does
// not reveal which part was wrong.
func (users *UseCase) Authenticate(
	ctx context.Context, email, password string,
) (u *model.User, err error) {
	err = users.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		u, err = users.usersrp.Conn(c).GetByEmail(ctx, email)
		return err
	})
	if err != nil {
		return nil, cerr.Authentication(ErrBadCredentials)
	}
	if err := users.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, cerr.Authentication(ErrBadCredentials)
	}
	return u, nil
}

// GetByEmail loads one account by its login identifier.
func (users *UseCase) GetByEmail(
	ctx context.Context, email string,
) (u *model.User, err error) {
	err = users.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		u, err = users.usersrp.Conn(c).GetByEmail(ctx, email)
		return err
	})
	if err != nil {
		u = nil
	}
	return
}

// GetByID loads one account.
func (users *UseCase) GetByID(
	ctx context.Context, userID uuid.UUID,
) (u *model.User, err error) {
	err = users.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		u, err = users.usersrp.Conn(c).GetByID(ctx, userID)
		return err
	})
	if err != nil {
		u = nil
	}
	return
}

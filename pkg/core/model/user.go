// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role determines which route groups a user may access.
type Role string

// Valid values for the Role enum.
const (
	RoleUser  Role = "USER"  // regular client
	RoleAdmin Role = "ADMIN" // back-office operator
)

// ErrUnknownRole indicates that a given string may not be parsed as a
// valid/known user role.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole converts s into a Role value, returning the ErrUnknownRole
// error for unsupported strings.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate returns nil if the Role value is one of the two supported
// roles.
func (r Role) Validate() error {
	switch r {
	case RoleUser, RoleAdmin:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRole, string(r))
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// User models a registered account. The email works as the login
// identifier, PasswordHash holds a bcrypt digest and never the raw
// password. The driver licence and passport documents are stored as
// series/number pairs; each pair, as well as the email and the phone,
// is unique across all accounts.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	LastName     string
	FirstName    string
	MiddleName   string // optional patronymic
	LicenseSer   string // driver licence series, 4 digits
	LicenseNum   string // driver licence number, 6 digits
	PassportSer  string // passport series, 4 digits
	PassportNum  string // passport number, 6 digits
	Phone        string // +7 followed by 10 digits
	BirthDate    time.Time
	Role         Role
}

// FullName joins the name fields for display, skipping the optional
// middle name when it is empty.
func (u *User) FullName() string {
	if u.MiddleName == "" {
		return u.LastName + " " + u.FirstName
	}
	return u.LastName + " " + u.FirstName + " " + u.MiddleName
}

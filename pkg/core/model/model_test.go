// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/stretchr/testify/assert"
)

func TestParseCarStatus(t *testing.T) {
	for _, s := range []string{
		"AVAILABLE", "RESERVED", "RENTED", "MAINTENANCE",
	} {
		cs, err := model.ParseCarStatus(s)
		assert.NoError(t, err, "valid status %q", s)
		assert.Equal(t, s, cs.String())
	}
	for _, s := range []string{"", "available", "SOLD"} {
		_, err := model.ParseCarStatus(s)
		assert.ErrorIs(t, err, model.ErrUnknownCarStatus, "status %q", s)
	}
}

func TestParseRentalStatus(t *testing.T) {
	for _, s := range []string{"PENDING_PAYMENT", "PAID", "CANCELLED"} {
		rs, err := model.ParseRentalStatus(s)
		assert.NoError(t, err, "valid status %q", s)
		assert.Equal(t, s, rs.String())
	}
	for _, s := range []string{"", "paid", "EXPIRED"} {
		_, err := model.ParseRentalStatus(s)
		assert.ErrorIs(
			t, err, model.ErrUnknownRentalStatus, "status %q", s,
		)
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"USER", "ADMIN"} {
		r, err := model.ParseRole(s)
		assert.NoError(t, err, "valid role %q", s)
		assert.Equal(t, s, r.String())
	}
	_, err := model.ParseRole("root")
	assert.ErrorIs(t, err, model.ErrUnknownRole)
}

func TestRentalDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}
	for _, tc := range []struct {
		start, end time.Time
		days       int64
	}{
		{day(1), day(2), 1},
		{day(1), day(8), 7},
		{day(20), day(31), 11},
	} {
		r := &model.Rental{StartDate: tc.start, EndDate: tc.end}
		assert.Equal(t, tc.days, r.Days())
	}
}

func ExampleUser_FullName() {
	u := &model.User{
		LastName:  "Иванов",
		FirstName: "Иван",
	}
	fmt.Println(u.FullName())
	u.MiddleName = "Иванович"
	fmt.Println(u.FullName())
	// Output:
	// Иванов Иван
	// Иванов Иван Иванович
}

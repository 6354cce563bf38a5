// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package usersuc_test

import (
	"testing"
	"time"

	"github.com/izhdrive/rentweb/pkg/core/usecase/usersuc"
	"github.com/stretchr/testify/assert"
)

func TestPasswordStrong(t *testing.T) {
	for _, tc := range []struct {
		name     string
		password string
		strong   bool
	}{
		{"minimal", "Aa1!bcde", true},
		{"longer", "Str0ng?pass", true},
		{"too short", "A1!b", false},
		{"no upper-case letter", "abcdefg1!", false},
		{"no digit", "Abcdefgh!", false},
		{"no special character", "Abcdefg1", false},
		{"repeated run", "Aaaaa1!bcd", false},
		{"repeated run at the end", "xxXX11!!xxxx", false},
		{"no latin upper-case letter", "Па1!ольный", false},
	} {
		assert.Equal(
			t, tc.strong, usersuc.PasswordStrong(tc.password),
			"%s: password %q", tc.name, tc.password,
		)
	}
}

func TestPhoneValid(t *testing.T) {
	assert.True(t, usersuc.PhoneValid("+79123456789"))
	for _, phone := range []string{
		"", "79123456789", "+7912345678", "+791234567890",
		"+89123456789", "+7912345678a",
	} {
		assert.False(t, usersuc.PhoneValid(phone), "phone %q", phone)
	}
}

func TestDocumentFieldsValid(t *testing.T) {
	assert.True(t, usersuc.DocumentSeriesValid("9418"))
	assert.False(t, usersuc.DocumentSeriesValid("941"))
	assert.False(t, usersuc.DocumentSeriesValid("94188"))
	assert.False(t, usersuc.DocumentSeriesValid("94a8"))

	assert.True(t, usersuc.DocumentNumberValid("123456"))
	assert.False(t, usersuc.DocumentNumberValid("12345"))
	assert.False(t, usersuc.DocumentNumberValid("1234567"))
	assert.False(t, usersuc.DocumentNumberValid("12345x"))
}

func TestNameCyrillic(t *testing.T) {
	for _, name := range []string{
		"Иванов", "Анна-Мария", "Ким Чен", "Ёлкина",
	} {
		assert.True(t, usersuc.NameCyrillic(name), "name %q", name)
	}
	for _, name := range []string{"", "Smith", "Иванов2", "Иванов_"} {
		assert.False(t, usersuc.NameCyrillic(name), "name %q", name)
	}
}

func TestAdultAt(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	for _, tc := range []struct {
		birth time.Time
		adult bool
	}{
		{time.Date(2008, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2008, 6, 16, 0, 0, 0, 0, time.UTC), false},
		{time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), false},
	} {
		assert.Equal(
			t, tc.adult, usersuc.AdultAt(tc.birth, now),
			"birth date %v", tc.birth,
		)
	}
}

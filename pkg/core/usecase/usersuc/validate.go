// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package usersuc

import (
	"regexp"
	"time"
	"unicode"
)

// minAge is the minimum age, in years, accepted at registration.
const minAge = 18

var (
	digitRe   = regexp.MustCompile(`\d`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	phoneRe   = regexp.MustCompile(`^\+7\d{10}$`)
	seriesRe  = regexp.MustCompile(`^\d{4}$`)
	numberRe  = regexp.MustCompile(`^\d{6}$`)
)

// PasswordStrong reports whether the password satisfies the account
// policy: at least 8 characters with a digit, an upper-case letter,
// and a special character, and no character repeated four or more
// times in a row.
func PasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	run, prev := 0, rune(-1)
	for _, r := range password {
		if r == prev {
			run++
			if run >= 4 {
				return false
			}
		} else {
			prev, run = r, 1
		}
	}
	return digitRe.MatchString(password) &&
		upperRe.MatchString(password) &&
		specialRe.MatchString(password)
}

// PhoneValid reports whether the phone is +7 followed by ten digits.
func PhoneValid(phone string) bool {
	return phoneRe.MatchString(phone)
}

// DocumentSeriesValid reports whether a licence or passport series is
// exactly four digits.
func DocumentSeriesValid(series string) bool {
	return seriesRe.MatchString(series)
}

// DocumentNumberValid reports whether a licence or passport number is
// exactly six digits.
func DocumentNumberValid(number string) bool {
	return numberRe.MatchString(number)
}

// NameCyrillic reports whether the name consists of Cyrillic letters,
// spaces, and hyphens only, and is not empty.
func NameCyrillic(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r == ' ' || r == '-' || unicode.Is(unicode.Cyrillic, r) {
			continue
		}
		return false
	}
	return true
}

// AdultAt reports whether a person born on birthDate is at least
// minAge years old at the now instant.
func AdultAt(birthDate, now time.Time) bool {
	adult := birthDate.AddDate(minAge, 0, 0)
	return !adult.After(now)
}

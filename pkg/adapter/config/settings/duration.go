// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings holds the value types of the configuration file,
// so they can be reused by all configuration sections uniformly.
package settings

import (
	"errors"
	"log/slog"
	"strings"
	"time"
)

// Duration is a specialization of the time.Duration which can be
// decoded from and encoded to the human-readable representation of
// the time.ParseDuration format, e.g., 5m or 1h30m.
type Duration time.Duration

// UnmarshalText reifies the encoding.TextUnmarshaler interface, so a
// byte slice read from a YAML file can be decoded as a time duration.
// In absence of errors, a nil error will be returned and only then,
// the d receiver will be updated to contain the decoded duration.
func (d *Duration) UnmarshalText(data []byte) error {
	dd, err := time.ParseDuration(string(data))
	if err != nil {
		return err
	}
	*d = Duration(dd)
	return nil
}

// Marshal returns a string representation of the d time duration,
// dropping the zero trailing components for readability, so no 0s or
// 0m0s suffix may be included. If d is nil, nil will be returned, so
// it can be used by higher-level Marshal methods too.
func (d *Duration) Marshal() *string {
	if d == nil {
		return nil
	}
	s := (*time.Duration)(d).String()
	if strings.HasSuffix(s, "m0s") {
		s = s[:len(s)-2]
	}
	if strings.HasSuffix(s, "h0m") {
		s = s[:len(s)-2]
	}
	return &s
}

// MarshalText implements the encoding.TextMarshaler interface and
// serializes the d duration using its Marshal method.
func (d *Duration) MarshalText() ([]byte, error) {
	if s := d.Marshal(); s != nil {
		return []byte(*s), nil
	}
	return nil, errors.New("nil duration")
}

// LogValue implements slog.LogValuer and returns a DurationValue if
// this Duration is not nil, otherwise, it returns a StringValue with
// the constant "nil-duration" value.
func (d *Duration) LogValue() slog.Value {
	if d == nil {
		return slog.StringValue("nil-duration")
	}
	return slog.DurationValue(time.Duration(*d))
}

// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import (
	"log/slog"

	"github.com/google/uuid"
)

// Err returns an Attr for the given error value, resolved through its
// Error() method. A nil error is reported as the constant "no-error"
// string, so callers may log unconditionally.
func Err(key string, value error) slog.Attr {
	if value == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, value.Error())
}

// ID returns an Attr holding the string form of a UUID, as used for
// car, rental, and user identifiers throughout the project.
func ID(key string, value uuid.UUID) slog.Attr {
	return slog.String(key, value.String())
}

// Valuer returns an Attr for the given slog.LogValuer value.
func Valuer(key string, value slog.LogValuer) slog.Attr {
	return slog.Any(key, value)
}

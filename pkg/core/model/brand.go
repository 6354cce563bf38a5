// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "github.com/google/uuid"

// Brand is a car manufacturer, e.g., Lada. Brand names are unique
// across the catalog.
type Brand struct {
	ID   uuid.UUID
	Name string
}

// CarModel is one model line of a brand, e.g., Vesta. Model names are
// unique within their brand, but two brands may reuse the same name.
type CarModel struct {
	ID      uuid.UUID
	Name    string
	BrandID uuid.UUID
	Brand   *Brand // optional association, filled on demand
}

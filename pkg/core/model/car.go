// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// Status-like fields are modeled as closed enum types with their own
// Parse and Validate functions, so an unknown status string coming from
// a request or a database row is rejected at the boundary instead of
// being compared literal-by-literal throughout the code base.
package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CarStatus is the availability state of a single car.
// Only the rental lifecycle use case and the admin car management
// operations may change it; the AVAILABLE, RESERVED, and RENTED values
// move in lockstep with the status of the rental referencing the car.
type CarStatus string

// Valid values for the CarStatus enum.
const (
	CarAvailable   CarStatus = "AVAILABLE"   // free to be booked
	CarReserved    CarStatus = "RESERVED"    // held by an unpaid rental
	CarRented      CarStatus = "RENTED"      // held by a paid rental
	CarMaintenance CarStatus = "MAINTENANCE" // withdrawn from the fleet
)

// ErrUnknownCarStatus indicates that a given string may not be parsed
// as a valid/known car status. The caller of ParseCarStatus already
// knows the rejected string, hence, it is not encoded in the error
// itself and should be wrapped by the caller when more context is
// required.
var ErrUnknownCarStatus = errors.New("unknown car status")

// ParseCarStatus converts s into a CarStatus value, returning the
// ErrUnknownCarStatus error for unsupported strings.
func ParseCarStatus(s string) (CarStatus, error) {
	cs := CarStatus(s)
	if err := cs.Validate(); err != nil {
		return "", err
	}
	return cs, nil
}

// Validate returns nil if the CarStatus value is one of the four
// supported statuses, otherwise ErrUnknownCarStatus is wrapped and
// returned with the offending value.
func (s CarStatus) Validate() error {
	switch s {
	case CarAvailable, CarReserved, CarRented, CarMaintenance:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCarStatus, string(s))
	}
}

// String returns the wire representation of the car status.
func (s CarStatus) String() string {
	return string(s)
}

// Car models one car of the rental fleet which may be persisted in a
// database. The per-day price is stored in minor currency units
// (e.g., kopecks) so all price arithmetic stays integral.
// Brand and Model pointers are optional associations; repositories
// poppulate them when the caller needs the joined rows and leave them
// nil otherwise.
type Car struct {
	ID           uuid.UUID
	LicensePlate string // unique registration plate, required
	Year         int    // year of manufacture
	Color        string
	PricePerDay  int64 // minor currency units per rental day
	Status       CarStatus
	City         string // city where the car is stationed

	BrandID uuid.UUID
	ModelID uuid.UUID
	Brand   *Brand
	Model   *CarModel
}

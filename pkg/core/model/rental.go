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

// RentalStatus is the payment state of a rental.
// A rental holding the PENDING_PAYMENT status keeps its car RESERVED
// and a PAID rental keeps its car RENTED; this lockstep correspondence
// is maintained by the rentals use case and may not be touched by any
// other writer.
type RentalStatus string

// Valid values for the RentalStatus enum.
const (
	RentalPendingPayment RentalStatus = "PENDING_PAYMENT" // awaiting payment
	RentalPaid           RentalStatus = "PAID"            // payment confirmed
	RentalCancelled      RentalStatus = "CANCELLED"       // cancelled after payment
)

// ErrUnknownRentalStatus indicates that a given string may not be
// parsed as a valid/known rental status.
var ErrUnknownRentalStatus = errors.New("unknown rental status")

// ParseRentalStatus converts s into a RentalStatus value, returning
// the ErrUnknownRentalStatus error for unsupported strings.
func ParseRentalStatus(s string) (RentalStatus, error) {
	rs := RentalStatus(s)
	if err := rs.Validate(); err != nil {
		return "", err
	}
	return rs, nil
}

// Validate returns nil if the RentalStatus value is one of the three
// supported statuses.
func (s RentalStatus) Validate() error {
	switch s {
	case RentalPendingPayment, RentalPaid, RentalCancelled:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRentalStatus, string(s))
	}
}

// String returns the wire representation of the rental status.
func (s RentalStatus) String() string {
	return string(s)
}

// Rental models one booking transaction: which client holds which car
// for which date range and for how much. The total price is stored in
// minor currency units. CreatedAt records when the booking was placed
// and drives the payment-window expiry of unpaid rentals.
type Rental struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	CarID      uuid.UUID
	StartDate  time.Time // date-only, midnight UTC
	EndDate    time.Time // date-only, strictly after StartDate
	TotalPrice int64     // minor currency units
	Status     RentalStatus
	CreatedAt  time.Time

	Client *User // optional association, filled on demand
	Car    *Car  // optional association, filled on demand
}

// Days returns the charged rental length as a whole number of days,
// i.e., the difference between the end and start dates.
func (r *Rental) Days() int64 {
	return int64(r.EndDate.Sub(r.StartDate).Hours() / 24)
}

// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/core/model"
)

// RentalFilter narrows down the admin rentals listing. Zero valued
// fields are ignored.
type RentalFilter struct {
	PlateLike   string // case-insensitive substring of the car plate
	EmailLike   string // case-insensitive substring of the client email
	Status      *model.RentalStatus
	OldestFirst bool // default order is newest first by creation time
}

// RentalsQueryer declares the rental ledger statements which may run
// on either a connection or a transaction. Only the rentals use case
// may call the mutating methods; every status write has to stay in
// lockstep with the referenced car status within one transaction.
type RentalsQueryer interface {
	// GetByID loads one rental with its car and client associations,
	// returning a wrapped cerr.NotFound error for a missing id.
	GetByID(ctx context.Context, rentalID uuid.UUID) (*model.Rental, error)

	// ListAll returns rentals matching the filter, associations
	// included, for the back office.
	ListAll(ctx context.Context, f RentalFilter) ([]model.Rental, error)

	// ListByClientEmail returns the rentals of one client, newest
	// first, with the car association included.
	ListByClientEmail(ctx context.Context, email string) ([]model.Rental, error)

	// Create inserts the rental, assigning a fresh id to r.
	Create(ctx context.Context, r *model.Rental) error

	// UpdateStatus moves the rental to the given status and returns
	// the updated row, failing with a wrapped cerr.NotFound error for
	// a missing id.
	UpdateStatus(ctx context.Context, rentalID uuid.UUID, s model.RentalStatus) (*model.Rental, error)

	// Delete removes the rental row entirely (unpaid cancellations).
	Delete(ctx context.Context, rentalID uuid.UUID) error

	// ListExpiredPending returns the ids of PENDING_PAYMENT rentals
	// created strictly before the cutoff instant. Ids are returned
	// instead of full rows because each one is re-read and cancelled
	// in its own transaction afterwards.
	ListExpiredPending(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)

	// TotalRevenue sums the total price over all PAID rentals.
	TotalRevenue(ctx context.Context) (int64, error)
}

// RentalsConnQueryer is the Conn-bound variant of RentalsQueryer.
type RentalsConnQueryer interface {
	RentalsQueryer
}

// RentalsTxQueryer is the Tx-bound variant of RentalsQueryer.
type RentalsTxQueryer interface {
	RentalsQueryer
}

// Rentals binds rental ledger statements to a borrowed connection or
// transaction.
type Rentals interface {
	Conn(Conn) RentalsConnQueryer
	Tx(Tx) RentalsTxQueryer
}

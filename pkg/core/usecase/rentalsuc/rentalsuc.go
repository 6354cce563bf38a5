// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package rentalsuc contains the rentals UseCase which owns the rental
// lifecycle: booking a car, confirming its payment, cancelling it, and
// expiring unpaid bookings after the payment window elapses.
// It is the only component allowed to write the rental status or to
// flip a car between AVAILABLE, RESERVED, and RENTED; every transition
// touches the rental row and the car row in one transaction, so a
// reader can never observe a PAID rental whose car is still RESERVED
// or vice versa.
package rentalsuc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/core/cerr"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
)

// Booking time errors, reported as cerr.BadRequest by Create.
var (
	// ErrStartNotTomorrow rejects bookings which do not begin exactly
	// on the day after the server date.
	ErrStartNotTomorrow = errors.New("rental must start tomorrow")

	// ErrEndNotAfterStart rejects bookings whose end date is on or
	// before their start date.
	ErrEndNotAfterStart = errors.New("rental must end after it starts")
)

// ErrNotAwaitingPayment rejects a payment confirmation for a rental
// which is not in the PENDING_PAYMENT status, reported as
// cerr.Conflict by ConfirmPayment.
var ErrNotAwaitingPayment = errors.New("rental is not awaiting payment")

// UseCase represents the rentals use case. It holds a database
// connection pool and the rentals, cars, and users repository
// instances (to be guided with connections or transactions from that
// pool), in addition to the payment window and sweep interval
// settings.
type UseCase struct {
	pool      repo.Pool
	rentalsrp repo.Rentals
	carsrp    repo.Cars
	usersrp   repo.Users

	paymentWindow time.Duration
	sweepInterval time.Duration
	now           func() time.Time
}

// New instantiates a rentals use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(
	p repo.Pool,
	rentals repo.Rentals,
	cars repo.Cars,
	users repo.Users,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{
		pool:      p,
		rentalsrp: rentals,
		carsrp:    cars,
		usersrp:   users,
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.paymentWindow == 0 {
		uc.paymentWindow = 5 * time.Minute
	}
	if uc.sweepInterval == 0 {
		uc.sweepInterval = time.Minute
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc, nil
}

// dateOnly drops the clock part of t, keeping the calendar day in UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Create books the car identified by carID for the client identified
// by clientEmail, over the [start, end) date range. The start date
// must be exactly tomorrow relative to the server date and the end
// date must fall strictly after it. The total price is computed as
// the car per-day price times the number of charged days.
//
// Within one transaction, the car is flipped from AVAILABLE to
// RESERVED with a conditional update and the rental row is inserted
// in the PENDING_PAYMENT status. An unknown client email or car id
// yields a wrapped cerr.NotFound error; a car which exists but is not
// AVAILABLE yields a wrapped cerr.Conflict error, so out of several
// concurrent bookings of one car exactly one can succeed.
func (rentals *UseCase) Create(
	ctx context.Context,
	clientEmail string,
	carID uuid.UUID,
	start, end time.Time,
) (r *model.Rental, err error) {
	start, end = dateOnly(start), dateOnly(end)
	tomorrow := dateOnly(rentals.now()).AddDate(0, 0, 1)
	if !start.Equal(tomorrow) {
		return nil, cerr.BadRequest(ErrStartNotTomorrow)
	}
	if !end.After(start) {
		return nil, cerr.BadRequest(ErrEndNotAfterStart)
	}
	err = rentals.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			uq := rentals.usersrp.Tx(tx)
			client, err := uq.GetByEmail(ctx, clientEmail)
			if err != nil {
				return fmt.Errorf("resolving client: %w", err)
			}
			cq := rentals.carsrp.Tx(tx)
			car, err := cq.Reserve(ctx, carID)
			if err != nil {
				return fmt.Errorf("reserving car: %w", err)
			}
			r = &model.Rental{
				ClientID:  client.ID,
				CarID:     car.ID,
				StartDate: start,
				EndDate:   end,
				Status:    model.RentalPendingPayment,
				CreatedAt: rentals.now(),
			}
			r.TotalPrice = car.PricePerDay * r.Days()
			rq := rentals.rentalsrp.Tx(tx)
			if err := rq.Create(ctx, r); err != nil {
				return fmt.Errorf("inserting rental: %w", err)
			}
			r.Client, r.Car = client, car
			return nil
		})
	})
	if err != nil {
		r = nil
	}
	return
}

// ConfirmPayment moves a PENDING_PAYMENT rental to PAID and its car
// from RESERVED to RENTED, atomically. A missing rental id yields a
// wrapped cerr.NotFound error and a rental in any other status yields
// a wrapped cerr.Conflict error, so a cancelled booking can not be
// paid afterwards.
func (rentals *UseCase) ConfirmPayment(
	ctx context.Context, rentalID uuid.UUID,
) (r *model.Rental, err error) {
	err = rentals.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			rq := rentals.rentalsrp.Tx(tx)
			cur, err := rq.GetByID(ctx, rentalID)
			if err != nil {
				return fmt.Errorf("loading rental: %w", err)
			}
			if cur.Status != model.RentalPendingPayment {
				return cerr.Conflict(ErrNotAwaitingPayment)
			}
			r, err = rq.UpdateStatus(ctx, rentalID, model.RentalPaid)
			if err != nil {
				return fmt.Errorf("marking rental paid: %w", err)
			}
			cq := rentals.carsrp.Tx(tx)
			car, err := cq.SetStatus(ctx, cur.CarID, model.CarRented)
			if err != nil {
				return fmt.Errorf("marking car rented: %w", err)
			}
			r.Car, r.Client = car, cur.Client
			return nil
		})
	})
	if err != nil {
		r = nil
	}
	return
}

// Cancel releases the car of a rental back to AVAILABLE and disposes
// of the rental row depending on its status: a PENDING_PAYMENT row is
// deleted entirely while a PAID row is kept with the CANCELLED status.
// A rental in any other status only releases the car. Everything
// commits in one transaction. A missing rental id yields a wrapped
// cerr.NotFound error.
func (rentals *UseCase) Cancel(
	ctx context.Context, rentalID uuid.UUID,
) error {
	return rentals.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			rq := rentals.rentalsrp.Tx(tx)
			cur, err := rq.GetByID(ctx, rentalID)
			if err != nil {
				return fmt.Errorf("loading rental: %w", err)
			}
			cq := rentals.carsrp.Tx(tx)
			if _, err := cq.SetStatus(ctx, cur.CarID, model.CarAvailable); err != nil {
				return fmt.Errorf("releasing car: %w", err)
			}
			switch cur.Status {
			case model.RentalPendingPayment:
				if err := rq.Delete(ctx, rentalID); err != nil {
					return fmt.Errorf("deleting unpaid rental: %w", err)
				}
			case model.RentalPaid:
				if _, err := rq.UpdateStatus(ctx, rentalID, model.RentalCancelled); err != nil {
					return fmt.Errorf("cancelling paid rental: %w", err)
				}
			}
			return nil
		})
	})
}

// GetByID loads one rental with its car and client associations.
func (rentals *UseCase) GetByID(
	ctx context.Context, rentalID uuid.UUID,
) (r *model.Rental, err error) {
	err = rentals.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		r, err = rentals.rentalsrp.Conn(c).GetByID(ctx, rentalID)
		return err
	})
	if err != nil {
		r = nil
	}
	return
}

// ListByClient returns the rentals of one client, newest first.
func (rentals *UseCase) ListByClient(
	ctx context.Context, clientEmail string,
) (rs []model.Rental, err error) {
	err = rentals.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		rs, err = rentals.rentalsrp.Conn(c).ListByClientEmail(ctx, clientEmail)
		return err
	})
	if err != nil {
		rs = nil
	}
	return
}

// ListAll returns rentals matching the filter for the back office.
func (rentals *UseCase) ListAll(
	ctx context.Context, f repo.RentalFilter,
) (rs []model.Rental, err error) {
	err = rentals.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		rs, err = rentals.rentalsrp.Conn(c).ListAll(ctx, f)
		return err
	})
	if err != nil {
		rs = nil
	}
	return
}

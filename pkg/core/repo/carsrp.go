// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/core/model"
)

// CarSort selects the ordering of a car listing.
type CarSort int

// Supported car listing orders.
const (
	CarSortDefault   CarSort = iota // storage order
	CarSortPriceAsc                 // cheapest first
	CarSortPriceDesc                // most expensive first
)

// CarFilter narrows down a car listing. Nil and zero valued fields are
// ignored, so the empty filter matches the whole fleet. Price bounds
// are expressed in minor currency units per day.
type CarFilter struct {
	Status   *model.CarStatus
	BrandID  *uuid.UUID
	Year     *int
	Color    string // case-insensitive equality
	City     string // case-insensitive equality
	MinPrice *int64
	MaxPrice *int64
	Sort     CarSort
}

// CarsQueryer declares the car statements which may run on either a
// connection or a transaction.
type CarsQueryer interface {
	// GetByID loads one car with its brand and model associations,
	// returning a wrapped cerr.NotFound error for a missing id.
	GetByID(ctx context.Context, carID uuid.UUID) (*model.Car, error)

	// List returns cars matching the filter, associations included.
	List(ctx context.Context, f CarFilter) ([]model.Car, error)

	// Create inserts the car, assigning a fresh id to c.
	Create(ctx context.Context, c *model.Car) error

	// Update overwrites all columns of an existing car.
	Update(ctx context.Context, c *model.Car) error

	// Delete removes the car row.
	Delete(ctx context.Context, carID uuid.UUID) error

	// Reserve atomically flips an AVAILABLE car to RESERVED and
	// returns the updated row. It fails with a wrapped cerr.NotFound
	// error when the car does not exist and with a wrapped
	// cerr.Conflict error when the car exists in any other status,
	// so two concurrent reservations of one car see exactly one
	// winner.
	Reserve(ctx context.Context, carID uuid.UUID) (*model.Car, error)

	// SetStatus unconditionally moves the car to the given status and
	// returns the updated row, failing with a wrapped cerr.NotFound
	// error for a missing id.
	SetStatus(ctx context.Context, carID uuid.UUID, s model.CarStatus) (*model.Car, error)

	// CountByBrand reports how many cars reference the brand.
	CountByBrand(ctx context.Context, brandID uuid.UUID) (int64, error)

	// CountByModel reports how many cars reference the model.
	CountByModel(ctx context.Context, modelID uuid.UUID) (int64, error)

	// CountByStatus reports the fleet size grouped by car status.
	CountByStatus(ctx context.Context) (map[model.CarStatus]int64, error)
}

// CarsConnQueryer is the Conn-bound variant of CarsQueryer.
type CarsConnQueryer interface {
	CarsQueryer
}

// CarsTxQueryer is the Tx-bound variant of CarsQueryer.
type CarsTxQueryer interface {
	CarsQueryer
}

// Cars binds car statements to a borrowed connection or transaction.
type Cars interface {
	Conn(Conn) CarsConnQueryer
	Tx(Tx) CarsTxQueryer
}

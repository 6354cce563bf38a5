// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsuc contains the cars UseCase which serves the browsable
// catalog (available cars with filters, sorting, and filter facets)
// and the back-office fleet management, covering cars as well as the
// brand and model reference data.
package carsuc

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/core/cerr"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
)

// ErrPlateRequired rejects a car without a licence plate, reported as
// cerr.BadRequest by SaveCar.
var ErrPlateRequired = errors.New("licence plate is required")

// Reference-data deletion guards, reported as cerr.Conflict.
var (
	ErrBrandInUse = errors.New("brand is referenced by models or cars")
	ErrModelInUse = errors.New("model is referenced by cars")
)

// UseCase represents the cars use case. It holds a database connection
// pool and the cars and catalog repository instances (to be guided
// with connections or transactions from that pool).
type UseCase struct {
	pool      repo.Pool
	carsrp    repo.Cars
	catalogrp repo.Catalog
}

// New instantiates a cars use case.
func New(p repo.Pool, cars repo.Cars, catalog repo.Catalog) *UseCase {
	return &UseCase{pool: p, carsrp: cars, catalogrp: catalog}
}

// Facets lists the distinct filter values present in a set of cars,
// so the catalog page can offer only reachable filter combinations.
// Price bounds are reported in major currency units per day, rounded
// down, and cover the whole available fleet rather than the filtered
// subset.
type Facets struct {
	Brands   []model.Brand
	Years    []int
	Colors   []string
	Cities   []string
	MinPrice int64 // major units, over all available cars
	MaxPrice int64 // major units, over all available cars
}

// AvailableCars returns the AVAILABLE cars matching the filter
// together with the facets of the result set. The status part of the
// filter is forced to AVAILABLE regardless of the caller's value, so
// reserved, rented, and maintenance cars never leak into the catalog.
func (cars *UseCase) AvailableCars(
	ctx context.Context, f repo.CarFilter,
) (list []model.Car, facets *Facets, err error) {
	status := model.CarAvailable
	f.Status = &status
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := cars.carsrp.Conn(c)
		list, err = q.List(ctx, f)
		if err != nil {
			return fmt.Errorf("listing cars: %w", err)
		}
		all := list
		if f.BrandID != nil || f.Year != nil || f.Color != "" ||
			f.City != "" || f.MinPrice != nil || f.MaxPrice != nil {
			// price bounds span the unfiltered available fleet
			all, err = q.List(ctx, repo.CarFilter{Status: &status})
			if err != nil {
				return fmt.Errorf("listing available fleet: %w", err)
			}
		}
		facets = collectFacets(list, all)
		return nil
	})
	if err != nil {
		list, facets = nil, nil
	}
	return
}

// collectFacets extracts the distinct brands, years, colors, and
// cities of the filtered cars and the price bounds of the whole
// available fleet.
func collectFacets(filtered, all []model.Car) *Facets {
	fc := &Facets{}
	brands := map[uuid.UUID]model.Brand{}
	years := map[int]struct{}{}
	colors := map[string]struct{}{}
	cities := map[string]struct{}{}
	for _, c := range filtered {
		if c.Brand != nil {
			brands[c.Brand.ID] = *c.Brand
		}
		if c.Year != 0 {
			years[c.Year] = struct{}{}
		}
		if c.Color != "" {
			colors[c.Color] = struct{}{}
		}
		if c.City != "" {
			cities[c.City] = struct{}{}
		}
	}
	for _, b := range brands {
		fc.Brands = append(fc.Brands, b)
	}
	sort.Slice(fc.Brands, func(i, j int) bool {
		return fc.Brands[i].Name < fc.Brands[j].Name
	})
	for y := range years {
		fc.Years = append(fc.Years, y)
	}
	sort.Ints(fc.Years)
	for c := range colors {
		fc.Colors = append(fc.Colors, c)
	}
	sort.Strings(fc.Colors)
	for c := range cities {
		fc.Cities = append(fc.Cities, c)
	}
	sort.Strings(fc.Cities)
	for i, c := range all {
		p := c.PricePerDay / 100
		if i == 0 || p < fc.MinPrice {
			fc.MinPrice = p
		}
		if p > fc.MaxPrice {
			fc.MaxPrice = p
		}
	}
	return fc
}

// ListCars returns cars matching the filter regardless of status, for
// the back office.
func (cars *UseCase) ListCars(
	ctx context.Context, f repo.CarFilter,
) (list []model.Car, err error) {
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		list, err = cars.carsrp.Conn(c).List(ctx, f)
		return err
	})
	if err != nil {
		list = nil
	}
	return
}

// GetCar loads one car with its brand and model associations.
func (cars *UseCase) GetCar(
	ctx context.Context, carID uuid.UUID,
) (car *model.Car, err error) {
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		car, err = cars.carsrp.Conn(c).GetByID(ctx, carID)
		return err
	})
	if err != nil {
		car = nil
	}
	return
}

// SaveCar creates the car when its id is zero and updates it
// otherwise. The licence plate is mandatory and the status must be a
// known CarStatus value.
func (cars *UseCase) SaveCar(
	ctx context.Context, car *model.Car,
) error {
	if strings.TrimSpace(car.LicensePlate) == "" {
		return cerr.BadRequest(ErrPlateRequired)
	}
	if err := car.Status.Validate(); err != nil {
		return cerr.BadRequest(err)
	}
	return cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := cars.carsrp.Conn(c)
		if car.ID == uuid.Nil {
			return q.Create(ctx, car)
		}
		return q.Update(ctx, car)
	})
}

// DeleteCar removes one car from the fleet.
func (cars *UseCase) DeleteCar(
	ctx context.Context, carID uuid.UUID,
) error {
	return cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return cars.carsrp.Conn(c).Delete(ctx, carID)
	})
}

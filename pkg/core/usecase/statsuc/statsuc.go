// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package statsuc contains the stats UseCase which aggregates the
// figures of the admin dashboard: fleet size by status, client count,
// and revenue over paid rentals.
package statsuc

import (
	"context"
	"fmt"

	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
)

// Summary is the admin dashboard snapshot. Revenue is expressed in
// minor currency units.
type Summary struct {
	TotalCars    int64
	TotalClients int64
	TotalRevenue int64
	CarsByStatus map[model.CarStatus]int64
}

// UseCase represents the stats use case. It holds a database
// connection pool and the cars, users, and rentals repository
// instances.
type UseCase struct {
	pool      repo.Pool
	carsrp    repo.Cars
	usersrp   repo.Users
	rentalsrp repo.Rentals
}

// New instantiates a stats use case.
func New(
	p repo.Pool, cars repo.Cars, users repo.Users, rentals repo.Rentals,
) *UseCase {
	return &UseCase{
		pool:      p,
		carsrp:    cars,
		usersrp:   users,
		rentalsrp: rentals,
	}
}

// Summarize collects the dashboard figures on one borrowed connection.
// The counts are plain reads; a torn snapshot between them is
// acceptable for a dashboard.
func (stats *UseCase) Summarize(ctx context.Context) (s *Summary, err error) {
	err = stats.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		byStatus, err := stats.carsrp.Conn(c).CountByStatus(ctx)
		if err != nil {
			return fmt.Errorf("counting cars: %w", err)
		}
		clients, err := stats.usersrp.Conn(c).CountByRole(ctx, model.RoleUser)
		if err != nil {
			return fmt.Errorf("counting clients: %w", err)
		}
		revenue, err := stats.rentalsrp.Conn(c).TotalRevenue(ctx)
		if err != nil {
			return fmt.Errorf("summing revenue: %w", err)
		}
		s = &Summary{
			TotalClients: clients,
			TotalRevenue: revenue,
			CarsByStatus: byStatus,
		}
		for _, n := range byStatus {
			s.TotalCars += n
		}
		return nil
	})
	if err != nil {
		s = nil
	}
	return
}

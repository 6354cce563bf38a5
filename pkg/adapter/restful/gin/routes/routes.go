// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/izhdrive/rentweb/pkg/adapter/config"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres/carsrp"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres/catalogrp"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres/rentalsrp"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres/usersrp"
	"github.com/izhdrive/rentweb/pkg/adapter/hash/bcrypt"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/authrs"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/carsrs"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/catalogrs"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/middleware"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/rentalsrs"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/statsrs"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/usersrs"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
	"github.com/izhdrive/rentweb/pkg/core/usecase/carsuc"
	"github.com/izhdrive/rentweb/pkg/core/usecase/rentalsuc"
	"github.com/izhdrive/rentweb/pkg/core/usecase/statsuc"
	"github.com/izhdrive/rentweb/pkg/core/usecase/usersuc"
)

// Register instantiates relevant repositories and use cases based on
// the c configuration settings. The p connections pool is passed to
// the use case instances, so they may acquire/release connections
// and transactions on demand. These connections/transactions will be
// passed to the repositories later in order to run relevant queries on
// them and accomplish those use cases. Each use case package is named
// like carsuc and each repository package is named like carsrp.
// Register instantiates a series of "resource" structs, from packages
// which are named like carsrs, in order to adapt the use cases
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance, in three
// groups: the public routes, the authenticated routes, and the
// admin-only routes.
// The rentals use case instance is returned, so the caller may run
// its expired bookings sweeper for the daemon lifetime.
// Possible errors will be returned after possible wrapping.
func Register(
	e *gin.Engine, p repo.Pool, c *config.Config,
) (*rentalsuc.UseCase, error) {
	carsRepo := carsrp.New()
	catalogRepo := catalogrp.New()
	usersRepo := usersrp.New()
	rentalsRepo := rentalsrp.New()

	tokens, err := c.Auth.NewTokenManager()
	if err != nil {
		return nil, fmt.Errorf("creating token manager: %w", err)
	}
	usersUseCase := usersuc.New(p, usersRepo, bcrypt.New())
	carsUseCase := carsuc.New(p, carsRepo, catalogRepo)
	statsUseCase := statsuc.New(p, carsRepo, usersRepo, rentalsRepo)
	rentalsUseCase, err := c.Usecases.Rentals.NewUseCase(
		p, rentalsRepo, carsRepo, usersRepo,
	)
	if err != nil {
		return nil, fmt.Errorf("creating rentals use case: %w", err)
	}

	r := e.Group("/api/rentweb/v1")
	authrs.Register(r, usersUseCase, tokens)
	carsrs.Register(r, carsUseCase)
	catalogrs.Register(r, carsUseCase)

	authed := r.Group("", middleware.Authenticate(tokens))
	usersrs.Register(authed, usersUseCase)
	rentalsrs.Register(authed, rentalsUseCase)

	admin := authed.Group("admin", middleware.RequireRole(model.RoleAdmin))
	carsrs.RegisterAdmin(admin, carsUseCase)
	catalogrs.RegisterAdmin(admin, carsUseCase)
	usersrs.RegisterAdmin(admin, usersUseCase)
	rentalsrs.RegisterAdmin(admin, rentalsUseCase)
	statsrs.RegisterAdmin(admin, statsUseCase)
	return rentalsUseCase, nil
}

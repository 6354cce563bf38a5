// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsrs realizes the cars resource, adapting the public
// catalog listing and the back-office fleet management REST APIs to
// the cars use case.
package carsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/serdser"
	"github.com/izhdrive/rentweb/pkg/core/usecase/carsuc"
)

type resource struct {
	cars *carsuc.UseCase
}

// Register instantiates a resource adapting the cars use case
// instance with the public REST APIs including:
//  1. GET request to /api/rentweb/v1/cars
//     in order to list the available cars with their filter facets.
//  2. GET request to /api/rentweb/v1/cars/:cid
//     in order to fetch one car.
func Register(r *gin.RouterGroup, cars *carsuc.UseCase) {
	rs := &resource{cars: cars}
	r.GET("cars", rs.AvailableCars)
	r.GET("cars/:cid", rs.GetCar)
}

// RegisterAdmin instantiates a resource adapting the cars use case
// instance with the back-office REST APIs including:
//  1. GET request to /cars in order to list the whole fleet.
//  2. POST request to /cars in order to add a car.
//  3. PUT request to /cars/:cid in order to update a car.
//  4. DELETE request to /cars/:cid in order to remove a car.
//
// The r group is expected to be guarded by the ADMIN role.
func RegisterAdmin(r *gin.RouterGroup, cars *carsuc.UseCase) {
	rs := &resource{cars: cars}
	r.GET("cars", rs.ListFleet)
	r.POST("cars", rs.CreateCar)
	r.PUT("cars/:cid", rs.UpdateCar)
	r.DELETE("cars/:cid", rs.DeleteCar)
}

func (rs *resource) AvailableCars(c *gin.Context) {
	f := dserCarFilter(c)
	if f == nil {
		return
	}
	list, facets, err := rs.cars.AvailableCars(c, *f)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cars":   serCars(list),
		"facets": serFacets(facets),
	})
}

func (rs *resource) GetCar(c *gin.Context) {
	carID, ok := dserCarID(c)
	if !ok {
		return
	}
	car, err := rs.cars.GetCar(c, carID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serCar(car))
}

func (rs *resource) ListFleet(c *gin.Context) {
	f := dserCarFilter(c)
	if f == nil {
		return
	}
	list, err := rs.cars.ListCars(c, *f)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serCars(list))
}

func (rs *resource) CreateCar(c *gin.Context) {
	car := dserSaveCarReq(c, uuid.Nil)
	if car == nil {
		return
	}
	if err := rs.cars.SaveCar(c, car); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serCar(car))
}

func (rs *resource) UpdateCar(c *gin.Context) {
	carID, ok := dserCarID(c)
	if !ok {
		return
	}
	car := dserSaveCarReq(c, carID)
	if car == nil {
		return
	}
	if err := rs.cars.SaveCar(c, car); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serCar(car))
}

func (rs *resource) DeleteCar(c *gin.Context) {
	carID, ok := dserCarID(c)
	if !ok {
		return
	}
	if err := rs.cars.DeleteCar(c, carID); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

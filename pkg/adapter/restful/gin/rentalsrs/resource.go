// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package rentalsrs realizes the rentals resource, adapting the
// booking, payment, and cancellation REST APIs to the rentals use
// case. The client facing handlers resolve the acting account from
// the verified token claims, so a client may only touch their own
// rentals; the back-office handlers skip the ownership check.
package rentalsrs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/middleware"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/serdser"
	"github.com/izhdrive/rentweb/pkg/core/cerr"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/usecase/rentalsuc"
)

var errNotOwner = errors.New("rental belongs to another client")

type resource struct {
	rentals *rentalsuc.UseCase
}

// Register instantiates a resource adapting the rentals use case
// instance with the client facing REST APIs including:
//  1. POST request to /api/rentweb/v1/rentals
//     in order to book a car.
//  2. GET request to /api/rentweb/v1/rentals/my
//     in order to list the acting client rentals.
//  3. POST request to /api/rentweb/v1/rentals/:rid/payment
//     in order to submit the card form and confirm a payment.
//  4. POST request to /api/rentweb/v1/rentals/:rid/cancel
//     in order to cancel a rental.
//
// The r group is expected to be guarded by the Authenticate
// middleware.
func Register(r *gin.RouterGroup, rentals *rentalsuc.UseCase) {
	rs := &resource{rentals: rentals}
	r.POST("rentals", rs.Book)
	r.GET("rentals/my", rs.MyRentals)
	r.POST("rentals/:rid/payment", rs.Pay)
	r.POST("rentals/:rid/cancel", rs.Cancel)
}

// RegisterAdmin instantiates a resource adapting the rentals use case
// instance with the back-office REST APIs including:
//  1. GET request to /rentals in order to list all rentals with the
//     plate, email, status, and sort filters.
//  2. POST request to /rentals/:rid/cancel in order to cancel any
//     rental regardless of its owner.
//
// The r group is expected to be guarded by the ADMIN role.
func RegisterAdmin(r *gin.RouterGroup, rentals *rentalsuc.UseCase) {
	rs := &resource{rentals: rentals}
	r.GET("rentals", rs.ListAll)
	r.POST("rentals/:rid/cancel", rs.CancelAny)
}

func (rs *resource) Book(c *gin.Context) {
	claims := middleware.Claims(c)
	req := dserBookingReq(c)
	if req == nil {
		return
	}
	r, err := rs.rentals.Create(
		c, claims.Email, req.CarID, req.Start, req.End,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serRental(r))
}

func (rs *resource) MyRentals(c *gin.Context) {
	claims := middleware.Claims(c)
	list, err := rs.rentals.ListByClient(c, claims.Email)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serRentals(list))
}

// owned loads one rental and checks that it belongs to the acting
// client. Admin tokens pass the check for any rental.
func (rs *resource) owned(c *gin.Context) *model.Rental {
	rentalID, ok := dserRentalID(c)
	if !ok {
		return nil
	}
	r, err := rs.rentals.GetByID(c, rentalID)
	if err != nil {
		serdser.SerErr(c, err)
		return nil
	}
	claims := middleware.Claims(c)
	if claims.Role != model.RoleAdmin && r.ClientID != claims.UserID {
		serdser.SerErr(c, cerr.Authorization(errNotOwner))
		return nil
	}
	return r
}

func (rs *resource) Pay(c *gin.Context) {
	r := rs.owned(c)
	if r == nil {
		return
	}
	if !dserCardReq(c) {
		return
	}
	r, err := rs.rentals.ConfirmPayment(c, r.ID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serRental(r))
}

func (rs *resource) Cancel(c *gin.Context) {
	r := rs.owned(c)
	if r == nil {
		return
	}
	if err := rs.rentals.Cancel(c, r.ID); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) ListAll(c *gin.Context) {
	f := dserRentalFilter(c)
	if f == nil {
		return
	}
	list, err := rs.rentals.ListAll(c, *f)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serRentals(list))
}

func (rs *resource) CancelAny(c *gin.Context) {
	rentalID, ok := dserRentalID(c)
	if !ok {
		return
	}
	if err := rs.rentals.Cancel(c, rentalID); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package usersrs realizes the accounts resource, adapting the
// profile self-service and the back-office account management REST
// APIs to the users use case.
package usersrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/middleware"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/serdser"
	"github.com/izhdrive/rentweb/pkg/core/usecase/usersuc"
)

type resource struct {
	users *usersuc.UseCase
}

// Register instantiates a resource adapting the users use case
// instance with the profile self-service REST APIs including:
//  1. GET request to /api/rentweb/v1/profile
//     in order to load the acting account.
//  2. PUT request to /api/rentweb/v1/profile
//     in order to overwrite the editable account fields.
//  3. PUT request to /api/rentweb/v1/profile/password
//     in order to change the password.
//
// The r group is expected to be guarded by the Authenticate
// middleware.
func Register(r *gin.RouterGroup, users *usersuc.UseCase) {
	rs := &resource{users: users}
	r.GET("profile", rs.Profile)
	r.PUT("profile", rs.UpdateProfile)
	r.PUT("profile/password", rs.ChangePassword)
}

// RegisterAdmin instantiates a resource adapting the users use case
// instance with the back-office REST APIs including:
//  1. GET request to /users in order to list accounts with the email
//     and role filters.
//  2. PUT request to /users/:uid in order to edit any account.
//  3. PUT request to /users/:uid/role in order to switch the role.
//  4. DELETE request to /users/:uid in order to remove an account.
//
// The r group is expected to be guarded by the ADMIN role.
func RegisterAdmin(r *gin.RouterGroup, users *usersuc.UseCase) {
	rs := &resource{users: users}
	r.GET("users", rs.ListUsers)
	r.PUT("users/:uid", rs.UpdateUser)
	r.PUT("users/:uid/role", rs.UpdateRole)
	r.DELETE("users/:uid", rs.DeleteUser)
}

func (rs *resource) Profile(c *gin.Context) {
	claims := middleware.Claims(c)
	u, err := rs.users.GetByID(c, claims.UserID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serUser(u))
}

func (rs *resource) UpdateProfile(c *gin.Context) {
	claims := middleware.Claims(c)
	p := dserProfileReq(c)
	if p == nil {
		return
	}
	u, err := rs.users.UpdateProfile(c, claims.UserID, *p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serUser(u))
}

func (rs *resource) ChangePassword(c *gin.Context) {
	claims := middleware.Claims(c)
	req := &passwordReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	err := rs.users.ChangePassword(c, claims.UserID, req.Current, req.Next)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) ListUsers(c *gin.Context) {
	f := dserUserFilter(c)
	if f == nil {
		return
	}
	us, err := rs.users.List(c, *f)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serUsers(us))
}

func (rs *resource) UpdateUser(c *gin.Context) {
	userID, ok := dserUserID(c)
	if !ok {
		return
	}
	p := dserProfileReq(c)
	if p == nil {
		return
	}
	u, err := rs.users.UpdateProfile(c, userID, *p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serUser(u))
}

func (rs *resource) UpdateRole(c *gin.Context) {
	userID, ok := dserUserID(c)
	if !ok {
		return
	}
	role, ok := dserRoleReq(c)
	if !ok {
		return
	}
	if err := rs.users.UpdateRole(c, userID, role); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) DeleteUser(c *gin.Context) {
	userID, ok := dserUserID(c)
	if !ok {
		return
	}
	if err := rs.users.Delete(c, userID); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

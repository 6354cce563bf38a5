// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package authrs realizes the authentication resource, adapting the
// registration and login REST APIs to the users use case and the
// token manager.
package authrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/izhdrive/rentweb/pkg/adapter/auth/jwt"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/serdser"
	"github.com/izhdrive/rentweb/pkg/core/usecase/usersuc"
)

type resource struct {
	users  *usersuc.UseCase
	tokens *jwt.Manager
}

// Register instantiates a resource adapting the users use case and
// the tokens manager with the relevant REST APIs including:
//  1. POST request to /api/rentweb/v1/auth/register
//     in order to create a client account.
//  2. POST request to /api/rentweb/v1/auth/login
//     in order to obtain a bearer token.
func Register(
	r *gin.RouterGroup, users *usersuc.UseCase, tokens *jwt.Manager,
) {
	rs := &resource{users: users, tokens: tokens}
	r.POST("auth/register", rs.RegisterAccount)
	r.POST("auth/login", rs.Login)
}

func (rs *resource) RegisterAccount(c *gin.Context) {
	reg := rs.dserRegisterReq(c)
	if reg == nil {
		return
	}
	u, err := rs.users.Register(c, *reg)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serUser(u))
}

func (rs *resource) Login(c *gin.Context) {
	req := &loginReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	u, err := rs.users.Authenticate(c, req.Email, req.Password)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	token, err := rs.tokens.Sign(u)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  serUser(u),
	})
}

// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package middleware guards route groups with the bearer token
// authentication and the role based authorization checks.
package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/izhdrive/rentweb/pkg/adapter/auth/jwt"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/serdser"
	"github.com/izhdrive/rentweb/pkg/core/cerr"
	"github.com/izhdrive/rentweb/pkg/core/model"
)

// claimsKey stores the verified token claims in the gin context.
const claimsKey = "auth-claims"

const bearerPrefix = "Bearer "

var (
	errMissingToken = errors.New("missing bearer token")
	errForbidden    = errors.New("insufficient role")
)

// Authenticate verifies the Authorization header with the tokens
// manager and stores the claims in the request context, aborting
// unauthenticated requests with the 401 status code.
func Authenticate(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			serdser.SerErr(c, cerr.Authentication(errMissingToken))
			c.Abort()
			return
		}
		claims, err := tokens.Verify(
			strings.TrimPrefix(header, bearerPrefix),
		)
		if err != nil {
			serdser.SerErr(c, cerr.Authentication(err))
			c.Abort()
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole aborts requests whose verified claims hold none of the
// given roles with the 403 status code. It must be registered after
// the Authenticate middleware.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			serdser.SerErr(c, cerr.Authentication(errMissingToken))
			c.Abort()
			return
		}
		for _, r := range roles {
			if claims.Role == r {
				c.Next()
				return
			}
		}
		serdser.SerErr(c, cerr.Authorization(errForbidden))
		c.Abort()
	}
}

// Claims returns the verified token claims of the request, or nil
// when the Authenticate middleware did not run.
func Claims(c *gin.Context) *jwt.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		return nil
	}
	return claims
}

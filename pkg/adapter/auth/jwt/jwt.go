// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package jwt issues and verifies the bearer tokens of the rentweb
// API, relying on the github.com/golang-jwt/jwt module with the HS256
// signing method. Tokens carry the account id, email, and role, so
// the authentication middleware does not need a database roundtrip
// per request.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/core/model"
)

// Claims is the verified content of one bearer token.
type Claims struct {
	UserID uuid.UUID  `json:"uid"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with one shared secret.
// It is safe for concurrent use.
type Manager struct {
	secret   []byte
	lifetime time.Duration
}

// ErrBadToken indicates an expired, malformed, or forged token.
// The verification details are not reported to the caller, so they
// cannot leak into a response.
var ErrBadToken = errors.New("invalid token")

// New instantiates a Manager. The secret must be non-empty and the
// lifetime positive.
func New(secret string, lifetime time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("empty signing secret")
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("non-positive lifetime: %v", lifetime)
	}
	return &Manager{
		secret:   []byte(secret),
		lifetime: lifetime,
	}, nil
}

// Sign issues a token for the given account, expiring after the
// configured lifetime.
func (m *Manager) Sign(u *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
			ID:        uuid.New().String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses a token string, checking its signature, expiry, and
// the embedded role value. All failures map to the ErrBadToken error.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString, claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf(
					"unexpected method: %v", token.Header["alg"],
				)
			}
			return m.secret, nil
		},
	)
	if err != nil || !token.Valid {
		return nil, ErrBadToken
	}
	if err := claims.Role.Validate(); err != nil {
		return nil, ErrBadToken
	}
	return claims, nil
}

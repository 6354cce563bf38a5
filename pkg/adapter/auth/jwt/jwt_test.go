// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package jwt_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/adapter/auth/jwt"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadSettings(t *testing.T) {
	_, err := jwt.New("", time.Hour)
	assert.Error(t, err, "empty secret must be rejected")
	_, err = jwt.New("secret", 0)
	assert.Error(t, err, "zero lifetime must be rejected")
	_, err = jwt.New("secret", -time.Minute)
	assert.Error(t, err, "negative lifetime must be rejected")
}

func TestSignVerifyRoundTrip(t *testing.T) {
	m, err := jwt.New("test-secret", time.Hour)
	require.NoError(t, err)
	u := &model.User{
		ID:    uuid.New(),
		Email: "client@example.org",
		Role:  model.RoleUser,
	}
	token, err := m.Sign(u)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, model.RoleUser, claims.Role)
}

func TestVerifyRejections(t *testing.T) {
	m, err := jwt.New("test-secret", time.Hour)
	require.NoError(t, err)
	u := &model.User{
		ID:    uuid.New(),
		Email: "client@example.org",
		Role:  model.RoleUser,
	}
	token, err := m.Sign(u)
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrBadToken)
	})
	t.Run("tampered", func(t *testing.T) {
		_, err := m.Verify(token + "x")
		assert.ErrorIs(t, err, jwt.ErrBadToken)
	})
	t.Run("wrong secret", func(t *testing.T) {
		m2, err := jwt.New("another-secret", time.Hour)
		require.NoError(t, err)
		_, err = m2.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrBadToken)
	})
	t.Run("expired", func(t *testing.T) {
		m3, err := jwt.New("test-secret", time.Nanosecond)
		require.NoError(t, err)
		expired, err := m3.Sign(u)
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
		_, err = m.Verify(expired)
		assert.ErrorIs(t, err, jwt.ErrBadToken)
	})
	t.Run("bad role", func(t *testing.T) {
		bad, err := m.Sign(&model.User{
			ID:    uuid.New(),
			Email: "x@example.org",
			Role:  model.Role("SUPERVISOR"),
		})
		require.NoError(t, err)
		_, err = m.Verify(bad)
		assert.ErrorIs(t, err, jwt.ErrBadToken)
	})
}

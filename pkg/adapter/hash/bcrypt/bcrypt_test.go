// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package bcrypt_test

import (
	"testing"

	"github.com/izhdrive/rentweb/pkg/adapter/hash/bcrypt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	h := bcrypt.New()
	digest, err := h.Hash("Str0ng?pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng?pass", digest)

	assert.NoError(t, h.Compare(digest, "Str0ng?pass"))
	assert.Error(t, h.Compare(digest, "wrong password"))
	assert.Error(t, h.Compare("not-a-digest", "Str0ng?pass"))
}

func TestHashesDiffer(t *testing.T) {
	h := bcrypt.New()
	d1, err := h.Hash("Str0ng?pass")
	require.NoError(t, err)
	d2, err := h.Hash("Str0ng?pass")
	require.NoError(t, err)
	// each digest embeds a fresh salt
	assert.NotEqual(t, d1, d2)
}

func TestNewWithCost(t *testing.T) {
	_, err := bcrypt.NewWithCost(1000)
	assert.Error(t, err, "out of range cost must be rejected")
	h, err := bcrypt.NewWithCost(4)
	require.NoError(t, err)
	digest, err := h.Hash("Str0ng?pass")
	require.NoError(t, err)
	assert.NoError(t, h.Compare(digest, "Str0ng?pass"))
}

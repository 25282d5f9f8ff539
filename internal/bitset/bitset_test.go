// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFullPopFirstInOrder(t *testing.T) {
	require := require.New(t)

	b := NewFull(5)
	for i := 0; i < 5; i++ {
		idx, ok := b.PopFirst()
		require.True(ok)
		require.Equal(i, idx)
	}
	_, ok := b.PopFirst()
	require.False(ok)
}

func TestSetClearTest(t *testing.T) {
	require := require.New(t)

	b := New(130)
	require.False(b.Test(64))
	b.Set(64)
	require.True(b.Test(64))
	b.Clear(64)
	require.False(b.Test(64))
}

func TestPopFirstRespectsUpperBound(t *testing.T) {
	require := require.New(t)

	b := NewFull(63)
	for i := 0; i < 63; i++ {
		_, ok := b.PopFirst()
		require.True(ok)
	}
	_, ok := b.PopFirst()
	require.False(ok)
}

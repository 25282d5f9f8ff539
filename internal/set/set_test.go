// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddContainsRemove(t *testing.T) {
	require := require.New(t)

	s := New[int]()
	require.False(s.Contains(1))
	s.Add(1)
	require.True(s.Contains(1))
	require.Equal(1, s.Len())
	s.Remove(1)
	require.False(s.Contains(1))
	require.Equal(0, s.Len())
}

func TestNewWithItems(t *testing.T) {
	require := require.New(t)

	s := New(1, 2, 3)
	require.Equal(3, s.Len())
	require.True(s.Contains(2))
}

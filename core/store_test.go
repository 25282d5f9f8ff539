// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreCreateGetClear(t *testing.T) {
	require := require.New(t)

	s := NewStore(8, 2)
	id, err := s.CreateWith(func(a *Agent) { a.Kind = KindTag })
	require.NoError(err)

	a, ok := s.Get(id)
	require.True(ok)
	require.Equal(KindTag, a.Kind)

	s.Clear(id)
	_, ok = s.Get(id)
	require.False(ok)

	// Clear is idempotent.
	s.Clear(id)
}

func TestStoreAllocationFailedAtCapacity(t *testing.T) {
	require := require.New(t)

	s := NewStore(2, 2)
	_, err := s.CreateWith(func(a *Agent) {})
	require.NoError(err)
	_, err = s.CreateWith(func(a *Agent) {})
	require.NoError(err)

	_, err = s.CreateWith(func(a *Agent) {})
	require.Error(err)
	var ierr *Error
	require.ErrorAs(err, &ierr)
	require.Equal(AllocationFailed, ierr.Kind)
}

func TestStoreReusesClearedSlots(t *testing.T) {
	require := require.New(t)

	s := NewStore(1, 1)
	id1, err := s.CreateWith(func(a *Agent) {})
	require.NoError(err)
	s.Clear(id1)

	id2, err := s.CreateWith(func(a *Agent) {})
	require.NoError(err)
	_, ok := s.Get(id2)
	require.True(ok)
}

func TestStoreGetUnknownID(t *testing.T) {
	require := require.New(t)

	s := NewStore(4, 1)
	_, ok := s.Get(AgentID(9999))
	require.False(ok)
}

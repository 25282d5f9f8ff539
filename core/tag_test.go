// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveTagFirstCallerBinds(t *testing.T) {
	require := require.New(t)

	b := NewBuilder(8, 1)
	m := b.Seal()

	tagID, err := m.NewTag()
	require.NoError(err)

	tag, ok := m.store.Get(tagID)
	require.True(ok)

	bound, _ := m.resolveTag(tagID, tag, AgentID(42))
	require.True(bound)

	v := tag.View()
	require.True(v.IsInd)
	require.EqualValues(42, v.Target)

	// The tag slot survives as the indirection node.
	_, ok = m.store.Get(tagID)
	require.True(ok)
}

func TestResolveTagSecondCallerFollowsThroughAndClears(t *testing.T) {
	require := require.New(t)

	b := NewBuilder(8, 1)
	m := b.Seal()

	tagID, err := m.NewTag()
	require.NoError(err)
	tag, ok := m.store.Get(tagID)
	require.True(ok)

	bound, _ := m.resolveTag(tagID, tag, AgentID(1))
	require.True(bound)

	bound, target := m.resolveTag(tagID, tag, AgentID(2))
	require.False(bound)
	require.EqualValues(1, target)

	_, ok = m.store.Get(tagID)
	require.False(ok)
}

func TestResolveTagExactlyOneWinnerUnderConcurrency(t *testing.T) {
	require := require.New(t)

	b := NewBuilder(8, 1)
	m := b.Seal()

	tagID, err := m.NewTag()
	require.NoError(err)
	tag, _ := m.store.Get(tagID)

	const n = 100
	var wg sync.WaitGroup
	var winners int32
	var mu sync.Mutex
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			bound, _ := m.resolveTag(tagID, tag, AgentID(i))
			if bound {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.EqualValues(1, winners)
}

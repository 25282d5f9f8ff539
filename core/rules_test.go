// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuleTableExactAndSymmetricLookup(t *testing.T) {
	require := require.New(t)

	called := false
	fn := RuleFn(func(ctx *RuleContext) { called = true })

	rt := newRuleTable(map[ruleKey]RuleFn{{lhs: 1, rhs: 2}: fn})

	got, swapped, ok := rt.Lookup(1, 2)
	require.True(ok)
	require.False(swapped)
	got(nil)
	require.True(called)

	called = false
	got, swapped, ok = rt.Lookup(2, 1)
	require.True(ok)
	require.True(swapped)
	got(nil)
	require.True(called)

	_, _, ok = rt.Lookup(3, 4)
	require.False(ok)
}

func TestRuleContextSwap(t *testing.T) {
	require := require.New(t)

	ctx := &RuleContext{
		LHSID:    1,
		RHSID:    2,
		LHSPorts: []AgentID{10},
		RHSPorts: []AgentID{20},
	}
	ctx.Swap()
	require.EqualValues(2, ctx.LHSID)
	require.EqualValues(1, ctx.RHSID)
	require.Equal([]AgentID{20}, ctx.LHSPorts)
	require.Equal([]AgentID{10}, ctx.RHSPorts)
}

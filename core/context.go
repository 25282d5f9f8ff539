// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

// RuleContext is passed to a RuleFn when its registered type pair is found
// in an active pair. It carries everything the rule body needs: the
// Machine (to create fresh agents/tags, remove the two consumed agents, and
// enqueue new equations) and the ids/ports of both sides of the pair.
//
// Carried from inet-core/src/lib.rs's Context/Context::reverse.
type RuleContext struct {
	Machine *Machine

	LHSID, RHSID     AgentID
	LHSPorts, RHSPorts []AgentID
}

// Swap exchanges which side is considered "lhs" and which is "rhs". The
// engine calls this when a rule was found via the rule table's symmetric
// fallback (registered as (A, B) but the active pair arrived as (B, A)), so
// the rule body always sees its own declared argument order regardless of
// which side of the pair the engine happened to observe first.
func (c *RuleContext) Swap() {
	c.LHSID, c.RHSID = c.RHSID, c.LHSID
	c.LHSPorts, c.RHSPorts = c.RHSPorts, c.LHSPorts
}

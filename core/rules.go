// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

// RuleFn is the rewrite logic for one ordered pair of agent types. It must
// remove both lhs and rhs (via ctx.Machine.RemoveAgent) before returning;
// the engine never does this for a rule dispatch, only for the name/
// indirection protocol in tag.go.
type RuleFn func(ctx *RuleContext)

type ruleKey struct {
	lhs, rhs TypeID
}

// RuleTable maps ordered type-id pairs to RuleFns. It is built up mutably
// through a Builder and becomes read-only once a Machine is sealed.
type RuleTable struct {
	fns map[ruleKey]RuleFn
}

func newRuleTable(fns map[ruleKey]RuleFn) *RuleTable {
	return &RuleTable{fns: fns}
}

// Lookup finds the rule registered for the unordered pair {lhs, rhs}. It
// tries (lhs, rhs) first; failing that, (rhs, lhs), reporting swapped=true
// so the caller can present the rule with its own declared argument order
// via RuleContext.Swap.
func (t *RuleTable) Lookup(lhs, rhs TypeID) (fn RuleFn, swapped bool, ok bool) {
	if fn, ok := t.fns[ruleKey{lhs, rhs}]; ok {
		return fn, false, true
	}
	if fn, ok := t.fns[ruleKey{rhs, lhs}]; ok {
		return fn, true, true
	}
	return nil, false, false
}

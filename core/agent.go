// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

import "sync/atomic"

// Kind distinguishes the two agent variants spec.md's data model allows.
type Kind uint8

const (
	// KindTag marks a Tag agent: either a still-free name or, once
	// resolved, an indirection pointing at the agent it was bound to.
	KindTag Kind = iota
	// KindCustom marks a user-declared agent carrying a type id and a
	// vector of auxiliary ports (its principal port is never stored).
	KindCustom
)

// Agent is the store's internal representation of a single node. Custom
// fields (TypeID, Ports) are written once at creation and never mutated
// again, so they need no synchronization of their own; Tag fields are
// mutated exactly once, through the CAS protocol in tag.go, and therefore
// are atomics.
type Agent struct {
	Kind Kind

	// Meaningful when Kind == KindCustom. Ports holds auxiliary ports
	// only; arity is len(Ports).
	TypeID TypeID
	Ports  []AgentID

	// Meaningful when Kind == KindTag.
	isInd  atomic.Bool
	target atomic.Uint64
}

// AgentView is a read-only snapshot of an Agent, safe to hand to callers
// outside this package (rule bodies, readout, tests) without exposing the
// underlying atomics.
type AgentView struct {
	Kind   Kind
	TypeID TypeID
	Ports  []AgentID
	IsInd  bool
	Target AgentID
}

// View takes a consistent snapshot of a. For a Tag agent, IsInd and Target
// are loaded together optimistically; since is_ind only ever transitions
// false->true and target is written before that transition is published,
// observing IsInd true guarantees Target is already final.
func (a *Agent) View() *AgentView {
	v := &AgentView{Kind: a.Kind}
	switch a.Kind {
	case KindCustom:
		v.TypeID = a.TypeID
		v.Ports = a.Ports
	case KindTag:
		v.IsInd = a.isInd.Load()
		if v.IsInd {
			v.Target = AgentID(a.target.Load())
		}
	}
	return v
}

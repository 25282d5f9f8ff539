// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

import "github.com/WtzLAS/inet/internal/set"

// Resolve walks from root through any chain of resolved Tag indirections
// (spec.md §4.6) until it reaches either a Custom agent or a still-unbound
// Tag (a free name), and returns that final id and its snapshot.
//
// Because rules are trusted and unchecked (spec.md §1 Non-goals), a
// misbehaving rule set could in principle build a cyclic indirection chain;
// Resolve bounds the walk with a visited-id set and returns a CycleDetected
// error instead of looping forever (SPEC_FULL.md §6 — additive safety, not
// a change to any invariant in spec.md §3).
func (m *Machine) Resolve(root AgentID) (AgentID, *AgentView, error) {
	visited := set.New[AgentID]()
	cur := root
	for {
		if visited.Contains(cur) {
			return 0, nil, &Error{Kind: CycleDetected, AgentID: cur}
		}
		visited.Add(cur)

		v, ok := m.GetAgent(cur)
		if !ok {
			return 0, nil, &Error{Kind: MissingAgent, AgentID: cur}
		}
		if v.Kind == KindTag && v.IsInd {
			cur = v.Target
			continue
		}
		return cur, v, nil
	}
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

// AgentID identifies a single agent within a Machine's store. Ids are
// opaque outside this package and stable for the agent's lifetime; they may
// be reused after the agent they named has been cleared.
type AgentID uint64

// TypeID identifies an agent type registered with a Builder. Type ids form
// a dense range [0, typeCount) once a Builder has been sealed.
type TypeID int

// Pair is an unordered active pair: two agent ids whose principal ports are
// connected and therefore ready to be reduced.
type Pair struct {
	Left, Right AgentID
}

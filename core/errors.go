// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

import "fmt"

// Kind enumerates the error taxonomy of spec.md §7, plus the additive
// CycleDetected readout error described in SPEC_FULL.md §6 (not part of
// eval's own error surface; only ever returned by Machine.Resolve).
type Kind int

const (
	// InvalidTypeId: new_agent was called with a type id outside
	// [0, typeCount).
	InvalidTypeId Kind = iota
	// AllocationFailed: the agent store's slab is full.
	AllocationFailed
	// MissingAgent: an active pair referenced an id that has already
	// been cleared (a rule violated the "don't touch a removed agent"
	// obligation).
	MissingAgent
	// NoRule: an active pair of two Custom agents had no registered
	// rule, under either argument order.
	NoRule
	// CycleDetected: Machine.Resolve's indirection walk revisited an id,
	// meaning the graph the rules built is not a well-formed net.
	CycleDetected
)

func (k Kind) String() string {
	switch k {
	case InvalidTypeId:
		return "invalid_type_id"
	case AllocationFailed:
		return "allocation_failed"
	case MissingAgent:
		return "missing_agent"
	case NoRule:
		return "no_rule"
	case CycleDetected:
		return "cycle_detected"
	default:
		return "unknown"
	}
}

// Error is the single error type returned across this package's operations.
type Error struct {
	Kind Kind

	// TypeID / Cap are set for InvalidTypeId: TypeID is the offending id,
	// Cap is the highest currently-valid type id.
	TypeID TypeID
	Cap    TypeID

	// AgentID is set for MissingAgent and CycleDetected.
	AgentID AgentID

	// LHSType / RHSType are set for NoRule.
	LHSType, RHSType TypeID
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidTypeId:
		return fmt.Sprintf("invalid type id %d (cap %d)", e.TypeID, e.Cap)
	case AllocationFailed:
		return "agent store allocation failed: slab is full"
	case MissingAgent:
		return fmt.Sprintf("missing agent %d", e.AgentID)
	case NoRule:
		return fmt.Sprintf("no rule for (%d, %d)", e.LHSType, e.RHSType)
	case CycleDetected:
		return fmt.Sprintf("cycle detected while resolving agent %d", e.AgentID)
	default:
		return "inet: unknown error"
	}
}

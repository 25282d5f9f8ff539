// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

// resolveTag implements the name/indirection protocol of spec.md §4.5 and
// §5 against a single Tag agent observed at tagID as one side of an active
// pair whose other side is other.
//
// Go's sync/atomic (and the generic atomic.Bool/atomic.Uint64 wrappers used
// by Agent) only provides sequentially-consistent operations; there is no
// weaker Acquire/Release/AcqRel variant to select between, so every ordering
// spec.md §5 asks for is satisfied unconditionally by the stronger guarantee
// Go gives for free. See DESIGN.md's Open Questions for the full reasoning.
//
// Exactly one of two things happens:
//   - tag was already resolved: the indirection is followed, the now-
//     redundant Tag agent is cleared, and (false, target) is returned so the
//     caller can enqueue the continuation pair.
//   - tag was still a free name: this goroutine wins the race to bind it,
//     the Tag slot survives as the new indirection, and (true, 0) is
//     returned; nothing further needs to be enqueued.
func (m *Machine) resolveTag(tagID AgentID, tag *Agent, other AgentID) (bound bool, target AgentID) {
	for {
		if tag.isInd.Load() {
			t := AgentID(tag.target.Load())
			m.store.Clear(tagID)
			return false, t
		}
		if tag.isInd.CompareAndSwap(false, true) {
			tag.target.Store(uint64(other))
			return true, 0
		}
		// Lost the race to another goroutine resolving the same tag
		// concurrently; retry and observe whichever state it left.
	}
}

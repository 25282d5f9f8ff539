// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

import (
	"sync"
	"sync/atomic"

	"github.com/WtzLAS/inet/internal/bitset"
)

const defaultShardBits = 4 // 16 shards

// shard is one slab partition: a fixed array of atomic agent pointers plus a
// free list of currently-unused local indices. Get never touches mu;
// CreateWith takes it to pop a free index and Clear takes it to return one,
// which is the "allocation contention" spec.md §4.1 describes sharding as
// existing to reduce.
type shard struct {
	mu    sync.Mutex
	slots []atomic.Pointer[Agent]
	free  *bitset.BitSet
}

// Store is a sharded, fixed-capacity slab of agent slots, addressed by
// AgentID. It implements spec.md §4.1's Agent Store.
type Store struct {
	shards    []*shard
	shardBits uint
	cap       int64
	count     atomic.Int64
	next      atomic.Uint64
}

// NewStore returns a Store able to hold up to capacity live agents at once,
// spread across numShards shards. capacity must be positive: the slab is
// fully preallocated so that Get and Clear can be lock-free atomic-pointer
// operations instead of racing a growing slice.
func NewStore(capacity, numShards int) *Store {
	if capacity <= 0 {
		capacity = 1
	}
	if numShards <= 0 {
		numShards = 1 << defaultShardBits
	}
	shardBits := bitLen(numShards - 1)
	numShards = 1 << shardBits

	perShard := (capacity + numShards - 1) / numShards
	if perShard == 0 {
		perShard = 1
	}

	s := &Store{
		shards:    make([]*shard, numShards),
		shardBits: uint(shardBits),
		cap:       int64(capacity),
	}
	for i := range s.shards {
		s.shards[i] = &shard{
			slots: make([]atomic.Pointer[Agent], perShard),
			free:  bitset.NewFull(perShard),
		}
	}
	return s
}

func bitLen(n int) int {
	bits := 0
	for (1 << bits) <= n {
		bits++
	}
	return bits
}

// CreateWith allocates a fresh slot, default-initialized as a Tag agent and
// then handed to init for further setup (e.g. turning it into a Custom
// agent), and returns its id. It fails with AllocationFailed once the store
// holds capacity live agents, or when no shard has a free slot left.
func (s *Store) CreateWith(init func(*Agent)) (AgentID, error) {
	if s.count.Load() >= s.cap {
		return 0, &Error{Kind: AllocationFailed}
	}

	start := int(s.next.Add(1) - 1)
	n := len(s.shards)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		sh := s.shards[idx]
		sh.mu.Lock()
		local, ok := sh.free.PopFirst()
		sh.mu.Unlock()
		if !ok {
			continue
		}

		a := &Agent{Kind: KindTag}
		init(a)
		sh.slots[local].Store(a)
		s.count.Add(1)
		return AgentID(local)<<s.shardBits | AgentID(idx), nil
	}
	return 0, &Error{Kind: AllocationFailed}
}

func (s *Store) decode(id AgentID) (*shard, int) {
	shardIdx := int(id & (AgentID(1)<<s.shardBits - 1))
	local := int(id >> s.shardBits)
	return s.shards[shardIdx], local
}

// Get returns the agent stored at id, or (nil, false) if id has never been
// allocated or has since been cleared. It never blocks.
func (s *Store) Get(id AgentID) (*Agent, bool) {
	sh, local := s.decode(id)
	if local >= len(sh.slots) {
		return nil, false
	}
	a := sh.slots[local].Load()
	return a, a != nil
}

// Clear removes the agent at id, if present, and frees its slot for reuse.
// It is idempotent: clearing an already-cleared or never-allocated id is a
// no-op.
func (s *Store) Clear(id AgentID) {
	sh, local := s.decode(id)
	if local >= len(sh.slots) {
		return
	}
	if old := sh.slots[local].Swap(nil); old != nil {
		sh.mu.Lock()
		sh.free.Set(local)
		sh.mu.Unlock()
		s.count.Add(-1)
	}
}

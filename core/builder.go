// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

import mapset "github.com/deckarep/golang-set/v2"

// Builder is the single-threaded construction phase of spec.md §4.4: it
// registers agent types and rules, builds an initial graph, and produces an
// immutable Machine via Seal. A Builder must not be used from more than one
// goroutine and must not be touched again after Seal.
type Builder struct {
	store *Store
	queue *Queue
	rules map[ruleKey]RuleFn
	types mapset.Set[TypeID]
	next  TypeID
}

// NewBuilder returns a Builder whose eventual Machine can hold up to
// storeCapacity live agents across numShards store shards.
func NewBuilder(storeCapacity, numShards int) *Builder {
	return &Builder{
		store: NewStore(storeCapacity, numShards),
		queue: NewQueue(),
		rules: make(map[ruleKey]RuleFn),
		types: mapset.NewThreadUnsafeSet[TypeID](),
	}
}

// NewType registers a fresh agent type and returns its dense id.
func (b *Builder) NewType() TypeID {
	id := b.next
	b.next++
	b.types.Add(id)
	return id
}

// HasType reports whether id was returned by a prior NewType call.
func (b *Builder) HasType(id TypeID) bool {
	return b.types.Contains(id)
}

// NewRule registers fn as the rewrite for the ordered type pair
// (lhs, rhs); the machine also finds it for an active pair arriving as
// (rhs, lhs). A second registration for the same ordered pair replaces
// the first; a registration for (rhs, lhs) is kept as a separate entry.
func (b *Builder) NewRule(lhs, rhs TypeID, fn RuleFn) {
	b.rules[ruleKey{lhs, rhs}] = fn
}

// NewTag creates a fresh, unbound Tag agent (a free name).
func (b *Builder) NewTag() (AgentID, error) {
	return b.store.CreateWith(func(a *Agent) { a.Kind = KindTag })
}

// NewAgent creates a Custom agent of the given type with the given
// auxiliary ports, connects its principal port to principal, and enqueues
// the resulting pair. It fails with InvalidTypeId if typeID was never
// returned by NewType.
func (b *Builder) NewAgent(typeID TypeID, principal AgentID, aux []AgentID) (AgentID, error) {
	if typeID < 0 || typeID >= b.next {
		return 0, &Error{Kind: InvalidTypeId, TypeID: typeID, Cap: b.next - 1}
	}
	id, err := b.store.CreateWith(func(a *Agent) {
		a.Kind = KindCustom
		a.TypeID = typeID
		a.Ports = append([]AgentID(nil), aux...)
	})
	if err != nil {
		return 0, err
	}
	b.queue.Push(Pair{Left: id, Right: principal})
	return id, nil
}

// NewEq enqueues an equation between two already-created agents.
func (b *Builder) NewEq(a, c AgentID) {
	b.queue.Push(Pair{Left: a, Right: c})
}

// MachineOption configures a Machine at Seal time.
type MachineOption func(*Machine)

// WithMetrics attaches a Metrics instance (see NewMetrics) so Eval mirrors
// its counters into the Prometheus registry it was created against.
func WithMetrics(metrics *Metrics) MachineOption {
	return func(m *Machine) { m.metrics = metrics }
}

// WithLogger sets the Machine's logger.
func WithLogger(l Logger) MachineOption {
	return func(m *Machine) { m.log = l }
}

// Seal transfers the builder's types, rules, store and initial queue into
// an immutable Machine. The Builder must not be used again afterwards.
func (b *Builder) Seal(opts ...MachineOption) *Machine {
	m := &Machine{
		store:     b.store,
		queue:     b.queue,
		rules:     newRuleTable(b.rules),
		typeCount: b.next,
		log:       discardLogger{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

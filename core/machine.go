// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Machine is the immutable, concurrency-safe evaluation engine produced by
// Builder.Seal. All of its operations except Eval may also be called during
// a rule body's execution (spec.md §4.5/§4.6).
type Machine struct {
	store     *Store
	queue     *Queue
	rules     *RuleTable
	typeCount TypeID

	interactions atomic.Uint64
	nameOps      atomic.Uint64

	metrics *Metrics
	log     Logger
}

// NewTag creates a fresh, unbound Tag agent.
func (m *Machine) NewTag() (AgentID, error) {
	id, err := m.store.CreateWith(func(a *Agent) { a.Kind = KindTag })
	if err != nil {
		m.log.Warn("tag allocation failed", "err", err)
	}
	return id, err
}

// NewAgent creates a Custom agent, connects its principal port to
// principal, and enqueues the resulting pair.
func (m *Machine) NewAgent(typeID TypeID, principal AgentID, aux []AgentID) (AgentID, error) {
	if typeID < 0 || typeID >= m.typeCount {
		m.log.Error("invalid type id", "type_id", typeID, "cap", m.typeCount-1)
		return 0, &Error{Kind: InvalidTypeId, TypeID: typeID, Cap: m.typeCount - 1}
	}
	id, err := m.store.CreateWith(func(a *Agent) {
		a.Kind = KindCustom
		a.TypeID = typeID
		a.Ports = append([]AgentID(nil), aux...)
	})
	if err != nil {
		m.log.Warn("agent allocation failed", "type_id", typeID, "err", err)
		return 0, err
	}
	m.log.Debug("created agent", "agent_id", id, "type_id", typeID)
	m.queue.Push(Pair{Left: id, Right: principal})
	return id, nil
}

// NewEq enqueues an equation between two already-created agents.
func (m *Machine) NewEq(a, b AgentID) {
	m.queue.Push(Pair{Left: a, Right: b})
}

// GetAgent returns a read-only snapshot of the agent at id.
func (m *Machine) GetAgent(id AgentID) (*AgentView, bool) {
	a, ok := m.store.Get(id)
	if !ok {
		return nil, false
	}
	return a.View(), true
}

// RemoveAgent clears the agent at id. Rule bodies must call this for both
// sides of the pair they were dispatched for.
func (m *Machine) RemoveAgent(id AgentID) {
	m.store.Clear(id)
}

// Eval drains the active-pair queue with a fixed pool of workers until it
// reaches quiescence, or until a fatal error (MissingAgent, NoRule) is
// observed, whichever comes first. It returns the total number of rule
// interactions and name/indirection resolutions applied. An allocation
// failure inside a rule body is returned to that rule body by NewTag or
// NewAgent; Eval itself does not report it.
//
// Workers are built on golang.org/x/sync/errgroup: the first worker to hit
// a fatal error cancels ctx, and peers finish the pair they are currently
// processing before observing cancellation and returning, matching spec.md
// §7's teardown contract.
func (m *Machine) Eval(ctx context.Context, workers int) (interactions, nameOps uint64, err error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
		if workers < 1 {
			workers = 1
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error { return m.work(gctx) })
	}
	err = g.Wait()
	return m.interactions.Load(), m.nameOps.Load(), err
}

// work is one reducer worker's loop: pop a pair, classify it, act, repeat
// until the queue is quiescent or ctx is cancelled. Per spec.md §5, workers
// have no suspension point beyond spinning on the queue's pop.
func (m *Machine) work(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		pair, ok := m.queue.Pop()
		if !ok {
			if m.queue.Outstanding() == 0 {
				return nil
			}
			runtime.Gosched()
			continue
		}

		if err := m.step(pair); err != nil {
			return err
		}
		m.queue.Done()
		m.metrics.setActivePairs(m.queue.Outstanding())
	}
}

// step classifies and reduces a single active pair, per the priority order
// of spec.md §4.5: (a) right side is a Tag, (b) left side is a Tag,
// (c) both Custom.
func (m *Machine) step(pair Pair) error {
	l, r := pair.Left, pair.Right

	lAgent, lok := m.store.Get(l)
	rAgent, rok := m.store.Get(r)
	if !lok || !rok {
		missing := l
		if lok {
			missing = r
		}
		m.log.Error("active pair references missing agent", "agent_id", missing)
		return &Error{Kind: MissingAgent, AgentID: missing}
	}

	switch {
	case rAgent.Kind == KindTag:
		if bound, target := m.resolveTag(r, rAgent, l); !bound {
			m.queue.Push(Pair{Left: l, Right: target})
		}
		m.nameOps.Add(1)
		m.metrics.incNameOp()
		m.log.Debug("resolved name", "tag_id", r, "other_id", l)
		return nil

	case lAgent.Kind == KindTag:
		if bound, target := m.resolveTag(l, lAgent, r); !bound {
			m.queue.Push(Pair{Left: target, Right: r})
		}
		m.nameOps.Add(1)
		m.metrics.incNameOp()
		m.log.Debug("resolved name", "tag_id", l, "other_id", r)
		return nil

	default:
		fn, swapped, ok := m.rules.Lookup(lAgent.TypeID, rAgent.TypeID)
		if !ok {
			m.log.Error("no rule registered", "lhs_type", lAgent.TypeID, "rhs_type", rAgent.TypeID)
			return &Error{Kind: NoRule, LHSType: lAgent.TypeID, RHSType: rAgent.TypeID}
		}
		rctx := &RuleContext{
			Machine:  m,
			LHSID:    l,
			RHSID:    r,
			LHSPorts: lAgent.Ports,
			RHSPorts: rAgent.Ports,
		}
		if swapped {
			rctx.Swap()
		}
		fn(rctx)
		m.interactions.Add(1)
		m.metrics.incInteraction()
		m.log.Debug("applied rule", "lhs_id", l, "rhs_id", r, "lhs_type", lAgent.TypeID, "rhs_type", rAgent.TypeID)
		return nil
	}
}

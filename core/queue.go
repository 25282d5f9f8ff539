// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

import "sync/atomic"

// pairNode is one link of the queue's singly-linked list.
type pairNode struct {
	next  atomic.Pointer[pairNode]
	value Pair
}

// Queue is an unbounded, lock-free, multi-producer multi-consumer FIFO of
// active pairs, implementing the classic Michael-Scott queue algorithm. It
// also tracks outstanding work so the reducer's worker pool can detect
// quiescence without a separate barrier: Push increments outstanding, and
// the caller marks a popped pair Done once it and any pairs it produced in
// turn have themselves been pushed.
//
// No pack dependency in the retrieved corpus provides a lock-free MPMC
// queue (the Rust original leans on crossbeam's SegQueue, which has no Go
// analogue among the examples); this is a deliberate stdlib-only piece. See
// DESIGN.md.
type Queue struct {
	head        atomic.Pointer[pairNode]
	tail        atomic.Pointer[pairNode]
	outstanding atomic.Int64
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	sentinel := &pairNode{}
	q := &Queue{}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
	return q
}

// Push enqueues p and increments the outstanding-work counter.
func (q *Queue) Push(p Pair) {
	node := &pairNode{value: p}
	for {
		tail := q.tail.Load()
		next := tail.next.Load()
		if tail != q.tail.Load() {
			continue
		}
		if next == nil {
			if tail.next.CompareAndSwap(nil, node) {
				q.tail.CompareAndSwap(tail, node)
				q.outstanding.Add(1)
				return
			}
		} else {
			q.tail.CompareAndSwap(tail, next)
		}
	}
}

// Pop dequeues and returns a pair, or (Pair{}, false) if the queue was
// empty. It does not by itself decrement outstanding; call Done once the
// dequeued pair has been fully processed.
func (q *Queue) Pop() (Pair, bool) {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		next := head.next.Load()
		if head != q.head.Load() {
			continue
		}
		if head == tail {
			if next == nil {
				return Pair{}, false
			}
			q.tail.CompareAndSwap(tail, next)
			continue
		}
		value := next.value
		if q.head.CompareAndSwap(head, next) {
			return value, true
		}
	}
}

// Done marks one previously-popped pair as fully processed.
func (q *Queue) Done() {
	q.outstanding.Add(-1)
}

// Outstanding returns the number of pairs pushed but not yet marked Done.
// Zero means the net has reached quiescence: every pair ever enqueued has
// been processed and nothing still running could enqueue another.
func (q *Queue) Outstanding() int64 {
	return q.outstanding.Load()
}

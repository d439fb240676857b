// SPDX-License-Identifier: MIT
//
// Package pqueue provides a keyed binary heap with arbitrary-position
// re-prioritization (decrease-key / increase-key), as needed by Prim's
// algorithm.
//
// Each key appears at most once. The queue keeps a key → slot index so that
// Update and Remove locate their entry in O(1) and restore the heap property
// with heap.Fix / heap.Remove in O(log n).
//
// Ties between equal priorities are broken by insertion order (FIFO), which
// keeps pop order deterministic for a fixed sequence of operations.
//
// Complexity:
//   - Push, Pop, Update, Remove: O(log n).
//   - Peek, Contains, Priority, Len: O(1).
//
// Concurrency:
//   - Not goroutine-safe.
package pqueue

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// Queue is a priority queue of unique keys.
type Queue[K comparable, P any] struct {
	h     entryHeap[K, P]
	index map[K]*entry[K, P]
	seq   uint64
}

// New returns an empty queue that pops the key with the "smallest" priority
// according to less.
func New[K comparable, P any](less func(a, b P) bool) *Queue[K, P] {
	if less == nil {
		panic("pqueue: New(nil less)")
	}

	return &Queue[K, P]{
		h:     entryHeap[K, P]{less: less},
		index: make(map[K]*entry[K, P]),
	}
}

// NewMin returns a queue popping the lowest priority first.
func NewMin[K comparable, P constraints.Ordered]() *Queue[K, P] {
	return New[K, P](func(a, b P) bool { return a < b })
}

// NewMax returns a queue popping the highest priority first.
func NewMax[K comparable, P constraints.Ordered]() *Queue[K, P] {
	return New[K, P](func(a, b P) bool { return a > b })
}

// Len returns the number of queued keys.
func (q *Queue[K, P]) Len() int { return len(q.h.items) }

// Contains reports whether key is queued.
func (q *Queue[K, P]) Contains(key K) bool {
	_, ok := q.index[key]

	return ok
}

// Priority returns the current priority of key.
func (q *Queue[K, P]) Priority(key K) (P, bool) {
	e, ok := q.index[key]
	if !ok {
		var zero P
		return zero, false
	}

	return e.priority, true
}

// Push enqueues key. Returns false if key is already queued; use Update then.
func (q *Queue[K, P]) Push(key K, priority P) bool {
	if _, ok := q.index[key]; ok {
		return false
	}
	q.seq++
	e := &entry[K, P]{key: key, priority: priority, seq: q.seq}
	q.index[key] = e
	heap.Push(&q.h, e)

	return true
}

// Peek returns the head without removing it.
func (q *Queue[K, P]) Peek() (K, P, bool) {
	if len(q.h.items) == 0 {
		var (
			k K
			p P
		)
		return k, p, false
	}
	e := q.h.items[0]

	return e.key, e.priority, true
}

// Pop removes and returns the head.
func (q *Queue[K, P]) Pop() (K, P, bool) {
	if len(q.h.items) == 0 {
		var (
			k K
			p P
		)
		return k, p, false
	}
	e := heap.Pop(&q.h).(*entry[K, P])
	delete(q.index, e.key)

	return e.key, e.priority, true
}

// Update changes the priority of a queued key and restores heap order,
// whether the new priority moves it up or down. Returns false if key is absent.
func (q *Queue[K, P]) Update(key K, priority P) bool {
	e, ok := q.index[key]
	if !ok {
		return false
	}
	e.priority = priority
	heap.Fix(&q.h, e.slot)

	return true
}

// Remove deletes key from any position. Returns its priority.
func (q *Queue[K, P]) Remove(key K) (P, bool) {
	e, ok := q.index[key]
	if !ok {
		var zero P
		return zero, false
	}
	heap.Remove(&q.h, e.slot)
	delete(q.index, key)

	return e.priority, true
}

// entry is one heap slot; slot is kept current by Swap/Push/Pop.
type entry[K comparable, P any] struct {
	key      K
	priority P
	seq      uint64
	slot     int
}

// entryHeap implements heap.Interface.
type entryHeap[K comparable, P any] struct {
	items []*entry[K, P]
	less  func(a, b P) bool
}

// Len returns the number of entries.
func (h entryHeap[K, P]) Len() int { return len(h.items) }

// Less orders by priority, then by insertion sequence.
func (h entryHeap[K, P]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.less(a.priority, b.priority) {
		return true
	}
	if h.less(b.priority, a.priority) {
		return false
	}

	return a.seq < b.seq
}

// Swap swaps two entries and their slot indices.
func (h entryHeap[K, P]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].slot = i
	h.items[j].slot = j
}

// Push appends x; called by heap.Push.
func (h *entryHeap[K, P]) Push(x any) {
	e := x.(*entry[K, P])
	e.slot = len(h.items)
	h.items = append(h.items, e)
}

// Pop removes the last entry; called by heap.Pop and heap.Remove.
func (h *entryHeap[K, P]) Pop() any {
	old := h.items
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.slot = -1
	h.items = old[:n-1]

	return e
}

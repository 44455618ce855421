// SPDX-License-Identifier: MIT
//
// File: pqueue.go
// Role: container/heap backed min-priority queue with insertion-order tie-break.
// Policy:
//   - Pop on an empty queue is a precondition violation and panics with ErrEmpty.
//   - Equal priorities leave in insertion order (monotonic seq).

// Package pqueue implements a generic minimum-priority queue with a stable
// tie-break: items of equal priority leave in the order they were added.
//
// The queue is a binary min-heap driven by container/heap. Every entry carries
// an insertion sequence number that breaks priority ties, so the pop order is
// fully determined by the sequence of Add calls.
//
// Complexity:
//
//   - Add: O(log N)
//   - Pop: O(log N)
//   - Peek, Len, IsNotEmpty: O(1)
//
// The zero value is an empty, ready-to-use queue.
package pqueue

import (
	"container/heap"
	"errors"
)

// ErrEmpty is the panic value of Pop on an empty queue.
// Callers check Len or IsNotEmpty first.
var ErrEmpty = errors.New("pqueue: pop from empty queue")

// Queue is a min-priority queue of T.
type Queue[T any] struct {
	h   entryHeap[T]
	seq uint64
}

// New returns an empty queue with room for capacity entries.
func New[T any](capacity int) *Queue[T] {
	return &Queue[T]{h: make(entryHeap[T], 0, capacity)}
}

// Add inserts item with the given priority. Priorities may repeat.
func (q *Queue[T]) Add(item T, priority int64) {
	heap.Push(&q.h, entry[T]{item: item, priority: priority, seq: q.seq})
	q.seq++
}

// Pop removes and returns the minimum-priority item; among equal priorities
// the earliest added wins. Pop panics with ErrEmpty when the queue is empty.
func (q *Queue[T]) Pop() T {
	if len(q.h) == 0 {
		panic(ErrEmpty)
	}

	return heap.Pop(&q.h).(entry[T]).item
}

// Peek returns the item Pop would return, with its priority, without removing it.
// ok is false on an empty queue.
func (q *Queue[T]) Peek() (item T, priority int64, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}

	return q.h[0].item, q.h[0].priority, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.h) }

// IsNotEmpty reports whether at least one item is queued.
func (q *Queue[T]) IsNotEmpty() bool { return len(q.h) > 0 }

// Reset drops every item and restarts the insertion sequence.
func (q *Queue[T]) Reset() {
	clear(q.h)
	q.h = q.h[:0]
	q.seq = 0
}

// entry is a heap slot: the item, its priority and its insertion sequence.
type entry[T any] struct {
	item     T
	priority int64
	seq      uint64
}

// entryHeap is a min-heap ordered by (priority, seq) ascending.
type entryHeap[T any] []entry[T]

// Len returns the number of items in the heap.
func (h entryHeap[T]) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence.
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry[T].
func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	var zero entry[T]
	old[n-1] = zero // release the reference held by the backing array
	*h = old[:n-1]

	return item
}

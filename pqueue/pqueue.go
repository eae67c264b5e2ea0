// SPDX-License-Identifier: MIT

// Package pqueue provides a generic binary min-heap of (item, priority)
// pairs shared by Dijkstra, A*, Prim and the centrality passes.
//
// Equal priorities leave the dequeue order unspecified. Callers needing a
// deterministic tie-break encode a secondary key into the priority.
//
// Complexity:
//
//   - Enqueue, Dequeue: O(log n).
//   - Peek, Len, IsEmpty: O(1).
//   - UpdatePriority, Contains: O(n) scan, then O(log n) sift.
package pqueue

import "container/heap"

type entry[T comparable] struct {
	item     T
	priority float64
}

// entries implements heap.Interface over a min-heap of entry values.
type entries[T comparable] []entry[T]

func (h entries[T]) Len() int           { return len(h) }
func (h entries[T]) Less(i, j int) bool { return h[i].priority < h[j].priority }
func (h entries[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *entries[T]) Push(x any)        { *h = append(*h, x.(entry[T])) }
func (h *entries[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// PriorityQueue is a min-heap keyed by float64 priority. It is not safe for
// concurrent use; every algorithm owns its own queue.
type PriorityQueue[T comparable] struct {
	h entries[T]
}

// New returns an empty queue.
func New[T comparable]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

// Enqueue appends item with the given priority and sifts it up.
// The same item may be enqueued more than once.
func (q *PriorityQueue[T]) Enqueue(item T, priority float64) {
	heap.Push(&q.h, entry[T]{item: item, priority: priority})
}

// Dequeue removes and returns the minimum-priority item. ok is false when
// the queue is empty.
func (q *PriorityQueue[T]) Dequeue() (item T, priority float64, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.item, e.priority, true
}

// Peek returns the minimum-priority item without removing it.
func (q *PriorityQueue[T]) Peek() (item T, priority float64, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}

	return q.h[0].item, q.h[0].priority, true
}

// UpdatePriority changes the priority of the first stored occurrence of item
// and restores heap order in whichever direction the change requires.
// It reports false when item is not queued.
func (q *PriorityQueue[T]) UpdatePriority(item T, priority float64) bool {
	for i := range q.h {
		if q.h[i].item == item {
			q.h[i].priority = priority
			heap.Fix(&q.h, i)

			return true
		}
	}

	return false
}

// Contains reports whether item is queued.
func (q *PriorityQueue[T]) Contains(item T) bool {
	for i := range q.h {
		if q.h[i].item == item {
			return true
		}
	}

	return false
}

// Len returns the number of queued entries.
func (q *PriorityQueue[T]) Len() int { return len(q.h) }

// IsEmpty reports whether the queue holds no entries.
func (q *PriorityQueue[T]) IsEmpty() bool { return len(q.h) == 0 }

// Clear drops every entry, keeping the allocated capacity.
func (q *PriorityQueue[T]) Clear() { q.h = q.h[:0] }

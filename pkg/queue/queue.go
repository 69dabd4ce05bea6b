// Package queue provides an ordered insertion queue: a sequence container
// that keeps its elements sorted by a caller-supplied comparator.
//
// Insertion scans from the front and places the new element before the
// first element that compares strictly greater, so elements that compare
// equal keep the order in which they were offered. Offer is O(n); Peek,
// Poll, Len and IsEmpty are O(1).
//
// Empty-queue queries never panic. Peek and Poll report absence through
// their boolean result instead.
//
// A Queue is not safe for concurrent use.
package queue

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// Queue is an ordered insertion queue over comparable elements.
//
// The zero value is not usable - use New.
type Queue[T comparable] struct {
	list *doublylinkedlist.List
	cmp  func(a, b T) int
}

// New creates an empty queue ordered by cmp. cmp follows the convention of
// [cmp.Compare]: negative when a sorts before b, zero when equal, positive
// otherwise. New panics if cmp is nil.
func New[T comparable](cmp func(a, b T) int) *Queue[T] {
	if cmp == nil {
		panic("queue: nil comparator")
	}
	return &Queue[T]{list: doublylinkedlist.New(), cmp: cmp}
}

// Offer inserts item before the first element that compares strictly
// greater than it, or at the back if there is none.
func (q *Queue[T]) Offer(item T) {
	i := 0
	it := q.list.Iterator()
	for it.Next() {
		if q.cmp(item, it.Value().(T)) < 0 {
			break
		}
		i++
	}
	q.list.Insert(i, item)
}

// Peek returns the front element without removing it.
// The boolean is false if the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	v, ok := q.list.Get(0)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Poll removes and returns the front element.
// The boolean is false if the queue is empty.
func (q *Queue[T]) Poll() (T, bool) {
	v, ok := q.Peek()
	if ok {
		q.list.Remove(0)
	}
	return v, ok
}

// Remove deletes the first element equal to item and reports whether
// anything was removed.
func (q *Queue[T]) Remove(item T) bool {
	i := q.list.IndexOf(item)
	if i < 0 {
		return false
	}
	q.list.Remove(i)
	return true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.list.Size() }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.list.Empty() }

// Values returns the elements front to back. The queue is not modified.
func (q *Queue[T]) Values() []T {
	out := make([]T, 0, q.list.Size())
	it := q.list.Iterator()
	for it.Next() {
		out = append(out, it.Value().(T))
	}
	return out
}

// Drain polls every element and returns them front to back, leaving the
// queue empty.
func (q *Queue[T]) Drain() []T {
	out := q.Values()
	q.list.Clear()
	return out
}

// String renders one element per line using the %v verb.
func (q *Queue[T]) String() string {
	var b strings.Builder
	for _, v := range q.Values() {
		fmt.Fprintf(&b, "%v\n", v)
	}
	return b.String()
}

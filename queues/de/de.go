// Package de provides a double-ended queue.
//
// Items can be pushed, popped and peeked at both the left and the right end
// in O(1) amortized time. The left end is the front of the underlying ring
// buffer, the right end its back.
//
// Queue is NOT safe for concurrent use.
package de

import (
	"fmt"
	"iter"

	"github.com/randomizedcoder/go-fp-queues/internal/render"
	"github.com/randomizedcoder/go-fp-queues/internal/ringbuf"
	"github.com/randomizedcoder/go-fp-queues/maybe"
	"github.com/randomizedcoder/go-fp-queues/queues"
)

// Queue is a double-ended queue.
//
// The zero value is an empty queue ready for use. A Queue must not be
// copied by value after first use; use Copy.
type Queue[T any] struct {
	ca ringbuf.Buffer[T]
}

// New returns a queue holding the elements of at most one sequence, left to
// right. Passing more than one sequence returns an error wrapping
// queues.ErrTooManySequences.
func New[T any](seqs ...iter.Seq[T]) (*Queue[T], error) {
	if n := len(seqs); n > 1 {
		return nil, fmt.Errorf("de: %w, got %d", queues.ErrTooManySequences, n)
	}
	q := &Queue[T]{}
	if len(seqs) == 1 {
		q.ca = *ringbuf.FromSeq(seqs[0])
	}
	return q, nil
}

// Of returns a queue holding items left to right.
func Of[T any](items ...T) *Queue[T] {
	q := &Queue[T]{}
	q.ca.PushTail(items...)
	return q
}

// PushLeft pushes items onto the left end one at a time, so after
// PushLeft(1, 2) the leftmost item is 2.
func (q *Queue[T]) PushLeft(items ...T) {
	q.ca.PushHead(items...)
}

// PushRight pushes items onto the right end in argument order.
func (q *Queue[T]) PushRight(items ...T) {
	q.ca.PushTail(items...)
}

// PopLeft removes and returns the leftmost item.
func (q *Queue[T]) PopLeft() maybe.MayBe[T] {
	return maybe.FromComma[T](q.ca.PopHead())
}

// PopRight removes and returns the rightmost item.
func (q *Queue[T]) PopRight() maybe.MayBe[T] {
	return maybe.FromComma[T](q.ca.PopTail())
}

// PeekLeft returns the leftmost item without removing it.
func (q *Queue[T]) PeekLeft() maybe.MayBe[T] {
	return maybe.FromComma[T](q.ca.PeekHead())
}

// PeekRight returns the rightmost item without removing it.
func (q *Queue[T]) PeekRight() maybe.MayBe[T] {
	return maybe.FromComma[T](q.ca.PeekTail())
}

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int {
	return q.ca.Len()
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.ca.IsEmpty()
}

// All iterates over the items from left to right.
func (q *Queue[T]) All() iter.Seq[T] {
	return q.ca.All()
}

// Backward iterates over the items from right to left.
func (q *Queue[T]) Backward() iter.Seq[T] {
	return q.ca.Backward()
}

// Copy returns a queue with the same items and its own storage.
func (q *Queue[T]) Copy() *Queue[T] {
	return &Queue[T]{ca: *q.ca.Copy()}
}

// FoldLeft reduces the queue from left to right, seeded with the leftmost
// item. It is absent for an empty queue.
func (q *Queue[T]) FoldLeft(f func(acc, item T) T) maybe.MayBe[T] {
	return maybe.FromComma[T](q.ca.ReduceHead(f))
}

// FoldRight reduces the queue from right to left, seeded with the rightmost
// item. f takes the item first and the accumulator second. It is absent for
// an empty queue.
func (q *Queue[T]) FoldRight(f func(item, acc T) T) maybe.MayBe[T] {
	return maybe.FromComma[T](q.ca.ReduceTail(f))
}

// EqualFunc reports whether other is a *Queue[T] with the same items in the
// same order, compared with eq.
func (q *Queue[T]) EqualFunc(other any, eq func(a, b T) bool) bool {
	o, ok := other.(*Queue[T])
	if !ok || o == nil {
		return false
	}
	return q.ca.EqualFunc(&o.ca, eq)
}

// String renders the queue left to right, e.g. ">< 1 | 2 | 3 ><".
func (q *Queue[T]) String() string {
	return render.Markers("><", q.All(), "| ", "><")
}

// GoString renders the queue as the Of call that would rebuild it.
func (q *Queue[T]) GoString() string {
	return render.Call("de.Of", q.All())
}

// FoldLeftFrom reduces q from left to right starting from initial. The
// result is always present.
func FoldLeftFrom[T, A any](q *Queue[T], f func(acc A, item T) A, initial A) maybe.MayBe[A] {
	return maybe.Of(ringbuf.FoldHead(&q.ca, f, initial))
}

// FoldRightFrom reduces q from right to left starting from initial. f takes
// the item first and the accumulator second. The result is always present.
func FoldRightFrom[T, A any](q *Queue[T], f func(item T, acc A) A, initial A) maybe.MayBe[A] {
	return maybe.Of(ringbuf.FoldTail(&q.ca, f, initial))
}

// Map returns a new queue holding f applied to every item of q, left to
// right. q is not modified.
func Map[T, U any](q *Queue[T], f func(T) U) *Queue[U] {
	return &Queue[U]{ca: *ringbuf.Map(&q.ca, f)}
}

// Package fifo provides a first-in, first-out queue.
//
// Items are pushed at the back and popped from the front, so they come out
// in the order they went in. The queue grows as needed and every push and
// pop is O(1) amortized.
//
// Queue is NOT safe for concurrent use.
package fifo

import (
	"fmt"
	"iter"

	"github.com/randomizedcoder/go-fp-queues/internal/render"
	"github.com/randomizedcoder/go-fp-queues/internal/ringbuf"
	"github.com/randomizedcoder/go-fp-queues/maybe"
	"github.com/randomizedcoder/go-fp-queues/queues"
)

// Queue is a first-in, first-out queue.
//
// The zero value is an empty queue ready for use. A Queue must not be
// copied by value after first use; use Copy.
type Queue[T any] struct {
	ca ringbuf.Buffer[T]
}

// New returns a queue holding the elements of at most one sequence, oldest
// first. Passing more than one sequence returns an error wrapping
// queues.ErrTooManySequences.
func New[T any](seqs ...iter.Seq[T]) (*Queue[T], error) {
	if n := len(seqs); n > 1 {
		return nil, fmt.Errorf("fifo: %w, got %d", queues.ErrTooManySequences, n)
	}
	q := &Queue[T]{}
	if len(seqs) == 1 {
		q.ca = *ringbuf.FromSeq(seqs[0])
	}
	return q, nil
}

// Of returns a queue holding items, oldest first.
func Of[T any](items ...T) *Queue[T] {
	q := &Queue[T]{}
	q.ca.PushTail(items...)
	return q
}

// Push adds items to the back of the queue in argument order.
func (q *Queue[T]) Push(items ...T) {
	q.ca.PushTail(items...)
}

// Pop removes and returns the oldest item.
func (q *Queue[T]) Pop() maybe.MayBe[T] {
	return maybe.FromComma[T](q.ca.PopHead())
}

// PeekNewest returns the most recently pushed item without removing it.
func (q *Queue[T]) PeekNewest() maybe.MayBe[T] {
	return maybe.FromComma[T](q.ca.PeekTail())
}

// PeekOldest returns the next item Pop would return, without removing it.
func (q *Queue[T]) PeekOldest() maybe.MayBe[T] {
	return maybe.FromComma[T](q.ca.PeekHead())
}

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int {
	return q.ca.Len()
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.ca.IsEmpty()
}

// All iterates over the items from oldest to newest without consuming them.
func (q *Queue[T]) All() iter.Seq[T] {
	return q.ca.All()
}

// Copy returns a queue with the same items and its own storage.
func (q *Queue[T]) Copy() *Queue[T] {
	return &Queue[T]{ca: *q.ca.Copy()}
}

// Fold reduces the queue from oldest to newest, using the oldest item as
// the initial accumulator. It is absent for an empty queue.
func (q *Queue[T]) Fold(f func(acc, item T) T) maybe.MayBe[T] {
	return maybe.FromComma[T](q.ca.ReduceHead(f))
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

// String renders the queue oldest to newest, e.g. "<< 1 < 2 < 3 <<".
func (q *Queue[T]) String() string {
	return render.Markers("<<", q.All(), "< ", "<<")
}

// GoString renders the queue as the Of call that would rebuild it.
func (q *Queue[T]) GoString() string {
	return render.Call("fifo.Of", q.All())
}

// FoldFrom reduces q from oldest to newest starting from initial. The result
// is always present.
func FoldFrom[T, A any](q *Queue[T], f func(acc A, item T) A, initial A) maybe.MayBe[A] {
	return maybe.Of(ringbuf.FoldHead(&q.ca, f, initial))
}

// Map returns a new queue holding f applied to every item of q, oldest to
// newest. q is not modified.
func Map[T, U any](q *Queue[T], f func(T) U) *Queue[U] {
	return &Queue[U]{ca: *ringbuf.Map(&q.ca, f)}
}

// Package lifo provides a last-in, first-out queue (a stack).
//
// Items are pushed and popped at the same end, so the newest item always
// comes out first. The queue grows as needed and every push and pop is O(1)
// amortized.
//
// Queue is NOT safe for concurrent use.
package lifo

import (
	"fmt"
	"iter"

	"github.com/randomizedcoder/go-fp-queues/internal/render"
	"github.com/randomizedcoder/go-fp-queues/internal/ringbuf"
	"github.com/randomizedcoder/go-fp-queues/maybe"
	"github.com/randomizedcoder/go-fp-queues/queues"
)

// Queue is a last-in, first-out queue.
//
// Items are stored oldest first; the newest item sits at the tail of the
// buffer. The zero value is an empty queue ready for use. A Queue must not
// be copied by value after first use; use Copy.
type Queue[T any] struct {
	ca ringbuf.Buffer[T]
}

// New returns a queue holding the elements of at most one sequence, pushed
// in iteration order, so the last element is on top. Passing more than one
// sequence returns an error wrapping queues.ErrTooManySequences.
func New[T any](seqs ...iter.Seq[T]) (*Queue[T], error) {
	if n := len(seqs); n > 1 {
		return nil, fmt.Errorf("lifo: %w, got %d", queues.ErrTooManySequences, n)
	}
	q := &Queue[T]{}
	if len(seqs) == 1 {
		q.ca = *ringbuf.FromSeq(seqs[0])
	}
	return q, nil
}

// Of returns a queue with items pushed in argument order; the last item is
// on top.
func Of[T any](items ...T) *Queue[T] {
	q := &Queue[T]{}
	q.ca.PushTail(items...)
	return q
}

// Push pushes items in argument order; the last one ends up on top.
func (q *Queue[T]) Push(items ...T) {
	q.ca.PushTail(items...)
}

// Pop removes and returns the newest item.
func (q *Queue[T]) Pop() maybe.MayBe[T] {
	return maybe.FromComma[T](q.ca.PopTail())
}

// Peek returns the newest item without removing it.
func (q *Queue[T]) Peek() maybe.MayBe[T] {
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

// All iterates over the items from newest to oldest, the order Pop would
// return them, without consuming them.
func (q *Queue[T]) All() iter.Seq[T] {
	return q.ca.Backward()
}

// Copy returns a queue with the same items and its own storage.
func (q *Queue[T]) Copy() *Queue[T] {
	return &Queue[T]{ca: *q.ca.Copy()}
}

// Fold reduces the queue from newest to oldest, using the newest item as
// the initial accumulator. It is absent for an empty queue.
func (q *Queue[T]) Fold(f func(acc, item T) T) maybe.MayBe[T] {
	return maybe.FromComma[T](q.ca.ReduceTail(func(item, acc T) T {
		return f(acc, item)
	}))
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

// String renders the queue newest to oldest, e.g. "|| 3 > 2 > 1 ><".
func (q *Queue[T]) String() string {
	return render.Markers("||", q.All(), "> ", "><")
}

// GoString renders the queue as the Of call that would rebuild it, with
// items in push order.
func (q *Queue[T]) GoString() string {
	return render.Call("lifo.Of", q.ca.All())
}

// FoldFrom reduces q from newest to oldest starting from initial. The result
// is always present.
func FoldFrom[T, A any](q *Queue[T], f func(acc A, item T) A, initial A) maybe.MayBe[A] {
	return maybe.Of(ringbuf.FoldTail(&q.ca, func(item T, acc A) A {
		return f(acc, item)
	}, initial))
}

// Map returns a new queue holding f applied to every item of q. Items keep
// their positions, so the mapped queue pops in the same order as q.
func Map[T, U any](q *Queue[T], f func(T) U) *Queue[U] {
	return &Queue[U]{ca: *ringbuf.Map(&q.ca, f)}
}

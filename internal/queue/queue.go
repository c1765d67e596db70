// Package queue defines the push/pop contract the queue kinds share and the
// laws every kind must obey.
//
// This package offers four Kinds over the Queue interface:
//   - FIFO: fifo.Queue, pops oldest first
//   - LIFO: lifo.Queue, pops newest first
//   - DequeFIFO: de.Queue pushed right and popped left
//   - DequeLIFO: de.Queue pushed and popped on the right
//
// The laws (see Laws) are ordinary functions returning an error wrapping
// ErrLawViolated, so they can back both unit tests and the queuecheck
// command. A Checker runs them concurrently.
//
// # Confinement (IMPORTANT)
//
// None of the queue types is safe for concurrent use. Each law builds and
// drops its own queues, and the Checker runs each law in exactly one
// goroutine, so no queue is ever shared.
package queue

import (
	"iter"

	"github.com/randomizedcoder/go-fp-queues/maybe"
	"github.com/randomizedcoder/go-fp-queues/queues"
	"github.com/randomizedcoder/go-fp-queues/queues/de"
	"github.com/randomizedcoder/go-fp-queues/queues/fifo"
	"github.com/randomizedcoder/go-fp-queues/queues/lifo"
)

// Queue is the push/pop contract shared by every queue kind.
//
// Implementations grow without bound: Push never fails, and Pop returns an
// absent MayBe when the queue is empty.
type Queue[T any] interface {
	// Push adds items in argument order.
	Push(items ...T)

	// Pop removes and returns the next item under the kind's policy.
	Pop() maybe.MayBe[T]

	// Len returns the number of items held.
	Len() int

	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
}

// Order is the pop order a Kind promises.
type Order int

const (
	// FirstInFirstOut pops items in push order.
	FirstInFirstOut Order = iota
	// LastInFirstOut pops items in reverse push order.
	LastInFirstOut
)

func (o Order) String() string {
	if o == LastInFirstOut {
		return "LIFO"
	}
	return "FIFO"
}

// Kind bundles a queue constructor with the operations the Queue interface
// cannot express generically.
type Kind[T any] struct {
	Name  string
	Order Order

	// New returns an empty queue.
	New func() Queue[T]
	// Peek returns the item Pop would return, leaving q unchanged.
	Peek func(q Queue[T]) maybe.MayBe[T]
	// Copy returns an independent copy of q.
	Copy func(q Queue[T]) Queue[T]
	// Map returns a new queue holding f of every item of q.
	Map func(q Queue[T], f func(T) T) Queue[T]
	// Fold reduces q in pop order without a seed.
	Fold func(q Queue[T], f func(acc, item T) T) maybe.MayBe[T]
	// FoldFrom reduces q in pop order starting from initial.
	FoldFrom func(q Queue[T], f func(acc, item T) T, initial T) maybe.MayBe[T]
	// All iterates over q in pop order.
	All func(q Queue[T]) iter.Seq[T]
	// Equal reports structural equality of a queue of this kind and b. The
	// two deque kinds compare their underlying de.Queue values.
	Equal func(a, b Queue[T]) bool
}

// FIFO returns the Kind for fifo.Queue.
func FIFO[T comparable]() Kind[T] {
	as := func(q Queue[T]) *fifo.Queue[T] { return q.(*fifo.Queue[T]) }
	return Kind[T]{
		Name:  "fifo",
		Order: FirstInFirstOut,
		New:   func() Queue[T] { return fifo.Of[T]() },
		Peek:  func(q Queue[T]) maybe.MayBe[T] { return as(q).PeekOldest() },
		Copy:  func(q Queue[T]) Queue[T] { return as(q).Copy() },
		Map: func(q Queue[T], f func(T) T) Queue[T] {
			return fifo.Map(as(q), f)
		},
		Fold: func(q Queue[T], f func(acc, item T) T) maybe.MayBe[T] {
			return as(q).Fold(f)
		},
		FoldFrom: func(q Queue[T], f func(acc, item T) T, initial T) maybe.MayBe[T] {
			return fifo.FoldFrom(as(q), f, initial)
		},
		All:   func(q Queue[T]) iter.Seq[T] { return as(q).All() },
		Equal: func(a, b Queue[T]) bool { return queues.Equal[T](as(a), unwrap(b)) },
	}
}

// LIFO returns the Kind for lifo.Queue.
func LIFO[T comparable]() Kind[T] {
	as := func(q Queue[T]) *lifo.Queue[T] { return q.(*lifo.Queue[T]) }
	return Kind[T]{
		Name:  "lifo",
		Order: LastInFirstOut,
		New:   func() Queue[T] { return lifo.Of[T]() },
		Peek:  func(q Queue[T]) maybe.MayBe[T] { return as(q).Peek() },
		Copy:  func(q Queue[T]) Queue[T] { return as(q).Copy() },
		Map: func(q Queue[T], f func(T) T) Queue[T] {
			return lifo.Map(as(q), f)
		},
		Fold: func(q Queue[T], f func(acc, item T) T) maybe.MayBe[T] {
			return as(q).Fold(f)
		},
		FoldFrom: func(q Queue[T], f func(acc, item T) T, initial T) maybe.MayBe[T] {
			return lifo.FoldFrom(as(q), f, initial)
		},
		All:   func(q Queue[T]) iter.Seq[T] { return as(q).All() },
		Equal: func(a, b Queue[T]) bool { return queues.Equal[T](as(a), unwrap(b)) },
	}
}

// DequeFIFO returns the Kind for a de.Queue pushed on the right and popped
// on the left.
func DequeFIFO[T comparable]() Kind[T] {
	as := func(q Queue[T]) *de.Queue[T] { return q.(*dequeFIFO[T]).Queue }
	return Kind[T]{
		Name:  "deque-fifo",
		Order: FirstInFirstOut,
		New:   func() Queue[T] { return &dequeFIFO[T]{de.Of[T]()} },
		Peek:  func(q Queue[T]) maybe.MayBe[T] { return as(q).PeekLeft() },
		Copy:  func(q Queue[T]) Queue[T] { return &dequeFIFO[T]{as(q).Copy()} },
		Map: func(q Queue[T], f func(T) T) Queue[T] {
			return &dequeFIFO[T]{de.Map(as(q), f)}
		},
		Fold: func(q Queue[T], f func(acc, item T) T) maybe.MayBe[T] {
			return as(q).FoldLeft(f)
		},
		FoldFrom: func(q Queue[T], f func(acc, item T) T, initial T) maybe.MayBe[T] {
			return de.FoldLeftFrom(as(q), f, initial)
		},
		All:   func(q Queue[T]) iter.Seq[T] { return as(q).All() },
		Equal: func(a, b Queue[T]) bool { return queues.Equal[T](as(a), unwrap(b)) },
	}
}

// DequeLIFO returns the Kind for a de.Queue pushed and popped on the right.
func DequeLIFO[T comparable]() Kind[T] {
	as := func(q Queue[T]) *de.Queue[T] { return q.(*dequeLIFO[T]).Queue }
	swap := func(f func(acc, item T) T) func(item, acc T) T {
		return func(item, acc T) T { return f(acc, item) }
	}
	return Kind[T]{
		Name:  "deque-lifo",
		Order: LastInFirstOut,
		New:   func() Queue[T] { return &dequeLIFO[T]{de.Of[T]()} },
		Peek:  func(q Queue[T]) maybe.MayBe[T] { return as(q).PeekRight() },
		Copy:  func(q Queue[T]) Queue[T] { return &dequeLIFO[T]{as(q).Copy()} },
		Map: func(q Queue[T], f func(T) T) Queue[T] {
			return &dequeLIFO[T]{de.Map(as(q), f)}
		},
		Fold: func(q Queue[T], f func(acc, item T) T) maybe.MayBe[T] {
			return as(q).FoldRight(swap(f))
		},
		FoldFrom: func(q Queue[T], f func(acc, item T) T, initial T) maybe.MayBe[T] {
			return de.FoldRightFrom(as(q), swap(f), initial)
		},
		All:   func(q Queue[T]) iter.Seq[T] { return as(q).Backward() },
		Equal: func(a, b Queue[T]) bool { return queues.Equal[T](as(a), unwrap(b)) },
	}
}

// Kinds returns every Kind, in a stable order.
func Kinds[T comparable]() []Kind[T] {
	return []Kind[T]{FIFO[T](), LIFO[T](), DequeFIFO[T](), DequeLIFO[T]()}
}

// dequeFIFO adapts a de.Queue to Queue: push right, pop left.
type dequeFIFO[T any] struct {
	*de.Queue[T]
}

func (d *dequeFIFO[T]) Push(items ...T) { d.PushRight(items...) }

func (d *dequeFIFO[T]) Pop() maybe.MayBe[T] { return d.PopLeft() }

// dequeLIFO adapts a de.Queue to Queue: push right, pop right.
type dequeLIFO[T any] struct {
	*de.Queue[T]
}

func (d *dequeLIFO[T]) Push(items ...T) { d.PushRight(items...) }

func (d *dequeLIFO[T]) Pop() maybe.MayBe[T] { return d.PopRight() }

// unwrap returns the de.Queue behind a deque adapter, or q itself.
func unwrap[T any](q Queue[T]) any {
	switch d := q.(type) {
	case *dequeFIFO[T]:
		return d.Queue
	case *dequeLIFO[T]:
		return d.Queue
	}
	return q
}

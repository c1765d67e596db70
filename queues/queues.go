// Package queues holds what the FIFO, LIFO and double-ended queue packages
// share: the construction error and an equality helper.
//
// The queue types themselves live in the subpackages:
//   - fifo.Queue: first in, first out
//   - lifo.Queue: last in, first out
//   - de.Queue: double-ended
//
// All three are backed by one growable ring buffer each, push and pop in
// O(1), report their length in O(1), grow without bound and are not
// indexable. None of them is safe for concurrent use.
package queues

import "errors"

// ErrTooManySequences is returned by the New constructors when given more
// than one initializing sequence.
var ErrTooManySequences = errors.New("at most one initializing sequence is allowed")

// Equaler is implemented by every queue type.
type Equaler[T any] interface {
	// EqualFunc reports whether other is a queue of the same kind holding
	// the same elements in the same order, compared with eq.
	EqualFunc(other any, eq func(a, b T) bool) bool
}

// Equal reports whether q and other are queues of the same kind holding
// equal elements in the same order. A queue never equals a queue of another
// kind or a value that is not a queue.
func Equal[T comparable](q Equaler[T], other any) bool {
	return q.EqualFunc(other, func(a, b T) bool { return a == b })
}

// Package ringbuf provides the growable ring buffer shared by the queue types.
//
// Buffer stores its elements in a power-of-two sized slice and addresses them
// with a mask, so both ends can be pushed and popped in O(1). When a push
// would fill the slice, the buffer doubles its capacity and re-linearizes its
// elements starting at slot 0, which keeps pushes amortized O(1).
//
// # Safety
//
// Buffer is NOT safe for concurrent use. Callers that share a Buffer between
// goroutines must serialize access themselves.
package ringbuf

import "iter"

// minCapacity is the capacity of the first allocation.
const minCapacity = 8

// Buffer is a double-ended, growable ring buffer.
//
// The zero value is an empty buffer ready for use.
type Buffer[T any] struct {
	// Elements [head, head+count) modulo len(buf) are live.
	// Invariants:
	//   - len(buf) is 0 or a power of 2
	//   - count < len(buf) whenever len(buf) > 0
	//   - head < len(buf), or head == 0 when len(buf) == 0
	buf   []T
	head  int
	count int
}

// New creates a Buffer holding items, head first.
func New[T any](items ...T) *Buffer[T] {
	b := &Buffer[T]{}
	b.reserve(len(items))
	b.PushTail(items...)
	return b
}

// FromSeq creates a Buffer holding the elements of seq in iteration order.
// seq must be finite.
func FromSeq[T any](seq iter.Seq[T]) *Buffer[T] {
	b := &Buffer[T]{}
	if seq == nil {
		return b
	}
	for v := range seq {
		b.PushTail(v)
	}
	return b
}

// roundUp returns the smallest power of 2 that is >= n and >= minCapacity.
func roundUp(n int) int {
	c := minCapacity
	for c < n {
		c <<= 1
	}
	return c
}

func (b *Buffer[T]) mask() int {
	return len(b.buf) - 1
}

// slot maps logical index i (0 is the head) to a position in buf.
func (b *Buffer[T]) slot(i int) int {
	return (b.head + i) & b.mask()
}

// reserve ensures that n more elements can be pushed without growing.
func (b *Buffer[T]) reserve(n int) {
	// One slot always stays free: a push may never make count == len(buf).
	need := b.count + n + 1
	if need <= len(b.buf) {
		return
	}
	b.resize(roundUp(need))
}

// resize moves the live elements into a new slice of capacity c, starting at
// slot 0.
func (b *Buffer[T]) resize(c int) {
	buf := make([]T, c)
	if b.count > 0 {
		end := b.head + b.count
		if end <= len(b.buf) {
			copy(buf, b.buf[b.head:end])
		} else {
			n := copy(buf, b.buf[b.head:])
			copy(buf[n:], b.buf[:end-len(b.buf)])
		}
	}
	b.buf = buf
	b.head = 0
}

// grow doubles the capacity when the next push would fill the buffer.
func (b *Buffer[T]) grow() {
	if b.count+1 < len(b.buf) {
		return
	}
	if len(b.buf) == 0 {
		b.resize(minCapacity)
		return
	}
	b.resize(len(b.buf) << 1)
}

// PushTail appends items at the tail in argument order.
func (b *Buffer[T]) PushTail(items ...T) {
	for _, v := range items {
		b.grow()
		b.buf[b.slot(b.count)] = v
		b.count++
	}
}

// PushHead pushes items at the head one at a time, in argument order. After
// PushHead(1, 2) the head element is 2.
func (b *Buffer[T]) PushHead(items ...T) {
	for _, v := range items {
		b.grow()
		b.head = (b.head - 1) & b.mask()
		b.buf[b.head] = v
		b.count++
	}
}

// PopHead removes and returns the head element.
// Returns false if the buffer is empty.
func (b *Buffer[T]) PopHead() (T, bool) {
	var zero T
	if b.count == 0 {
		return zero, false
	}
	v := b.buf[b.head]
	b.buf[b.head] = zero // release the reference
	b.head = (b.head + 1) & b.mask()
	b.count--
	return v, true
}

// PopTail removes and returns the tail element.
// Returns false if the buffer is empty.
func (b *Buffer[T]) PopTail() (T, bool) {
	var zero T
	if b.count == 0 {
		return zero, false
	}
	i := b.slot(b.count - 1)
	v := b.buf[i]
	b.buf[i] = zero
	b.count--
	return v, true
}

// PeekHead returns the head element without removing it.
func (b *Buffer[T]) PeekHead() (T, bool) {
	if b.count == 0 {
		var zero T
		return zero, false
	}
	return b.buf[b.head], true
}

// PeekTail returns the tail element without removing it.
func (b *Buffer[T]) PeekTail() (T, bool) {
	if b.count == 0 {
		var zero T
		return zero, false
	}
	return b.buf[b.slot(b.count-1)], true
}

// Len returns the number of elements in the buffer.
func (b *Buffer[T]) Len() int {
	return b.count
}

// Cap returns the number of slots currently allocated.
func (b *Buffer[T]) Cap() int {
	return len(b.buf)
}

// IsEmpty reports whether the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.count == 0
}

// All returns an iterator over the elements from head to tail.
//
// The iterator reads the buffer as it was when iteration started. Mutating
// the buffer during iteration does not affect the buffer's own state, but
// the values yielded afterwards are unspecified.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		buf, head, count := b.buf, b.head, b.count
		mask := len(buf) - 1
		for i := 0; i < count; i++ {
			if !yield(buf[(head+i)&mask]) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from tail to head.
// It has the same snapshot behaviour as All.
func (b *Buffer[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		buf, head, count := b.buf, b.head, b.count
		mask := len(buf) - 1
		for i := count - 1; i >= 0; i-- {
			if !yield(buf[(head+i)&mask]) {
				return
			}
		}
	}
}

// Copy returns a Buffer with the same elements in the same order and its own
// storage.
func (b *Buffer[T]) Copy() *Buffer[T] {
	c := &Buffer[T]{}
	c.reserve(b.count)
	for v := range b.All() {
		c.PushTail(v)
	}
	return c
}

// EqualFunc reports whether b and other have the same length and eq holds
// for every pair of elements in head-to-tail order.
func (b *Buffer[T]) EqualFunc(other *Buffer[T], eq func(a, b T) bool) bool {
	if b == other {
		return true
	}
	if other == nil || b.count != other.count {
		return false
	}
	for i := 0; i < b.count; i++ {
		if !eq(b.buf[b.slot(i)], other.buf[other.slot(i)]) {
			return false
		}
	}
	return true
}

// ReduceHead folds from head to tail, seeding the accumulator with the head
// element. Returns false if the buffer is empty.
func (b *Buffer[T]) ReduceHead(f func(acc, item T) T) (T, bool) {
	acc, ok := b.PeekHead()
	if !ok {
		return acc, false
	}
	for i := 1; i < b.count; i++ {
		acc = f(acc, b.buf[b.slot(i)])
	}
	return acc, true
}

// ReduceTail folds from tail to head, seeding the accumulator with the tail
// element. f receives the element first and the accumulator second.
// Returns false if the buffer is empty.
func (b *Buffer[T]) ReduceTail(f func(item, acc T) T) (T, bool) {
	acc, ok := b.PeekTail()
	if !ok {
		return acc, false
	}
	for i := b.count - 2; i >= 0; i-- {
		acc = f(b.buf[b.slot(i)], acc)
	}
	return acc, true
}

// FoldHead folds b from head to tail starting from initial.
func FoldHead[T, A any](b *Buffer[T], f func(acc A, item T) A, initial A) A {
	acc := initial
	for v := range b.All() {
		acc = f(acc, v)
	}
	return acc
}

// FoldTail folds b from tail to head starting from initial. f receives the
// element first and the accumulator second.
func FoldTail[T, A any](b *Buffer[T], f func(item T, acc A) A, initial A) A {
	acc := initial
	for v := range b.Backward() {
		acc = f(v, acc)
	}
	return acc
}

// Map returns a new Buffer holding f applied to each element of b, in the
// same order.
func Map[T, U any](b *Buffer[T], f func(T) U) *Buffer[U] {
	m := &Buffer[U]{}
	m.reserve(b.count)
	for v := range b.All() {
		m.PushTail(f(v))
	}
	return m
}

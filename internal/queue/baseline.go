package queue

import (
	eapache "github.com/eapache/queue"
	ring "github.com/randomizedcoder/go-lock-free-ring"
)

// Baseline is a fixed-capacity or library queue the growable kinds are
// timed against. Push reports false when the baseline is full and Pop
// reports false when it is empty.
type Baseline[T any] interface {
	Name() string
	Push(v T) bool
	Pop() (T, bool)
	Len() int
}

// ChannelQueue wraps a buffered channel as a Baseline.
//
// This is the standard library approach. Each Push/Pop performs
// a non-blocking channel operation via select with default.
type ChannelQueue[T any] struct {
	ch chan T
}

// NewChannel creates a ChannelQueue with the specified buffer size.
func NewChannel[T any](size int) *ChannelQueue[T] {
	return &ChannelQueue[T]{
		ch: make(chan T, size),
	}
}

func (q *ChannelQueue[T]) Name() string { return "channel" }

// Push adds an item to the queue.
// Returns false if the queue is full (non-blocking).
func (q *ChannelQueue[T]) Push(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// Pop removes and returns the oldest item.
// Returns false if the queue is empty (non-blocking).
func (q *ChannelQueue[T]) Pop() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

func (q *ChannelQueue[T]) Len() int {
	return len(q.ch)
}

// SliceStack is the append/reslice stack most Go code writes by hand.
type SliceStack[T any] struct {
	items []T
}

// NewSliceStack creates a SliceStack with room for size items before the
// first reallocation.
func NewSliceStack[T any](size int) *SliceStack[T] {
	return &SliceStack[T]{items: make([]T, 0, size)}
}

func (s *SliceStack[T]) Name() string { return "slice" }

// Push never fails; the slice grows as append sees fit.
func (s *SliceStack[T]) Push(v T) bool {
	s.items = append(s.items, v)
	return true
}

// Pop removes and returns the newest item.
func (s *SliceStack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, true
}

func (s *SliceStack[T]) Len() int {
	return len(s.items)
}

// EapacheQueue wraps github.com/eapache/queue, an untyped growable
// ring-buffer FIFO.
type EapacheQueue[T any] struct {
	q *eapache.Queue
}

func NewEapache[T any]() *EapacheQueue[T] {
	return &EapacheQueue[T]{q: eapache.New()}
}

func (q *EapacheQueue[T]) Name() string { return "eapache" }

func (q *EapacheQueue[T]) Push(v T) bool {
	q.q.Add(v)
	return true
}

func (q *EapacheQueue[T]) Pop() (T, bool) {
	var zero T
	if q.q.Length() == 0 {
		return zero, false
	}
	return q.q.Remove().(T), true
}

func (q *EapacheQueue[T]) Len() int {
	return q.q.Length()
}

// lockFreeCapacity is the capacity of every LockFreeRing.
const lockFreeCapacity = 1024

// LockFreeRing wraps a single-shard go-lock-free-ring ShardedRing.
//
// The ring is bounded and, with one shard, behaves as a FIFO for a single
// producer. It boxes every item.
type LockFreeRing[T any] struct {
	r   shardedRing
	len int
}

// shardedRing is the part of the go-lock-free-ring API a single producer
// uses.
type shardedRing interface {
	Write(pid uint64, v any) bool
	TryRead() (any, bool)
}

// NewLockFreeRing creates a LockFreeRing holding up to 1024 items.
func NewLockFreeRing[T any]() (*LockFreeRing[T], error) {
	r, err := ring.NewShardedRing(lockFreeCapacity, 1)
	if err != nil {
		return nil, err
	}
	return &LockFreeRing[T]{r: r}, nil
}

func (q *LockFreeRing[T]) Name() string { return "lock-free-ring" }

func (q *LockFreeRing[T]) Push(v T) bool {
	if !q.r.Write(0, v) {
		return false
	}
	q.len++
	return true
}

func (q *LockFreeRing[T]) Pop() (T, bool) {
	var zero T
	v, ok := q.r.TryRead()
	if !ok {
		return zero, false
	}
	q.len--
	return v.(T), true
}

// Len counts items pushed and not yet popped through this wrapper.
func (q *LockFreeRing[T]) Len() int {
	return q.len
}

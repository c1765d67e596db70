package lifo_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/go-fp-queues/maybe"
	"github.com/randomizedcoder/go-fp-queues/queues"
	"github.com/randomizedcoder/go-fp-queues/queues/de"
	"github.com/randomizedcoder/go-fp-queues/queues/fifo"
	"github.com/randomizedcoder/go-fp-queues/queues/lifo"
)

func TestQueue_PushThenPop(t *testing.T) {
	var q lifo.Queue[any]
	q.Push(42)
	q.Push("bar")

	require.Equal(t, "bar", q.Pop().GetOr(100))
	require.Equal(t, 42, q.Pop().GetOr("foo"))
	require.Equal(t, 24.0, q.Pop().GetOr(24.0))
	require.Equal(t, 0, q.Len())

	q.Push(0)
	require.Equal(t, maybe.Of[any](0), q.Pop())
	require.True(t, q.IsEmpty())
	require.Equal(t, maybe.None[any](), q.Pop())
}

func TestQueue_BoolLenPeek(t *testing.T) {
	var q lifo.Queue[int]
	require.True(t, q.IsEmpty())

	q.Push(1, 2, 3)
	require.False(t, q.IsEmpty())
	require.Equal(t, maybe.Of(3), q.Peek())
	require.Equal(t, 3, q.Len())

	require.Equal(t, maybe.Of(3), q.Pop())
	require.Equal(t, maybe.Of(2), q.Pop())
	require.Equal(t, maybe.Of(1), q.Pop())
	require.True(t, q.IsEmpty())
	require.Equal(t, maybe.None[int](), q.Pop())

	q.Push(42)
	require.Equal(t, maybe.Of(42), q.Peek())
	q.Push(0)
	require.Equal(t, maybe.Of(0), q.Peek())
	require.Equal(t, 0, q.Pop().GetOr(-1))
	require.Equal(t, maybe.Of(42), q.Peek())
	require.Equal(t, 42, q.Pop().GetOr(-1))
	require.Equal(t, maybe.None[int](), q.Peek())
}

func TestNew(t *testing.T) {
	data := make([]int, 1000)
	for i := range data {
		data[i] = i + 1
	}
	q, err := lifo.New(slices.Values(data))
	require.NoError(t, err)

	i := len(data) - 1
	for v := range q.All() {
		require.Equal(t, data[i], v)
		i--
	}
	require.Equal(t, -1, i)

	empty, err := lifo.New[int]()
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
	require.Equal(t, maybe.None[int](), empty.Pop())
}

func TestNew_TooManySequences(t *testing.T) {
	_, err := lifo.New(slices.Values([]int{1}), slices.Values([]int{2}), slices.Values([]int{3}))
	require.ErrorIs(t, err, queues.ErrTooManySequences)
	require.Contains(t, err.Error(), "lifo")
	require.True(t, errors.Is(err, queues.ErrTooManySequences))
}

func TestQueue_Equality(t *testing.T) {
	a := lifo.Of[*int](nil, nil)
	b := lifo.Of[*int]()
	b.Push(nil, nil)
	require.True(t, queues.Equal(a, b))
	require.Equal(t, 2, a.Len())

	require.True(t, queues.Equal(lifo.Of(1, 2, 3), lifo.Of(1, 2, 3)))
	require.False(t, queues.Equal(lifo.Of(1, 2, 3), lifo.Of(3, 2, 1)))
	require.False(t, queues.Equal(lifo.Of(1, 2, 3), fifo.Of(1, 2, 3)))
	require.False(t, queues.Equal(lifo.Of(1, 2, 3), de.Of(1, 2, 3)))
	require.False(t, queues.Equal(lifo.Of(1, 2, 3), "1 2 3"))
}

func TestQueue_Copy(t *testing.T) {
	q := lifo.Of(1, 2, 3)
	c := q.Copy()
	require.True(t, queues.Equal(q, c))
	require.Equal(t, slices.Collect(q.All()), slices.Collect(c.All()))

	c.Push(4)
	require.Equal(t, maybe.Of(3), q.Peek())
	require.Equal(t, maybe.Of(4), c.Pop())
	require.Equal(t, maybe.Of(3), c.Pop())
}

func TestQueue_Fold(t *testing.T) {
	add := func(a, b int) int { return a + b }
	require.Equal(t, maybe.None[int](), lifo.Of[int]().Fold(add))
	require.Equal(t, maybe.Of(10), lifo.FoldFrom(lifo.Of[int](), add, 10))

	q := lifo.Of(1, 2, 3, 4)
	require.Equal(t, maybe.Of(10), q.Fold(add))

	// Newest to oldest, accumulator first.
	sub := func(acc, n int) int { return acc - n }
	require.Equal(t, maybe.Of(4-3-2-1), q.Fold(sub))
	cat := func(acc string, n int) string { return acc + fmt.Sprint(n) }
	require.Equal(t, maybe.Of(">4321"), lifo.FoldFrom(q, cat, ">"))
	require.Equal(t, 4, q.Len())
}

func TestMap(t *testing.T) {
	q := lifo.Of(maybe.Of(1), maybe.Of(2), maybe.Of(3))
	q.Push(maybe.Of(4), maybe.None[int](), maybe.Of(5))

	double := func(m maybe.MayBe[int]) maybe.MayBe[int] {
		return maybe.Bind(m, func(n int) maybe.MayBe[int] { return maybe.Of(2 * n) })
	}
	m := lifo.Map(q, double)

	require.Equal(t, maybe.Of(10), m.Pop().GetOr(maybe.Of(42)))
	popped := m.Pop()
	require.Equal(t, maybe.Of(maybe.None[int]()), popped)
	require.Equal(t, maybe.None[int](), popped.GetOr(maybe.Of(42)))
	require.Equal(t, maybe.Of(maybe.Of(8)), m.Peek())
	require.Equal(t, 8, m.Peek().GetOr(maybe.Of(3)).GetOr(42))
	require.Equal(t, 6, q.Len())
}

func TestQueue_String(t *testing.T) {
	q := lifo.Of(1, 2, 3)
	require.Equal(t, "|| 3 > 2 > 1 ><", q.String())
	require.Equal(t, "|| ><", lifo.Of[int]().String())
	require.Equal(t, "lifo.Of(1, 2, 3)", fmt.Sprintf("%#v", q))
}

func TestQueue_Growth(t *testing.T) {
	var q lifo.Queue[int]
	const n = 10_000
	for i := 0; i < n; i++ {
		q.Push(i)
	}
	for i := n - 1; i >= 0; i-- {
		require.Equal(t, maybe.Of(i), q.Pop())
	}
	require.True(t, q.IsEmpty())
}

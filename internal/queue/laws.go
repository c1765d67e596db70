package queue

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/randomizedcoder/go-fp-queues/maybe"
)

var (
	// ErrLawViolated is wrapped by every error a Law returns.
	ErrLawViolated = errors.New("queue law violated")

	// ErrNotApplicable is returned by a Law that does not apply to a Kind.
	ErrNotApplicable = errors.New("law does not apply to kind")
)

// GrowthItems is the number of items the growth law pushes before
// draining, whatever size it is given.
const GrowthItems = 10_000

// Law is an executable property every queue kind must satisfy.
//
// Check builds its own queues of n items from k and never retains them.
type Law[T constraints.Integer] struct {
	Name  string
	Check func(k Kind[T], n int) error
}

// Laws returns every law, in a stable order.
func Laws[T constraints.Integer]() []Law[T] {
	return []Law[T]{
		{Name: "order", Check: orderLaw[T]},
		{Name: "length", Check: lengthLaw[T]},
		{Name: "growth", Check: growthLaw[T]},
		{Name: "copy-independence", Check: copyLaw[T]},
		{Name: "map-order", Check: mapLaw[T]},
		{Name: "fold-identity", Check: foldLaw[T]},
		{Name: "sum", Check: sumLaw[T]},
		{Name: "deque-symmetry", Check: symmetryLaw[T]},
	}
}

// SelectLaws returns the laws whose names are listed, in Laws order. An
// empty list selects every law. Unknown names are an error.
func SelectLaws[T constraints.Integer](names []string) ([]Law[T], error) {
	all := Laws[T]()
	if len(names) == 0 {
		return all, nil
	}
	for _, name := range names {
		if !slices.ContainsFunc(all, func(l Law[T]) bool { return l.Name == name }) {
			return nil, fmt.Errorf("queue: unknown law %q", name)
		}
	}
	return slices.DeleteFunc(all, func(l Law[T]) bool {
		return !slices.Contains(names, l.Name)
	}), nil
}

func violation(law, kind, format string, args ...any) error {
	return fmt.Errorf("%w: %s on %s: %s", ErrLawViolated, law, kind, fmt.Sprintf(format, args...))
}

// filled returns a new queue of kind k holding 0..n-1 pushed in order.
func filled[T constraints.Integer](k Kind[T], n int) Queue[T] {
	q := k.New()
	for i := 0; i < n; i++ {
		q.Push(T(i))
	}
	return q
}

// expected returns the value the i-th pop of filled(k, n) must return.
func expected[T constraints.Integer](k Kind[T], n, i int) T {
	if k.Order == LastInFirstOut {
		return T(n - 1 - i)
	}
	return T(i)
}

// drain pops q until it is empty, checking each item against expected
// and that Peek agrees with Pop.
func drain[T constraints.Integer](law string, k Kind[T], q Queue[T], n int) error {
	for i := 0; i < n; i++ {
		peeked := k.Peek(q)
		popped := q.Pop()
		if peeked != popped {
			return violation(law, k.Name, "peek %v before pop %d, pop returned %v", peeked, i, popped)
		}
		if want := maybe.Of(expected(k, n, i)); popped != want {
			return violation(law, k.Name, "pop %d = %v, want %v", i, popped, want)
		}
	}
	if !q.IsEmpty() {
		return violation(law, k.Name, "%d items left after %d pops", q.Len(), n)
	}
	if popped := q.Pop(); popped.IsPresent() {
		return violation(law, k.Name, "pop on empty queue = %v", popped)
	}
	return nil
}

func orderLaw[T constraints.Integer](k Kind[T], n int) error {
	return drain("order", k, filled(k, n), n)
}

func lengthLaw[T constraints.Integer](k Kind[T], n int) error {
	q := k.New()
	for i := 0; i < n; i++ {
		if q.Len() != i || q.IsEmpty() != (i == 0) {
			return violation("length", k.Name, "after %d pushes Len = %d, IsEmpty = %t", i, q.Len(), q.IsEmpty())
		}
		q.Push(T(i))
	}
	for i := n; i > 0; i-- {
		if q.Len() != i || q.IsEmpty() {
			return violation("length", k.Name, "with %d items Len = %d, IsEmpty = %t", i, q.Len(), q.IsEmpty())
		}
		q.Pop()
	}
	if q.Len() != 0 || !q.IsEmpty() {
		return violation("length", k.Name, "drained queue Len = %d, IsEmpty = %t", q.Len(), q.IsEmpty())
	}
	return nil
}

func growthLaw[T constraints.Integer](k Kind[T], _ int) error {
	q := filled(k, GrowthItems)
	if q.Len() != GrowthItems {
		return violation("growth", k.Name, "Len = %d after %d pushes", q.Len(), GrowthItems)
	}
	return drain("growth", k, q, GrowthItems)
}

func copyLaw[T constraints.Integer](k Kind[T], n int) error {
	q := filled(k, n)
	c := k.Copy(q)
	if !k.Equal(q, c) {
		return violation("copy-independence", k.Name, "copy of %d items is not equal to its source", n)
	}
	c.Push(T(n))
	if q.Len() != n {
		return violation("copy-independence", k.Name, "push to copy changed source Len to %d", q.Len())
	}
	if err := drain("copy-independence", k, q, n); err != nil {
		return err
	}
	if c.Len() != n+1 {
		return violation("copy-independence", k.Name, "draining source changed copy Len to %d", c.Len())
	}
	return nil
}

func mapLaw[T constraints.Integer](k Kind[T], n int) error {
	f := func(v T) T { return 2*v + 1 }
	q := filled(k, n)
	m := k.Map(q, f)
	if m.Len() != q.Len() {
		return violation("map-order", k.Name, "mapped Len = %d, want %d", m.Len(), q.Len())
	}
	for i := 0; !q.IsEmpty(); i++ {
		want := maybe.Map(q.Pop(), f)
		if got := m.Pop(); got != want {
			return violation("map-order", k.Name, "mapped pop %d = %v, want %v", i, got, want)
		}
	}
	if !m.IsEmpty() {
		return violation("map-order", k.Name, "mapped queue has %d extra items", m.Len())
	}
	return nil
}

func foldLaw[T constraints.Integer](k Kind[T], n int) error {
	// Not commutative, so the fold direction shows.
	f := func(acc, item T) T { return 3*acc - item }

	empty := k.New()
	if got := k.Fold(empty, f); got.IsPresent() {
		return violation("fold-identity", k.Name, "fold of empty queue = %v", got)
	}
	if got := k.FoldFrom(empty, f, 7); got != maybe.Of[T](7) {
		return violation("fold-identity", k.Name, "seeded fold of empty queue = %v, want MayBe(7)", got)
	}

	q := filled(k, n)
	var (
		want maybe.MayBe[T]
		acc  T
	)
	for i := 0; i < n; i++ {
		if v := expected(k, n, i); i == 0 {
			acc = v
		} else {
			acc = f(acc, v)
		}
		want = maybe.Of(acc)
	}
	if got := k.Fold(q, f); got != want {
		return violation("fold-identity", k.Name, "fold = %v, want %v", got, want)
	}

	seed := T(5)
	for i := 0; i < n; i++ {
		seed = f(seed, expected(k, n, i))
	}
	if got := k.FoldFrom(q, f, 5); got != maybe.Of(seed) {
		return violation("fold-identity", k.Name, "seeded fold = %v, want %v", got, maybe.Of(seed))
	}
	if q.Len() != n {
		return violation("fold-identity", k.Name, "fold changed Len to %d", q.Len())
	}
	return nil
}

// Sum adds every item of seq; overflow wraps.
func Sum[T constraints.Integer](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

func sumLaw[T constraints.Integer](k Kind[T], n int) error {
	add := func(a, b T) T { return a + b }
	q := filled(k, n)

	want := Sum(k.All(q))
	if got := k.FoldFrom(q, add, 0); got != maybe.Of(want) {
		return violation("sum", k.Name, "seeded fold sum = %v, want %v", got, want)
	}
	if n == 0 {
		return nil
	}
	if got := k.Fold(q, add); got != maybe.Of(want) {
		return violation("sum", k.Name, "fold sum = %v, want %v", got, want)
	}
	var direct T
	for i := 0; i < n; i++ {
		direct += T(i)
	}
	if want != direct {
		return violation("sum", k.Name, "iterated sum = %v, want %v", want, direct)
	}
	return nil
}

// deque is the double-ended surface the deque kinds expose.
type deque[T any] interface {
	PushLeft(items ...T)
	PushRight(items ...T)
	PopLeft() maybe.MayBe[T]
	PopRight() maybe.MayBe[T]
	All() iter.Seq[T]
}

func symmetryLaw[T constraints.Integer](k Kind[T], n int) error {
	a, ok := k.New().(deque[T])
	if !ok {
		return fmt.Errorf("%w: deque-symmetry on %s", ErrNotApplicable, k.Name)
	}
	b := k.New().(deque[T])
	for i := 0; i < n; i++ {
		a.PushRight(T(i))
		b.PushLeft(T(i))
	}

	left := slices.Collect(a.All())
	right := slices.Collect(b.All())
	slices.Reverse(right)
	if !slices.Equal(left, right) {
		return violation("deque-symmetry", k.Name, "right pushes %v do not mirror left pushes %v", left, right)
	}
	for i := 0; i < n; i++ {
		x, y := a.PopLeft(), b.PopRight()
		if x != y {
			return violation("deque-symmetry", k.Name, "pop %d: left %v, mirrored right %v", i, x, y)
		}
	}
	return nil
}

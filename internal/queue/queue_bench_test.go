package queue_test

import (
	"testing"

	"github.com/randomizedcoder/go-fp-queues/internal/queue"
	"github.com/randomizedcoder/go-fp-queues/maybe"
	"github.com/randomizedcoder/go-fp-queues/queues/fifo"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkMayBe maybe.MayBe[int]
var sinkInt int
var sinkBool bool

// Direct type benchmarks (true performance floor)

func BenchmarkQueue_FIFO_PushPop_Direct(b *testing.B) {
	var q fifo.Queue[int]
	b.ReportAllocs()
	b.ResetTimer()

	var m maybe.MayBe[int]
	for i := 0; i < b.N; i++ {
		q.Push(i)
		m = q.Pop()
	}
	sinkMayBe = m
}

func BenchmarkQueue_Channel_PushPop_Direct(b *testing.B) {
	q := queue.NewChannel[int](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val, ok = q.Pop()
	}
	sinkInt = val
	sinkBool = ok
}

// Interface benchmarks (with dynamic dispatch overhead)

func BenchmarkQueue_Kinds_PushPop_Interface(b *testing.B) {
	for _, k := range queue.Kinds[int]() {
		b.Run(k.Name, func(b *testing.B) {
			q := k.New()
			b.ReportAllocs()
			b.ResetTimer()

			var m maybe.MayBe[int]
			for i := 0; i < b.N; i++ {
				q.Push(i)
				m = q.Pop()
			}
			sinkMayBe = m
		})
	}
}

func BenchmarkQueue_Baselines_PushPop_Interface(b *testing.B) {
	lfr, err := queue.NewLockFreeRing[int]()
	if err != nil {
		b.Fatal(err)
	}
	baselines := []queue.Baseline[int]{
		queue.NewChannel[int](1024),
		queue.NewSliceStack[int](1024),
		queue.NewEapache[int](),
		lfr,
	}
	for _, q := range baselines {
		b.Run(q.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			var val int
			var ok bool
			for i := 0; i < b.N; i++ {
				q.Push(i)
				val, ok = q.Pop()
			}
			sinkInt = val
			sinkBool = ok
		})
	}
}

// Growth benchmarks: fill then drain, so the buffer doubles log2(size) times

func BenchmarkQueue_Kinds_FillDrain(b *testing.B) {
	const size = 4096
	for _, k := range queue.Kinds[int]() {
		b.Run(k.Name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			var m maybe.MayBe[int]
			for i := 0; i < b.N; i++ {
				q := k.New()
				for j := 0; j < size; j++ {
					q.Push(j)
				}
				for !q.IsEmpty() {
					m = q.Pop()
				}
			}
			sinkMayBe = m
		})
	}
}

// Law benchmarks

func BenchmarkLaws(b *testing.B) {
	for _, law := range queue.Laws[int]() {
		b.Run(law.Name, func(b *testing.B) {
			k := queue.FIFO[int]()
			b.ReportAllocs()
			b.ResetTimer()

			var err error
			for i := 0; i < b.N; i++ {
				err = law.Check(k, 256)
			}
			sinkBool = err == nil
		})
	}
}

package combined_test

import (
	"sync"
	"sync/atomic"
	"testing"

	ring "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/randomizedcoder/go-fp-queues/queues/fifo"
)

// ============================================================================
// Single goroutine: fifo.Queue vs go-lock-free-ring with one shard
// ============================================================================
//
// KEY DIFFERENCE:
// - fifo.Queue: unbounded, typed, not safe for concurrent use
// - go-lock-free-ring: bounded, boxes values, MPSC safe with sharding

var sinkAny any
var sinkOkLfr bool

// BenchmarkLFR_Single_FIFO - push then pop on an owned fifo.Queue
func BenchmarkLFR_Single_FIFO(b *testing.B) {
	var q fifo.Queue[int]
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		q.Push(i)
		sinkMayBe = q.Pop()
	}
}

// BenchmarkLFR_Single_ShardedRing1 - push then pop on a 1 shard ring
func BenchmarkLFR_Single_ShardedRing1(b *testing.B) {
	r, err := ring.NewShardedRing(1024, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var v any
	var ok bool
	for i := 0; i < b.N; i++ {
		r.Write(0, i)
		v, ok = r.TryRead()
	}
	sinkAny = v
	sinkOkLfr = ok
}

// ============================================================================
// Fan-in: N producers -> 1 consumer that owns a fifo.Queue
// ============================================================================

// fanIn runs b.N items from producers through handoff into a consumer that
// buffers them in a fifo.Queue and drains it in batches.
func fanIn(b *testing.B, producers int, send func(pid uint64, v int), recv func() (int, bool)) {
	var done atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		var q fifo.Queue[int]
		for !done.Load() {
			if v, ok := recv(); ok {
				q.Push(v)
				continue
			}
			for !q.IsEmpty() {
				sinkMayBe = q.Pop()
			}
		}
	}()

	var producerID atomic.Uint64
	b.SetParallelism(producers)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		pid := producerID.Add(1) - 1
		i := 0
		for pb.Next() {
			send(pid, i)
			i++
		}
	})

	b.StopTimer()
	done.Store(true)
	wg.Wait()
}

// BenchmarkLFR_FanIn_Channel_4P - 4 producers using a channel
func BenchmarkLFR_FanIn_Channel_4P(b *testing.B) {
	ch := make(chan int, 1024)
	fanIn(b, 4,
		func(_ uint64, v int) { ch <- v },
		func() (int, bool) {
			select {
			case v := <-ch:
				return v, true
			default:
				return 0, false
			}
		})
}

// BenchmarkLFR_FanIn_ShardedRing_4P_4S - 4 producers, 4 shards
func BenchmarkLFR_FanIn_ShardedRing_4P_4S(b *testing.B) {
	r, err := ring.NewShardedRing(1024, 4)
	if err != nil {
		b.Fatal(err)
	}
	benchRingFanIn(b, 4, r, 4)
}

// BenchmarkLFR_FanIn_ShardedRing_8P_8S - 8 producers, 8 shards
func BenchmarkLFR_FanIn_ShardedRing_8P_8S(b *testing.B) {
	r, err := ring.NewShardedRing(2048, 8) // Larger capacity for 8 producers
	if err != nil {
		b.Fatal(err)
	}
	benchRingFanIn(b, 8, r, 8)
}

// mpscRing is the part of the sharded ring the fan-in uses.
type mpscRing interface {
	Write(pid uint64, v any) bool
	TryRead() (any, bool)
}

func benchRingFanIn(b *testing.B, producers int, r mpscRing, shards uint64) {
	fanIn(b, producers,
		func(pid uint64, v int) {
			for !r.Write(pid%shards, v) {
			}
		},
		func() (int, bool) {
			v, ok := r.TryRead()
			if !ok {
				return 0, false
			}
			return v.(int), true
		})
}

// Command deque times every queue kind through the shared Queue
// interface, the deque adapters next to the queues they stand in for.
//
// Usage:
//
//	go run ./cmd/deque --n 10000000 --size 1024
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randomizedcoder/go-fp-queues/internal/benchcfg"
	"github.com/randomizedcoder/go-fp-queues/internal/queue"
	"github.com/randomizedcoder/go-fp-queues/internal/timing"
	"github.com/randomizedcoder/go-fp-queues/queues/de"
)

func main() {
	cmd := benchcfg.Command("deque", "Time de.Queue against the FIFO and LIFO queues", benchcfg.Defaults(), run)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, cfg benchcfg.Config, log *zap.Logger) error {
	rounds, ops := timing.Rounds(cfg.N, cfg.Size)
	log.Info("starting", zap.Int("n", cfg.N), zap.Int("size", cfg.Size), zap.Int("rounds", rounds))

	// Direct calls, no interface dispatch.
	results := []timing.Result{timing.Measure("de.Queue left", ops, func() {
		var q de.Queue[int]
		for r := 0; r < rounds; r++ {
			for i := 0; i < cfg.Size; i++ {
				q.PushLeft(i)
			}
			for i := 0; i < cfg.Size; i++ {
				q.PopRight()
			}
		}
	})}

	for _, k := range queue.Kinds[int]() {
		res := timing.Measure(k.Name, ops, func() {
			q := k.New()
			for r := 0; r < rounds; r++ {
				for i := 0; i < cfg.Size; i++ {
					q.Push(i)
				}
				for i := 0; i < cfg.Size; i++ {
					q.Pop()
				}
			}
		})
		log.Debug("measured", zap.String("kind", k.Name), zap.Stringer("order", k.Order), zap.Duration("elapsed", res.Elapsed))
		results = append(results, res)
	}

	timing.Print(cmd.OutOrStdout(),
		fmt.Sprintf("Benchmarking queue kinds (%d push + pop, size=%d)", ops, cfg.Size), results)
	return nil
}

// Command lifo times lifo.Queue against a slice backed stack.
//
// Usage:
//
//	go run ./cmd/lifo --n 10000000 --size 1024
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randomizedcoder/go-fp-queues/internal/benchcfg"
	"github.com/randomizedcoder/go-fp-queues/internal/queue"
	"github.com/randomizedcoder/go-fp-queues/internal/timing"
	"github.com/randomizedcoder/go-fp-queues/queues/lifo"
)

func main() {
	cmd := benchcfg.Command("lifo", "Time lifo.Queue against a slice stack", benchcfg.Defaults(), run)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, cfg benchcfg.Config, log *zap.Logger) error {
	rounds, ops := timing.Rounds(cfg.N, cfg.Size)
	log.Info("starting", zap.Int("n", cfg.N), zap.Int("size", cfg.Size), zap.Int("rounds", rounds))

	lifoRes := timing.Measure("lifo.Queue", ops, func() {
		var q lifo.Queue[int]
		for r := 0; r < rounds; r++ {
			for i := 0; i < cfg.Size; i++ {
				q.Push(i)
			}
			for i := 0; i < cfg.Size; i++ {
				q.Pop()
			}
		}
	})
	log.Debug("measured", zap.String("queue", lifoRes.Name), zap.Duration("elapsed", lifoRes.Elapsed))

	// Starts empty so both stacks pay for their first growth.
	stack := queue.NewSliceStack[int](0)
	stackRes := timing.Measure(stack.Name(), ops, func() {
		for r := 0; r < rounds; r++ {
			for i := 0; i < cfg.Size; i++ {
				stack.Push(i)
			}
			for i := 0; i < cfg.Size; i++ {
				stack.Pop()
			}
		}
	})
	log.Debug("measured", zap.String("queue", stackRes.Name), zap.Duration("elapsed", stackRes.Elapsed))

	timing.Print(cmd.OutOrStdout(),
		fmt.Sprintf("Benchmarking LIFO queues (%d push + pop, size=%d)", ops, cfg.Size),
		[]timing.Result{lifoRes, stackRes})
	return nil
}

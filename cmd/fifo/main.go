// Command fifo times fifo.Queue against other FIFO queues.
//
// Each round pushes -size items and pops them again, for -n operations in
// total.
//
// Usage:
//
//	go run ./cmd/fifo --n 10000000 --size 1024
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randomizedcoder/go-fp-queues/internal/benchcfg"
	"github.com/randomizedcoder/go-fp-queues/internal/queue"
	"github.com/randomizedcoder/go-fp-queues/internal/timing"
	"github.com/randomizedcoder/go-fp-queues/queues/fifo"
)

func main() {
	cmd := benchcfg.Command("fifo", "Time fifo.Queue against other FIFO queues", benchcfg.Defaults(), run)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, cfg benchcfg.Config, log *zap.Logger) error {
	rounds, ops := timing.Rounds(cfg.N, cfg.Size)
	log.Info("starting", zap.Int("n", cfg.N), zap.Int("size", cfg.Size), zap.Int("rounds", rounds))

	results := []timing.Result{timing.Measure("fifo.Queue", ops, func() {
		var q fifo.Queue[int]
		for r := 0; r < rounds; r++ {
			for i := 0; i < cfg.Size; i++ {
				q.Push(i)
			}
			for i := 0; i < cfg.Size; i++ {
				q.Pop()
			}
		}
	})}

	baselines := []queue.Baseline[int]{
		queue.NewChannel[int](cfg.Size),
		queue.NewEapache[int](),
	}
	lfr, err := queue.NewLockFreeRing[int]()
	if err != nil {
		return fmt.Errorf("creating lock-free ring: %w", err)
	}
	var skipped []timing.Result
	if cfg.Size > 1024 {
		log.Warn("skipping bounded baseline", zap.String("queue", lfr.Name()), zap.Int("capacity", 1024))
		skipped = append(skipped, timing.Skip(lfr.Name(), "size above 1024"))
	} else {
		baselines = append(baselines, lfr)
	}

	for _, b := range baselines {
		res := timing.Measure(b.Name(), ops, func() {
			for r := 0; r < rounds; r++ {
				for i := 0; i < cfg.Size; i++ {
					b.Push(i)
				}
				for i := 0; i < cfg.Size; i++ {
					b.Pop()
				}
			}
		})
		log.Debug("measured", zap.String("queue", res.Name), zap.Duration("elapsed", res.Elapsed))
		results = append(results, res)
	}

	timing.Print(cmd.OutOrStdout(),
		fmt.Sprintf("Benchmarking FIFO queues (%d push + pop, size=%d)", ops, cfg.Size),
		append(results, skipped...))
	return nil
}

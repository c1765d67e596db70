// Command queuecheck checks the queue laws over every queue kind and exits
// non-zero when any law is violated.
//
// Usage:
//
//	go run ./cmd/queuecheck --n 1000 --laws order,sum
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randomizedcoder/go-fp-queues/internal/benchcfg"
	"github.com/randomizedcoder/go-fp-queues/internal/queue"
	"github.com/randomizedcoder/go-fp-queues/internal/timing"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	defaults := benchcfg.Defaults()
	defaults.N = 1000
	return benchcfg.Command("queuecheck", "Check the queue laws over every queue kind", defaults, run)
}

func run(cmd *cobra.Command, cfg benchcfg.Config, log *zap.Logger) error {
	checker, err := queue.NewChecker(log, cfg.N, cfg.Laws)
	if err != nil {
		return err
	}
	log.Info("checking laws", zap.Int("n", cfg.N), zap.Strings("laws", cfg.Laws))

	start := time.Now()
	results, err := checker.Run(cmd.Context())
	report(cmd.OutOrStdout(), cfg.N, results)
	log.Info("done", zap.Duration("elapsed", time.Since(start)), zap.Bool("ok", err == nil))
	return err
}

func report(w io.Writer, n int, results []queue.Result) {
	fmt.Fprintf(w, "Checking queue laws (%d items per queue)\n", n)
	fmt.Fprintln(w, timing.Rule)
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Law", "Result", "Elapsed"})
	table.SetAutoFormatHeaders(false)

	var passed, skipped, failed int
	for _, r := range results {
		if r.Kind == "" {
			continue // never ran
		}
		status := "PASS"
		switch {
		case r.Skipped():
			status = "SKIP"
			skipped++
		case r.Err != nil:
			status = "FAIL"
			failed++
		default:
			passed++
		}
		table.Append([]string{r.Kind, r.Law, status, r.Elapsed.Round(time.Microsecond).String()})
	}
	table.Render()
	fmt.Fprintf(w, "\n  %d passed, %d skipped, %d failed\n", passed, skipped, failed)
}

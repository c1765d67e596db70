// Package timing measures push/pop loops and prints the results tables of
// the command line drivers.
package timing

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Rule separates a report's title from its body.
const Rule = "─────────────────────────────────────────────────"

// Result is one timed loop.
type Result struct {
	Name    string
	Ops     int
	Elapsed time.Duration
	// Skipped holds why the loop did not run, if it did not.
	Skipped string
}

// NsPerOp returns the mean cost of one operation.
func (r Result) NsPerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Ops)
}

// MOpsPerSec returns the theoretical throughput in millions of operations
// per second.
func (r Result) MOpsPerSec() float64 {
	ns := r.NsPerOp()
	if ns == 0 {
		return 0
	}
	return 1000 / ns
}

// Measure runs loop once and attributes its wall time to ops operations.
func Measure(name string, ops int, loop func()) Result {
	start := time.Now()
	loop()
	return Result{Name: name, Ops: ops, Elapsed: time.Since(start)}
}

// Skip records a loop that could not run.
func Skip(name, reason string) Result {
	return Result{Name: name, Skipped: reason}
}

// Rounds splits n operations into whole batches of size. It returns the
// number of batches and the operations they cover.
func Rounds(n, size int) (rounds, ops int) {
	if size < 1 {
		return 0, 0
	}
	rounds = n / size
	return rounds, rounds * size
}

// Print writes a titled table of results. Speedups are relative to the
// first result, the subject of the report.
func Print(w io.Writer, title string, results []Result) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, Rule)
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Queue", "Total", "ns/op", "M ops/sec", "vs " + subject(results)})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	var base float64
	if len(results) > 0 {
		base = results[0].NsPerOp()
	}
	for _, r := range results {
		if r.Skipped != "" {
			table.Append([]string{r.Name, "skipped: " + r.Skipped, "-", "-", "-"})
			continue
		}
		table.Append([]string{
			r.Name,
			r.Elapsed.Round(time.Microsecond).String(),
			fmt.Sprintf("%.2f", r.NsPerOp()),
			fmt.Sprintf("%.2f", r.MOpsPerSec()),
			speedup(base, r.NsPerOp()),
		})
	}
	table.Render()
}

func subject(results []Result) string {
	if len(results) == 0 {
		return "-"
	}
	return results[0].Name
}

// speedup renders how many times faster the subject is than a result
// costing ns per op.
func speedup(base, ns float64) string {
	if base == 0 || ns == 0 {
		return "-"
	}
	if ns >= base {
		return fmt.Sprintf("%.2fx", ns/base)
	}
	return fmt.Sprintf("1/%.2fx", base/ns)
}

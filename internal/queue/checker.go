package queue

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one law on one kind.
type Result struct {
	Kind    string
	Law     string
	Err     error
	Elapsed time.Duration
}

// Skipped reports whether the law did not apply to the kind.
func (r Result) Skipped() bool {
	return errors.Is(r.Err, ErrNotApplicable)
}

// Passed reports whether the law held or did not apply.
func (r Result) Passed() bool {
	return r.Err == nil || r.Skipped()
}

// Checker runs a set of laws over every kind of int queue.
type Checker struct {
	log   *zap.Logger
	n     int
	laws  []Law[int]
	kinds []Kind[int]
}

// NewChecker returns a Checker running the named laws (all of them when
// names is empty) with n items per queue.
func NewChecker(log *zap.Logger, n int, names []string) (*Checker, error) {
	if n < 0 {
		return nil, fmt.Errorf("queue: item count must not be negative, got %d", n)
	}
	laws, err := SelectLaws[int](names)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{
		log:   log,
		n:     n,
		laws:  laws,
		kinds: Kinds[int](),
	}, nil
}

// Run checks every (kind, law) pair in its own goroutine, at most
// GOMAXPROCS at a time. Results come back in kind-major order.
//
// The returned error joins every violation. It is ctx's error instead if
// ctx is done before all pairs ran; results of pairs that did not run
// are left zero.
func (c *Checker) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, len(c.kinds)*len(c.laws))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for ki, k := range c.kinds {
		for li, law := range c.laws {
			i := ki*len(c.laws) + li
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				start := time.Now()
				err := law.Check(k, c.n)
				results[i] = Result{Kind: k.Name, Law: law.Name, Err: err, Elapsed: time.Since(start)}

				fields := []zap.Field{
					zap.String("law", law.Name),
					zap.String("kind", k.Name),
					zap.Int("n", c.n),
					zap.Duration("elapsed", results[i].Elapsed),
				}
				switch {
				case err == nil:
					c.log.Debug("law held", fields...)
				case results[i].Skipped():
					c.log.Debug("law skipped", fields...)
				default:
					c.log.Error("law violated", append(fields, zap.Error(err))...)
				}
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}

	var violations []error
	for _, r := range results {
		if !r.Passed() {
			violations = append(violations, r.Err)
		}
	}
	return results, errors.Join(violations...)
}

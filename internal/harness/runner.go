package harness

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhands/poker"
)

// errStopped cancels the remaining work when StopOnFailure is set.
var errStopped = errors.New("stopped after first failure")

// Outcome is the result of checking a single case.
type Outcome struct {
	Case   Case
	Actual poker.Result
	Err    error // set when either hand failed to parse
}

// Passed reports whether the case parsed and produced the expected result.
func (o Outcome) Passed() bool {
	return o.Err == nil && o.Actual == o.Case.Expected
}

// Report collects the outcomes of a run in case order.
type Report struct {
	Outcomes []Outcome
	Skipped  int
	Duration time.Duration
}

// Failures returns the outcomes that did not pass.
func (r Report) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.Passed() {
			failed = append(failed, o)
		}
	}
	return failed
}

// OK reports whether every case ran and passed.
func (r Report) OK() bool {
	return r.Skipped == 0 && len(r.Failures()) == 0
}

// Options configures a Runner.
type Options struct {
	Workers       int
	StopOnFailure bool
}

// Runner checks cases against the comparator using a bounded worker pool.
type Runner struct {
	logger *log.Logger
	clock  quartz.Clock
	opts   Options
}

// NewRunner creates a runner. Workers below one are treated as one.
func NewRunner(logger *log.Logger, clock quartz.Clock, opts Options) *Runner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Runner{logger: logger, clock: clock, opts: opts}
}

// Run checks every case. Cancelling ctx stops scheduling further cases and
// returns the context error alongside the partial report.
func (r *Runner) Run(ctx context.Context, cases []Case) (Report, error) {
	start := r.clock.Now()

	outcomes := make([]Outcome, len(cases))
	done := make([]bool, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	for i := range cases {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			outcome := r.check(cases[i])
			outcomes[i] = outcome
			done[i] = true
			if !outcome.Passed() && r.opts.StopOnFailure {
				return errStopped
			}
			return nil
		})
	}

	err := g.Wait()
	if errors.Is(err, errStopped) {
		err = nil
	}
	if err == nil {
		err = ctx.Err()
	}

	report := Report{Duration: r.clock.Now().Sub(start)}
	for i, ok := range done {
		if ok {
			report.Outcomes = append(report.Outcomes, outcomes[i])
		} else {
			report.Skipped++
		}
	}

	r.logger.Info("Checked cases",
		"total", len(cases),
		"passed", len(report.Outcomes)-len(report.Failures()),
		"failed", len(report.Failures()),
		"skipped", report.Skipped,
		"duration", report.Duration)

	return report, err
}

func (r *Runner) check(c Case) Outcome {
	actual, err := poker.Compare(c.Hand, c.Opponent)
	outcome := Outcome{Case: c, Actual: actual, Err: err}

	switch {
	case err != nil:
		r.logger.Error("Case failed to parse", "line", c.Line, "case", c.Name(), "error", err)
	case !outcome.Passed():
		r.logger.Warn("Case failed",
			"line", c.Line,
			"case", c.Name(),
			"expected", c.Expected,
			"actual", actual)
	default:
		r.logger.Debug("Case passed", "line", c.Line, "case", c.Name(), "result", actual)
	}
	return outcome
}

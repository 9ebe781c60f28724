package core

import (
	"fmt"
	"time"
)

// TestResult is the outcome of one selected test. Never mutated after the
// owning test finishes.
type TestResult struct {
	Name     string
	Loc      Location
	Passed   bool
	Skipped  bool
	Duration time.Duration
	Failures []string
}

// Summary aggregates a result sequence.
type Summary struct {
	Ran         int
	Passed      int
	Failed      int
	Skipped     int
	FailedNames []string
	Elapsed     time.Duration
}

// Engine selects, runs, times, and isolates tests. It is the sole writer of
// the current-context ownership boundary, so a single Engine.Run must not
// overlap another; test execution is fully sequential by design.
type Engine struct {
	registry *Registry
	opts     Options
	console  *Console
}

// NewEngine creates an engine over the given registry.
func NewEngine(registry *Registry, opts Options) *Engine {
	return &Engine{
		registry: registry,
		opts:     opts,
		console:  NewConsole(opts.Out, opts.Color),
	}
}

// Run executes the selected subset of the registry in declaration order and
// returns the ordered results with their summary. Filtered-out tests produce
// no result; Skip tests, and Normal tests when any Only test exists, are
// reported skipped without executing.
func (e *Engine) Run() ([]TestResult, Summary) {
	tests := e.registry.All()

	hasOnly := false
	for _, t := range tests {
		if t.Status == StatusOnly {
			hasOnly = true
		}
	}

	selected := make([]TestCase, 0, len(tests))
	for _, t := range tests {
		if Selects(e.opts.Filter, e.opts.SuiteName, t.Name) {
			selected = append(selected, t)
		}
	}

	e.console.Banner(len(selected))

	start := time.Now()
	results := make([]TestResult, 0, len(selected))

	for _, t := range selected {
		if t.Status == StatusSkip || (hasOnly && t.Status != StatusOnly) {
			e.console.Skipped(t.Name)
			results = append(results, TestResult{Name: t.Name, Loc: t.Loc, Skipped: true})

			continue
		}

		results = append(results, e.runOne(t))
	}

	sum := Summarize(results)
	sum.Elapsed = time.Since(start)

	e.console.Summary(sum)

	if e.opts.XMLPath != "" {
		WriteXMLFile(e.opts.XMLPath, e.opts.SuiteName, results, sum.Elapsed)
	}

	return results, sum
}

// List prints the suite header and the names of the tests the filter
// selects, without running anything.
func (e *Engine) List() {
	tests := e.registry.All()

	selected := make([]TestCase, 0, len(tests))
	for _, t := range tests {
		if Selects(e.opts.Filter, e.opts.SuiteName, t.Name) {
			selected = append(selected, t)
		}
	}

	e.console.List(e.opts.SuiteName, selected)
}

// runOne executes a single test body inside the error boundary: a fresh
// failure ledger is installed before the body runs and detached after, and
// no panic escapes the boundary.
func (e *Engine) runOne(t TestCase) TestResult {
	ctx := newTestContext(e.opts.Out)
	installContext(ctx)

	e.console.Run(t.Name)

	start := time.Now()

	runBody(t.Body, ctx, t.Loc)

	elapsed := time.Since(start)

	clearContext()

	result := TestResult{
		Name:     t.Name,
		Loc:      t.Loc,
		Passed:   !ctx.Failed(),
		Duration: elapsed,
		Failures: ctx.Failures(),
	}

	if result.Passed {
		e.console.OK(t.Name, elapsed)
	} else {
		e.console.Failed(t.Name, elapsed)
	}

	return result
}

// runBody invokes the body and contains anything it panics with: an error
// value is recorded with its own message, anything else as an unknown error.
func runBody(body func(), ctx *TestContext, loc Location) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if err, ok := r.(error); ok {
			ctx.RecordFailure(loc, err.Error())

			return
		}

		ctx.RecordFailure(loc, fmt.Sprintf("unknown error: %v", r))
	}()

	body()
}

// Summarize derives the aggregate counters and failed-name list from a
// result sequence. Elapsed is left for the caller, which owns the clock.
func Summarize(results []TestResult) Summary {
	var sum Summary

	for _, r := range results {
		switch {
		case r.Skipped:
			sum.Skipped++
		case r.Passed:
			sum.Ran++
			sum.Passed++
		default:
			sum.Ran++
			sum.Failed++
			sum.FailedNames = append(sum.FailedNames, r.Name)
		}
	}

	return sum
}

// ExitCode maps a summary to the process exit status: non-zero iff any
// selected test failed.
func ExitCode(sum Summary) int {
	if sum.Failed > 0 {
		return 1
	}

	return 0
}

package core

import (
	"fmt"
	"io"
	"sync"
)

// TestContext is the failure ledger for a single test execution. The Engine
// creates one context per running test, installs it as the current context
// before the body runs, and detaches it afterward to build the TestResult.
// Expectations and mocks report into the current context, so assertion call
// sites deep inside arbitrary call stacks need no explicit threading.
type TestContext struct {
	failed   bool
	failures []string
	out      io.Writer
}

// newTestContext creates an empty ledger whose failure records are echoed to
// the given console failure stream.
func newTestContext(out io.Writer) *TestContext {
	return &TestContext{out: out}
}

// RecordFailure appends a location-prefixed failure record and marks the
// context failed. The record is also written to the console failure stream.
func (c *TestContext) RecordFailure(loc Location, msg string) {
	record := fmt.Sprintf("%s: error: %s", loc, msg)

	c.failures = append(c.failures, record)
	c.failed = true

	fmt.Fprintln(c.out, record)
}

// Failed reports whether any failure has been recorded.
func (c *TestContext) Failed() bool {
	return c.failed
}

// Failures returns the recorded failure messages in order.
func (c *TestContext) Failures() []string {
	out := make([]string, len(c.failures))
	copy(out, c.failures)

	return out
}

// CurrentContext returns the ledger of the currently running test. It panics
// when no test is running: an expectation evaluated outside a test body has
// nowhere to report, and silently dropping it would hide real failures.
func CurrentContext() *TestContext {
	currentMu.Lock()
	defer currentMu.Unlock()

	if current == nil {
		panic("mtest: no test is running; expectations are only valid inside a test body")
	}

	return current
}

// installContext makes ctx the current failure ledger. Ownership of the
// current context is time-sliced: exactly one test owns it between its
// install and clear, and the Engine is the sole writer of that boundary.
func installContext(ctx *TestContext) {
	currentMu.Lock()
	defer currentMu.Unlock()

	current = ctx
}

// clearContext detaches the current failure ledger.
func clearContext() {
	currentMu.Lock()
	defer currentMu.Unlock()

	current = nil
}

// unexported variables.
var (
	//nolint:gochecknoglobals // The current-context pointer is the one piece
	// of package state that keeps assertion call sites ergonomic.
	current *TestContext
	//nolint:gochecknoglobals // Mutex for current
	currentMu sync.Mutex
)

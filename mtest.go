// Package mtest is a self-contained unit-test framework: declarative test
// registration, fluent assertions, call-recording mocks, glob-based test
// filtering, and gtest-compatible console and JUnit XML reporting, so test
// binaries drop into existing CI pipelines unchanged.
//
// Tests self-register from package-level var declarations:
//
//	var _ = mtest.Test("Math works", func() {
//	    mtest.Expect(1 + 1).ToEqual(2)
//	})
//
//	func main() { os.Exit(mtest.Main()) }
//
// This is the public API entry point. Implementation lives in internal/core.
package mtest

import (
	"runtime"

	"github.com/toejough/mtest/internal/core"
)

// TestCase is one declared test.
type TestCase = core.TestCase

// TestResult is the outcome of one selected test.
type TestResult = core.TestResult

// Summary aggregates a result sequence.
type Summary = core.Summary

// Options configures a run.
type Options = core.Options

// Expectation evaluates assertions against one captured value.
type Expectation[T any] = core.Expectation[T]

// Mock records calls to a function of type F, optionally delegating to a
// real implementation.
type Mock[F any] = core.Mock[F]

// DefaultSuiteName is the suite tests are reported under.
const DefaultSuiteName = core.DefaultSuiteName

// Test registers a test that runs unless another test is marked Only. The
// call site's source location is captured for reporting. The bool return
// exists so registration works as a package-level var declaration;
// declaration order within a file is run order.
func Test(name string, body func()) bool {
	register(name, body, core.StatusNormal)

	return true
}

// SkipTest registers a test that is always reported skipped.
func SkipTest(name string, body func()) bool {
	register(name, body, core.StatusSkip)

	return true
}

// OnlyTest registers a test that runs exclusively: when any Only test
// exists, every plain Test is reported skipped for that run.
func OnlyTest(name string, body func()) bool {
	register(name, body, core.StatusOnly)

	return true
}

// Expect captures a value and the expectation call site, ready for a
// matcher. Valid only inside a running test body.
func Expect[T any](value T) *Expectation[T] {
	return core.NewExpectation(value, callerLocation())
}

// NewMock builds a mock for the function type F, with an optional delegate.
func NewMock[F any](delegate ...F) *Mock[F] {
	return core.NewMock(delegate...)
}

// Run executes the registered tests with the given options and returns the
// results and their summary.
func Run(opts Options) ([]TestResult, Summary) {
	return core.NewEngine(core.DefaultRegistry(), opts).Run()
}

// register appends to the default registry with the caller's caller as the
// recorded location.
func register(name string, body func(), status core.Status) {
	_, file, line, _ := runtime.Caller(2)

	core.DefaultRegistry().Register(name, body, status, core.Location{File: file, Line: line})
}

func callerLocation() core.Location {
	_, file, line, _ := runtime.Caller(2)

	return core.Location{File: file, Line: line}
}

package core

import (
	"io"
	"os"
)

// Options configures a run. The CLI layer fills it from flags; WithEnv fills
// whatever the flags left unset from gtest-compatible environment variables.
type Options struct {
	// Filter is the glob-like pattern selecting which tests run. Empty
	// selects everything.
	Filter string
	// XMLPath, when non-empty, is where the JUnit-style XML report is
	// written after the run.
	XMLPath string
	// Color enables ANSI color in console output.
	Color bool
	// ListOnly prints the test list and exits without running.
	ListOnly bool
	// SuiteName is the fixed grouping name used for "<suite>.<name>"
	// filtering, list output, and XML reporting.
	SuiteName string
	// Out receives all console output.
	Out io.Writer
}

// DefaultOptions returns the options used when no flags are given: every
// test selected, color on, console output to stdout.
func DefaultOptions() Options {
	return Options{
		Color:     true,
		SuiteName: DefaultSuiteName,
		Out:       os.Stdout,
	}
}

// WithEnv returns a copy of the options with unset fields filled from the
// environment: MT_FILTER / GTEST_FILTER seed the filter, and MT_COLOR /
// GTEST_COLOR set to "no" disable color. Explicit flag values win.
func (o Options) WithEnv(getenv func(string) string) Options {
	if o.Filter == "" {
		o.Filter = firstNonEmpty(getenv("MT_FILTER"), getenv("GTEST_FILTER"))
	}

	if colorVar := firstNonEmpty(getenv("MT_COLOR"), getenv("GTEST_COLOR")); colorVar == "no" {
		o.Color = false
	}

	return o
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

package core_test

import (
	"bytes"

	"github.com/toejough/mtest/internal/core"
)

// runTests executes the given test cases through a fresh registry and engine
// with color disabled, returning the results, summary, and console output.
func runTests(opts core.Options, tests ...core.TestCase) ([]core.TestResult, core.Summary, string) {
	reg := core.NewRegistry()
	for _, tc := range tests {
		reg.Register(tc.Name, tc.Body, tc.Status, tc.Loc)
	}

	var buf bytes.Buffer

	opts.Out = &buf
	if opts.SuiteName == "" {
		opts.SuiteName = core.DefaultSuiteName
	}

	results, sum := core.NewEngine(reg, opts).Run()

	return results, sum, buf.String()
}

// runOneBody runs a single Normal test body and returns its result.
func runOneBody(body func()) core.TestResult {
	results, _, _ := runTests(core.Options{}, core.TestCase{Name: "single", Body: body})

	return results[0]
}

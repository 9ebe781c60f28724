package core

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// Console renders gtest-style progress lines and the end-of-run summary.
type Console struct {
	out    io.Writer
	green  *color.Color
	red    *color.Color
	yellow *color.Color
}

// Tag columns match the runner conventions CI log scrapers key on.
const (
	tagRun     = "[ RUN      ]"
	tagOK      = "[       OK ]"
	tagFailed  = "[   FAILED ]"
	tagSkipped = "[ SKIPPED  ]"
	tagBar     = "[==========]"
	tagPassed  = "[  PASSED  ]"
)

// NewConsole creates a console reporter writing to out. With enabled false,
// every line is rendered without ANSI color.
func NewConsole(out io.Writer, enabled bool) *Console {
	c := &Console{
		out:    out,
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
	}

	if !enabled {
		c.green.DisableColor()
		c.red.DisableColor()
		c.yellow.DisableColor()
	}

	return c
}

// Banner announces the start of a run over n selected tests.
func (c *Console) Banner(n int) {
	c.green.Fprint(c.out, tagBar)
	fmt.Fprintf(c.out, " Running %s.\n", pluralTests(n))
}

// Run announces that a test body is about to execute.
func (c *Console) Run(name string) {
	c.green.Fprint(c.out, tagRun)
	fmt.Fprintf(c.out, " %s\n", name)
}

// OK reports a passed test with its duration.
func (c *Console) OK(name string, d time.Duration) {
	c.green.Fprint(c.out, tagOK)
	fmt.Fprintf(c.out, " %s (%dms)\n", name, d.Milliseconds())
}

// Failed reports a failed test with its duration.
func (c *Console) Failed(name string, d time.Duration) {
	c.red.Fprint(c.out, tagFailed)
	fmt.Fprintf(c.out, " %s (%dms)\n", name, d.Milliseconds())
}

// Skipped reports a skipped test. Skipped tests carry no timing.
func (c *Console) Skipped(name string) {
	c.yellow.Fprint(c.out, tagSkipped)
	fmt.Fprintf(c.out, " %s\n", name)
}

// Summary renders the end-of-run totals: run count and elapsed time, passed
// count, skipped count when any, and the failed count with failed names.
func (c *Console) Summary(sum Summary) {
	fmt.Fprintln(c.out)
	c.green.Fprint(c.out, tagBar)
	fmt.Fprintf(c.out, " %s ran. (%dms total)\n", pluralTests(sum.Ran), sum.Elapsed.Milliseconds())

	c.green.Fprint(c.out, tagPassed)
	fmt.Fprintf(c.out, " %s.\n", pluralTests(sum.Passed))

	if sum.Skipped > 0 {
		c.yellow.Fprint(c.out, tagSkipped)
		fmt.Fprintf(c.out, " %s.\n", pluralTests(sum.Skipped))
	}

	if sum.Failed > 0 {
		c.red.Fprint(c.out, tagFailed)
		fmt.Fprintf(c.out, " %s, listed below:\n", pluralTests(sum.Failed))

		for _, name := range sum.FailedNames {
			c.red.Fprint(c.out, tagFailed)
			fmt.Fprintf(c.out, " %s\n", name)
		}
	}
}

// List prints the suite header followed by each test name indented two
// spaces, one per line.
func (c *Console) List(suite string, tests []TestCase) {
	fmt.Fprintf(c.out, "%s.\n", suite)

	for _, t := range tests {
		fmt.Fprintf(c.out, "  %s\n", t.Name)
	}
}

func pluralTests(n int) string {
	if n == 1 {
		return "1 test"
	}

	return fmt.Sprintf("%d tests", n)
}

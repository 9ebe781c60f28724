package mtest

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toejough/mtest/internal/core"
)

// Main parses os.Args, runs the registered tests, and returns the process
// exit code: 0 for help/list modes or an all-green run, 1 when any selected
// test failed. Test binaries wire it up as:
//
//	func main() { os.Exit(mtest.Main()) }
func Main() int {
	if os.Args == nil {
		return 0
	}

	return MainWithArgs(os.Args[1:], os.Getenv, os.Stdout)
}

// MainWithArgs is Main with the argument list, environment lookup, and
// output stream injected.
func MainWithArgs(args []string, getenv func(string) string, out io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}

	var (
		mtFilter, gtFilter string
		mtOutput, gtOutput string
		gtColor            string
		noColor            bool
		mtList, gtList     bool
	)

	exit := 0

	cmd := &cobra.Command{
		Use:           "mtest",
		Short:         "Run the tests registered in this binary.",
		Long:          "Run the tests registered in this binary.\n\nFlags follow gtest conventions; each gtest_* flag has an mt_* synonym.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts := core.DefaultOptions()
			opts.Out = out
			opts.Filter = firstOf(mtFilter, gtFilter)
			opts.XMLPath = xmlTarget(firstOf(mtOutput, gtOutput))
			opts = opts.WithEnv(getenv)

			// Explicit color flags win over the environment.
			switch {
			case noColor || gtColor == "no":
				opts.Color = false
			case gtColor == "yes":
				opts.Color = true
			}

			if mtList || gtList {
				core.NewEngine(core.DefaultRegistry(), opts).List()

				return nil
			}

			_, sum := Run(opts)
			exit = core.ExitCode(sum)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&mtFilter, "mt_filter", "", "glob pattern selecting which tests run")
	flags.StringVar(&gtFilter, "gtest_filter", "", "synonym for --mt_filter")
	flags.StringVar(&mtOutput, "mt_output", "", "write results as XML: xml:FILE")
	flags.StringVar(&gtOutput, "gtest_output", "", "synonym for --mt_output")
	flags.BoolVar(&noColor, "mt_no_color", false, "disable ANSI color in console output")
	flags.StringVar(&gtColor, "gtest_color", "", `"no" disables ANSI color, "yes" forces it on`)
	flags.BoolVar(&mtList, "mt_list_tests", false, "list test names and exit without running")
	flags.BoolVar(&gtList, "gtest_list_tests", false, "synonym for --mt_list_tests")

	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)

		return 1
	}

	return exit
}

// xmlTarget extracts the file path from gtest's "xml:FILE" output syntax. A
// bare path without the prefix is accepted as-is.
func xmlTarget(value string) string {
	if path, found := strings.CutPrefix(value, "xml:"); found {
		return path
	}

	return value
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

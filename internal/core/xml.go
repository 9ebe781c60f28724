package core

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// WriteXML renders the result sequence as a JUnit-style XML document. The
// layout is built by hand rather than with encoding/xml because CI consumers
// expect passed testcases as self-closed elements, which encoding/xml cannot
// emit.
func WriteXML(w io.Writer, suite string, results []TestResult, elapsed time.Duration) error {
	sum := Summarize(results)

	total := len(results)
	seconds := fmt.Sprintf("%.3f", elapsed.Seconds())

	var b strings.Builder

	fmt.Fprintf(&b, "<testsuites tests=\"%d\" failures=\"%d\" skipped=\"%d\" time=\"%s\">\n",
		total, sum.Failed, sum.Skipped, seconds)
	fmt.Fprintf(&b, "  <testsuite name=\"%s\" tests=\"%d\" failures=\"%d\" skipped=\"%d\" time=\"%s\">\n",
		escapeXML(suite), total, sum.Failed, sum.Skipped, seconds)

	for _, r := range results {
		open := fmt.Sprintf("<testcase name=\"%s\" file=\"%s\" line=\"%d\" time=\"%.3f\"",
			escapeXML(r.Name), escapeXML(r.Loc.File), r.Loc.Line, r.Duration.Seconds())

		switch {
		case r.Skipped:
			fmt.Fprintf(&b, "    %s>\n      <skipped/>\n    </testcase>\n", open)
		case r.Passed:
			fmt.Fprintf(&b, "    %s/>\n", open)
		default:
			fmt.Fprintf(&b, "    %s>\n", open)

			for _, msg := range r.Failures {
				fmt.Fprintf(&b, "      <failure message=\"%s\"/>\n", escapeXML(msg))
			}

			fmt.Fprintf(&b, "    </testcase>\n")
		}
	}

	fmt.Fprintf(&b, "  </testsuite>\n</testsuites>\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write XML report: %w", err)
	}

	return nil
}

// WriteXMLFile writes the XML report to the given path. A path that cannot
// be opened or written is skipped silently: a missing report must not turn a
// green run red.
func WriteXMLFile(path, suite string, results []TestResult, elapsed time.Duration) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()

	_ = WriteXML(f, suite, results, elapsed)
}

// escapeXML entity-escapes the five characters that are unsafe inside XML
// attribute values.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

//nolint:gochecknoglobals // Shared replacer; strings.Replacer is safe for concurrent use
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

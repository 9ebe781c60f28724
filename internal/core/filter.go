package core

import (
	"regexp"
	"strings"
)

// DefaultSuiteName is the fixed logical grouping name under which all tests
// in a run are reported. It exists for compatibility with CI tooling that
// expects the two-part "<suite>.<test>" naming convention.
const DefaultSuiteName = "MTest"

// Matches reports whether the glob-like pattern selects the candidate name.
// An empty pattern matches everything. `*` matches zero or more characters
// and `?` matches exactly one; all other characters match literally. The
// match is case-insensitive and unanchored, so a pattern that names any
// substring of the candidate selects it.
func Matches(pattern, name string) bool {
	if pattern == "" {
		return true
	}

	re, err := regexp.Compile(translatePattern(pattern))
	if err != nil {
		// A malformed pattern must never surface an error to the caller;
		// fall back to plain substring containment.
		return strings.Contains(name, pattern)
	}

	return re.MatchString(name)
}

// Selects reports whether the pattern selects a test, matching either its
// bare name or the composite "<suite>.<name>" form.
func Selects(pattern, suite, name string) bool {
	return Matches(pattern, name) || Matches(pattern, suite+"."+name)
}

// translatePattern converts a glob-like pattern into a case-insensitive
// regular expression source, escaping everything except the two wildcards.
func translatePattern(pattern string) string {
	var b strings.Builder

	b.WriteString("(?i)")

	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}

	return b.String()
}

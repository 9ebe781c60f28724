package mtest_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/mtest"
	"github.com/toejough/mtest/internal/core"
)

// Probe tests registered the way user test binaries register them: from
// package-level var declarations. The CLI tests below address them through
// filters so they never collide.
var registered = mtest.Test("probe: passing", func() {
	mtest.Expect(1 + 1).ToEqual(2)
})

var _ = mtest.Test("probe: failing", func() {
	mtest.Expect(4).ToEqual(5)
})

var _ = mtest.SkipTest("probe: skipped", func() {})

func noEnv(string) string { return "" }

// TestRegistration_CapturesNameStatusAndLocation verifies the declarative
// surface: the bool return, declaration-order registration, and automatic
// source-location capture.
func TestRegistration_CapturesNameStatusAndLocation(t *testing.T) {
	g := NewWithT(t)

	g.Expect(registered).To(BeTrue())

	var passing, skipped *core.TestCase

	for _, tc := range core.DefaultRegistry().All() {
		switch tc.Name {
		case "probe: passing":
			passing = &tc
		case "probe: skipped":
			skipped = &tc
		}
	}

	g.Expect(passing).NotTo(BeNil())
	g.Expect(passing.Status).To(Equal(core.StatusNormal))
	g.Expect(passing.Loc.File).To(ContainSubstring("mtest_test.go"))
	g.Expect(passing.Loc.Line).To(BeNumerically(">", 0))

	g.Expect(skipped).NotTo(BeNil())
	g.Expect(skipped.Status).To(Equal(core.StatusSkip))
}

// TestMain_PassingRun verifies a filtered all-green run exits 0.
func TestMain_PassingRun(t *testing.T) {
	g := NewWithT(t)

	var out bytes.Buffer

	code := mtest.MainWithArgs([]string{"--mt_filter=probe: passing"}, noEnv, &out)

	g.Expect(code).To(Equal(0))
	g.Expect(out.String()).To(ContainSubstring("[ RUN      ] probe: passing"))
	g.Expect(out.String()).To(ContainSubstring("[       OK ] probe: passing"))
}

// TestMain_FailingRun verifies a failing run exits 1 and reports both
// operands of the failed equality.
func TestMain_FailingRun(t *testing.T) {
	g := NewWithT(t)

	var out bytes.Buffer

	code := mtest.MainWithArgs([]string{"--gtest_filter=probe: failing"}, noEnv, &out)

	g.Expect(code).To(Equal(1))
	g.Expect(out.String()).To(ContainSubstring("[   FAILED ] probe: failing"))
	g.Expect(out.String()).To(ContainSubstring("4"))
	g.Expect(out.String()).To(ContainSubstring("5"))
}

// TestMain_ListTests verifies list mode prints the suite header and the
// selected names without running anything, and exits 0.
func TestMain_ListTests(t *testing.T) {
	g := NewWithT(t)

	var out bytes.Buffer

	code := mtest.MainWithArgs(
		[]string{"--gtest_list_tests", "--gtest_filter=probe: *"}, noEnv, &out)

	g.Expect(code).To(Equal(0))
	g.Expect(strings.HasPrefix(out.String(), "MTest.\n")).To(BeTrue())
	g.Expect(out.String()).To(ContainSubstring("  probe: passing\n"))
	g.Expect(out.String()).To(ContainSubstring("  probe: failing\n"))
	g.Expect(out.String()).NotTo(ContainSubstring("[ RUN"))
}

// TestMain_Help verifies --help prints usage and exits 0 without running.
func TestMain_Help(t *testing.T) {
	g := NewWithT(t)

	var out bytes.Buffer

	code := mtest.MainWithArgs([]string{"--help"}, noEnv, &out)

	g.Expect(code).To(Equal(0))
	g.Expect(out.String()).To(ContainSubstring("mt_filter"))
	g.Expect(out.String()).NotTo(ContainSubstring("[ RUN"))
}

// TestMain_XMLOutput verifies --gtest_output=xml:FILE writes the report.
func TestMain_XMLOutput(t *testing.T) {
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "report.xml")

	var out bytes.Buffer

	code := mtest.MainWithArgs(
		[]string{"--mt_filter=probe: passing", "--gtest_output=xml:" + path}, noEnv, &out)

	g.Expect(code).To(Equal(0))

	data, err := os.ReadFile(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(data)).To(ContainSubstring(`<testsuites tests="1" failures="0"`))
	g.Expect(string(data)).To(ContainSubstring(`name="probe: passing"`))
}

// TestMain_EnvFilter verifies GTEST_FILTER seeds the filter when no flag is
// given.
func TestMain_EnvFilter(t *testing.T) {
	g := NewWithT(t)

	env := func(key string) string {
		if key == "GTEST_FILTER" {
			return "probe: passing"
		}

		return ""
	}

	var out bytes.Buffer

	code := mtest.MainWithArgs(nil, env, &out)

	g.Expect(code).To(Equal(0))
	g.Expect(out.String()).To(ContainSubstring("[       OK ] probe: passing"))
	g.Expect(out.String()).NotTo(ContainSubstring("probe: failing"))
}

// TestMock_FacadeConstruction verifies the facade mock constructor and the
// call-count matcher work end to end through a real run.
func TestMock_FacadeConstruction(t *testing.T) {
	g := NewWithT(t)

	m := mtest.NewMock(func(x int) int { return x * x })

	g.Expect(m.Fn(10)).To(Equal(100))
	g.Expect(m.CallCount()).To(Equal(1))
	g.Expect(m.Calls()).To(Equal([][]any{{10}}))
}

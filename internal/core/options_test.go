package core_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/mtest/internal/core"
)

func envFrom(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

// TestWithEnv_FilterFallback verifies MT_FILTER and GTEST_FILTER seed the
// filter only when no flag set one, with MT_FILTER taking precedence.
func TestWithEnv_FilterFallback(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	opts := core.DefaultOptions()

	fromEnv := opts.WithEnv(envFrom(map[string]string{"GTEST_FILTER": "Math*"}))
	g.Expect(fromEnv.Filter).To(Equal("Math*"))

	both := opts.WithEnv(envFrom(map[string]string{"MT_FILTER": "Vector*", "GTEST_FILTER": "Math*"}))
	g.Expect(both.Filter).To(Equal("Vector*"))

	opts.Filter = "FromFlag"
	flagged := opts.WithEnv(envFrom(map[string]string{"GTEST_FILTER": "Math*"}))
	g.Expect(flagged.Filter).To(Equal("FromFlag"))
}

// TestWithEnv_ColorDisable verifies GTEST_COLOR=no disables color and other
// values leave it alone.
func TestWithEnv_ColorDisable(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	opts := core.DefaultOptions()

	g.Expect(opts.WithEnv(envFrom(map[string]string{"GTEST_COLOR": "no"})).Color).To(BeFalse())
	g.Expect(opts.WithEnv(envFrom(map[string]string{"MT_COLOR": "no"})).Color).To(BeFalse())
	g.Expect(opts.WithEnv(envFrom(map[string]string{"GTEST_COLOR": "yes"})).Color).To(BeTrue())
	g.Expect(opts.WithEnv(envFrom(nil)).Color).To(BeTrue())
}

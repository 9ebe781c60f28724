// Package core provides the internal implementation of mtest's registry,
// expectation, mock, and execution infrastructure.
package core

import (
	"fmt"
	"sync"
)

// Status classifies how a registered test participates in a run.
type Status int

const (
	// StatusNormal tests run unless another test is marked Only.
	StatusNormal Status = iota
	// StatusSkip tests never run.
	StatusSkip
	// StatusOnly tests run exclusively: when any exist, every Normal test
	// is reported as skipped.
	StatusOnly
)

// Location is a source position captured at a registration or expectation
// call site.
type Location struct {
	File string
	Line int
}

// String renders the location in the conventional file:line form.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// TestCase is one declared test. Immutable after registration.
type TestCase struct {
	Name   string
	Body   func()
	Status Status
	Loc    Location
}

// Registry holds declared tests in declaration order. It is populated during
// a single-threaded startup phase and read-only afterward; the mutex guards
// against misuse rather than enabling a concurrent registration model.
type Registry struct {
	mu    sync.Mutex
	tests []TestCase
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a test case. There is no removal operation.
func (r *Registry) Register(name string, body func(), status Status, loc Location) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tests = append(r.tests, TestCase{Name: name, Body: body, Status: status, Loc: loc})
}

// All returns the registered tests in declaration order. The returned slice
// is a copy; callers cannot mutate the registry through it.
func (r *Registry) All() []TestCase {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]TestCase, len(r.tests))
	copy(out, r.tests)

	return out
}

// Len returns the number of registered tests.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.tests)
}

// DefaultRegistry returns the process-wide registry that the package-level
// registration functions append to.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

//nolint:gochecknoglobals // Tests self-register from package-level var declarations before main runs
var defaultRegistry = NewRegistry()

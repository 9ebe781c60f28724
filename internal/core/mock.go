package core

import (
	"reflect"
)

// Mock records calls to a function of type F, optionally delegating to a
// real implementation. Fn is the typed callable to hand to code under test;
// every invocation appends a snapshot of its arguments to the call ledger,
// then returns the delegate's result, or zero values when no delegate is
// set. Calls accumulate monotonically; recreate the mock to reset them.
//
// A Mock is only valid when invoked from a single test body in sequence.
type Mock[F any] struct {
	// Fn is the recording callable, with the exact signature F.
	Fn F

	fnType   reflect.Type
	delegate reflect.Value
	calls    [][]any
}

// NewMock builds a mock for the function type F. At most one delegate may be
// given; with none, invocations return zero values.
//
//	m := NewMock(func(x int) int { return x * x }) // F inferred
//	m := NewMock[func(int) int]()                  // no delegate
func NewMock[F any](delegate ...F) *Mock[F] {
	fnType := reflect.TypeOf((*F)(nil)).Elem()
	if fnType.Kind() != reflect.Func {
		panic("mtest: mock signature must be a function type")
	}

	m := &Mock[F]{fnType: fnType}

	if len(delegate) > 0 {
		dv := reflect.ValueOf(delegate[0])
		if dv.IsValid() && !dv.IsNil() {
			m.delegate = dv
		}
	}

	m.Fn = reflect.MakeFunc(fnType, m.invoke).Interface().(F)

	return m
}

// CallCount returns the number of recorded invocations.
func (m *Mock[F]) CallCount() int {
	return len(m.calls)
}

// Calls returns the recorded argument tuples in invocation order. The outer
// slice is a copy; the snapshots themselves are shared.
func (m *Mock[F]) Calls() [][]any {
	out := make([][]any, len(m.calls))
	copy(out, m.calls)

	return out
}

// invoke is the reflect.MakeFunc body: snapshot the arguments, then delegate
// or synthesize zero returns.
func (m *Mock[F]) invoke(args []reflect.Value) []reflect.Value {
	snapshot := make([]any, len(args))
	for i, arg := range args {
		snapshot[i] = arg.Interface()
	}

	m.calls = append(m.calls, snapshot)

	if m.delegate.IsValid() {
		// MakeFunc hands variadic arguments over as a trailing slice, so a
		// variadic delegate must be invoked through CallSlice.
		if m.fnType.IsVariadic() {
			return m.delegate.CallSlice(args)
		}

		return m.delegate.Call(args)
	}

	out := make([]reflect.Value, m.fnType.NumOut())
	for i := range m.fnType.NumOut() {
		out[i] = reflect.New(m.fnType.Out(i)).Elem()
	}

	return out
}

package core

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/akedrou/textdiff"
)

// Expectation evaluates assertions against one captured value. Not() toggles
// an inversion flag and is chainable; each terminal matcher call is an
// independent evaluation. Failures are reported into the currently running
// test's ledger.
type Expectation[T any] struct {
	val      T
	loc      Location
	inverted bool
}

// NewExpectation captures a value and the source location of the expectation
// call site.
func NewExpectation[T any](val T, loc Location) *Expectation[T] {
	return &Expectation[T]{val: val, loc: loc}
}

// Not toggles the inversion flag. Applying it twice restores the original
// polarity.
func (e *Expectation[T]) Not() *Expectation[T] {
	e.inverted = !e.inverted

	return e
}

// ToEqual asserts the captured value equals rhs (deep equality).
func (e *Expectation[T]) ToEqual(rhs T) {
	e.check("==", rhs, reflect.DeepEqual(e.val, rhs))
}

// ToNotEqual asserts the captured value differs from rhs (deep equality).
func (e *Expectation[T]) ToNotEqual(rhs T) {
	e.check("!=", rhs, !reflect.DeepEqual(e.val, rhs))
}

// ToBeGreaterThan asserts the captured value orders strictly after rhs.
// Supported for integer, unsigned, float, and string values.
func (e *Expectation[T]) ToBeGreaterThan(rhs T) {
	cmp, ok := compareOrdered(e.val, rhs)
	if !ok {
		e.misuse(fmt.Sprintf("values of type %T cannot be ordered", e.val))

		return
	}

	e.check(">", rhs, cmp > 0)
}

// ToBeLessThan asserts the captured value orders strictly before rhs.
// Supported for integer, unsigned, float, and string values.
func (e *Expectation[T]) ToBeLessThan(rhs T) {
	cmp, ok := compareOrdered(e.val, rhs)
	if !ok {
		e.misuse(fmt.Sprintf("values of type %T cannot be ordered", e.val))

		return
	}

	e.check("<", rhs, cmp < 0)
}

// ToContain asserts the captured container holds the given element: deep
// element equality for slices and arrays, value equality for maps, and
// substring containment for strings.
func (e *Expectation[T]) ToContain(element any) {
	found, ok := contains(e.val, element)
	if !ok {
		e.misuse(fmt.Sprintf("values of type %T are not containers", e.val))

		return
	}

	if found == e.inverted {
		verb := "to contain"
		if e.inverted {
			verb = "not to contain"
		}

		e.fail(fmt.Sprintf("expected [%v] %s [%v]", e.val, verb, element))
	}
}

// ToBeEmpty asserts the captured value reports a length of zero. Supported
// for slices, arrays, maps, strings, and channels.
func (e *Expectation[T]) ToBeEmpty() {
	rv := reflect.ValueOf(e.val)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
	default:
		e.misuse(fmt.Sprintf("values of type %T have no emptiness query", e.val))

		return
	}

	empty := rv.Len() == 0
	if empty == e.inverted {
		verb := "to be empty"
		if e.inverted {
			verb = "not to be empty"
		}

		e.fail(fmt.Sprintf("expected [%v] %s", e.val, verb))
	}
}

// ToHaveBeenCalledTimes asserts the captured mock records exactly n calls.
// The captured value must expose the mock's call ledger; anything else is
// reported as a failure rather than a silent pass.
func (e *Expectation[T]) ToHaveBeenCalledTimes(n int) {
	rec, ok := any(e.val).(callRecorder)
	if !ok {
		e.misuse(fmt.Sprintf("values of type %T do not record calls", e.val))

		return
	}

	actual := rec.CallCount()

	raw := actual == n
	if raw == e.inverted {
		verb := "to have been called"
		if e.inverted {
			verb = "not to have been called"
		}

		e.fail(fmt.Sprintf("expected mock %s %d times, actual call count: %d", verb, n, actual))
	}
}

// callRecorder is the call-ledger shape that ToHaveBeenCalledTimes requires.
// Mock satisfies it; so does any hand-rolled recorder.
type callRecorder interface {
	CallCount() int
}

// check applies the inversion flag to a raw binary-comparison result and
// reports a failure when the final result is false.
func (e *Expectation[T]) check(op string, rhs T, raw bool) {
	passed := raw != e.inverted
	if passed {
		return
	}

	not := ""
	if e.inverted {
		not = "not "
	}

	msg := fmt.Sprintf("expected %s[%v] %s [%v]", not, e.val, op, rhs)
	if op == "==" && !e.inverted {
		msg += diffSuffix(e.val, rhs)
	}

	e.fail(msg)
}

// misuse reports a matcher applied to a value that cannot support it. It
// ignores the inversion flag: a type error is a failure either way.
func (e *Expectation[T]) misuse(msg string) {
	e.fail(msg)
}

func (e *Expectation[T]) fail(msg string) {
	CurrentContext().RecordFailure(e.loc, msg)
}

// diffSuffix renders a unified diff when both sides of a failed equality are
// multi-line strings, where the bracketed one-line form is unreadable.
func diffSuffix(val, rhs any) string {
	got, gotOK := val.(string)
	want, wantOK := rhs.(string)

	if !gotOK || !wantOK || !strings.Contains(got, "\n") || !strings.Contains(want, "\n") {
		return ""
	}

	return "\n" + textdiff.Unified("expected", "actual", want, got)
}

// compareOrdered compares two values of the same ordered kind, returning a
// negative, zero, or positive result. The second return is false when the
// values cannot be ordered.
func compareOrdered(a, b any) (int, bool) {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() != bv.Kind() {
		return 0, false
	}

	switch av.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmpValues(av.Int(), bv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmpValues(av.Uint(), bv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return cmpValues(av.Float(), bv.Float()), true
	case reflect.String:
		return cmpValues(av.String(), bv.String()), true
	default:
		return 0, false
	}
}

func cmpValues[V int64 | uint64 | float64 | string](a, b V) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// contains reports whether container holds element. The second return is
// false when the value is not a supported container kind.
func contains(container, element any) (found, ok bool) {
	rv := reflect.ValueOf(container)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if reflect.DeepEqual(rv.Index(i).Interface(), element) {
				return true, true
			}
		}

		return false, true
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if reflect.DeepEqual(iter.Value().Interface(), element) {
				return true, true
			}
		}

		return false, true
	case reflect.String:
		sub, isString := element.(string)
		if !isString {
			return false, false
		}

		return strings.Contains(rv.String(), sub), true
	default:
		return false, false
	}
}

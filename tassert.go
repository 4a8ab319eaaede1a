// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// assertErr is the format-string for assertion errors.
const assertErr = "assert %s:\n%v"

// Not implements negations of [T]-assertions, e.g. [Not.True].  Negated
// assertions can be accessed through [T]'s Not field.
type Not struct{ t *T }

// silently evaluates given assertion without reporting its failure.
func (n Not) silently(assertion func() bool) bool {
	errorer := n.t.errorer
	n.t.errorer = func(...interface{}) {}
	defer func() { n.t.errorer = errorer }()
	return assertion()
}

// trueErr default message for failed 'true'-assertion.
const trueErr = "expected given value to be true"

// True fails the test and returns false iff given value is not true;
// otherwise true is returned.
func (t *T) True(value bool) bool {
	t.t.Helper()
	if !value {
		t.Errorf(assertErr, "true", trueErr)
		return false
	}
	return true
}

// falseErr default message for failed 'false'-assertion.
const falseErr = "expected given value to be false"

// False fails the test and returns false iff given value is not false;
// otherwise true is returned.
func (t *T) False(value bool) bool {
	t.t.Helper()
	if value {
		t.Errorf(assertErr, "false", falseErr)
		return false
	}
	return true
}

// TODO fails a test logging "not implemented yet".
func (t *T) TODO() bool {
	t.t.Helper()
	t.Error("not implemented yet")
	return false
}

const eqTypeErr = "types mismatch %v != %v"

// Eq fails the test with a diff if possible and returns false if given
// values are not considered equal; otherwise true is returned.  a and b
// are considered equal if they are of the same type or one of them is
// a string while the other one is a Stringer implementation and
//   - a == b in case of two pointers
//   - a.String() == b.String() in case of Stringer implementations
//   - fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b) in other cases.
func (t *T) Eq(a, b interface{}) bool {
	t.t.Helper()
	if diff, equal := eqDiff(a, b); !equal {
		t.Errorf(assertErr, "equal", diff)
		return false
	}
	return true
}

// Eq negation passes if called [T.Eq] assertion with given arguments
// fails; otherwise it fails.
func (n Not) Eq(a, b interface{}) bool {
	n.t.t.Helper()
	if n.silently(func() bool { return n.t.Eq(a, b) }) {
		n.t.Errorf(assertErr, "not-equal", fmt.Sprintf(
			"%s == %s", toString(a), toString(b)))
		return false
	}
	return true
}

func eqDiff(a, b interface{}) (string, bool) {
	ta, tb := fmt.Sprintf("%T", a), fmt.Sprintf("%T", b)
	if ta != tb && !isStringers(a, b) {
		return fmt.Sprintf(eqTypeErr, ta, tb), false
	}
	if ta == tb && reflect.ValueOf(a).Kind() == reflect.Ptr {
		if a != b {
			return fmt.Sprintf("%p != %p", a, b), false
		}
		return "", true
	}
	sa, sb := toString(a), toString(b)
	if sa == sb {
		return "", true
	}
	return cmp.Diff(sa, sb), false
}

// isStringers is true if a and b are both Stringer or one is a Stringer
// and the other a string.
func isStringers(a, b interface{}) bool {
	_, okA := a.(fmt.Stringer)
	_, okB := b.(fmt.Stringer)
	switch {
	case okA && okB:
		return true
	case okA:
		_, ok := b.(string)
		return ok
	case okB:
		_, ok := a.(string)
		return ok
	}
	return false
}

// StringRepresentation documents what a string representation of any
// type is:
//   - the string if it is of type string,
//   - the return value of String if the Stringer interface is
//     implemented,
//   - fmt.Sprintf("%v", value) in all other cases.
type StringRepresentation interface{}

func toString(value StringRepresentation) string {
	switch value := value.(type) {
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}

// isErr default message for failed 'Is'-assertion.
const isErr = "expected identical values; got\n%v\n%v"

// Is fails the test and returns false iff given values are not
// identical; otherwise true is returned.  Two pointers, maps, channels
// or functions are identical if they point to the same memory, two
// slices if they share their backing array and length.  Other values
// are identical if they are comparable and equal.
func (t *T) Is(a, b interface{}) bool {
	t.t.Helper()
	if !identical(a, b) {
		t.Errorf(assertErr, "is", fmt.Sprintf(isErr, a, b))
		return false
	}
	return true
}

// Is negation passes if called [T.Is] assertion with given arguments
// fails; otherwise it fails.
func (n Not) Is(a, b interface{}) bool {
	n.t.t.Helper()
	if n.silently(func() bool { return n.t.Is(a, b) }) {
		n.t.Errorf(assertErr, "is-not", fmt.Sprintf(
			"%v is %v", a, b))
		return false
	}
	return true
}

func identical(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func,
		reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// nilErr default message for failed 'Nil'-assertion.
const nilErr = "expected nil; got %v"

// Nil fails the test and returns false iff given value is neither nil
// nor a nil pointer, map, slice, channel, function or interface;
// otherwise true is returned.
func (t *T) Nil(value interface{}) bool {
	t.t.Helper()
	if !isNil(value) {
		t.Errorf(assertErr, "nil", fmt.Sprintf(nilErr, value))
		return false
	}
	return true
}

// notNilErr default message for failed negated 'Nil'-assertion.
const notNilErr = "expected given value to be not nil"

// Nil negation passes if called [T.Nil] assertion with given argument
// fails; otherwise it fails.
func (n Not) Nil(value interface{}) bool {
	n.t.t.Helper()
	if isNil(value) {
		n.t.Errorf(assertErr, "not-nil", notNilErr)
		return false
	}
	return true
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// True negation passes if called [T.True] assertion with given argument
// fails; otherwise it fails.
func (n Not) True(value bool) bool {
	n.t.t.Helper()
	if value {
		n.t.Errorf(assertErr, "not-true", falseErr)
		return false
	}
	return true
}

// containsErr default message for failed 'Contains'-assertion.
const containsErr = "%s doesn't contain %s"

// Contains fails the test and returns false iff given value's string
// representation doesn't contain given sub-string; otherwise true is
// returned.
func (t *T) Contains(value StringRepresentation, sub string) bool {
	t.t.Helper()
	str := toString(value)
	if strings.Contains(str, sub) {
		return true
	}
	if !strings.HasSuffix(str, "\n") {
		str += "\n"
	}
	if !strings.HasPrefix(sub, "\n") {
		sub = "\n" + sub
	}
	t.Errorf(assertErr, "contains", fmt.Sprintf(containsErr, str, sub))
	return false
}

// notContainsErr default message for failed Not-'Contains'-assertion.
const notContainsErr = "\n'%s'\ndoes contain\n'%s'"

// Contains negation passes if called [T.Contains] assertion with given
// arguments fails; otherwise it fails.
func (n Not) Contains(value StringRepresentation, sub string) bool {
	n.t.t.Helper()
	if strings.Contains(toString(value), sub) {
		n.t.Errorf(assertErr, "doesn't contain",
			fmt.Sprintf(notContainsErr, toString(value), sub))
		return false
	}
	return true
}

// matchedErr default message for failed 'Matched'-assertion.
const matchedErr = "Regexp\n'%s'\ndoesn't match\n'%s'"

// Matched fails the test and returns false iff given value's string
// representation isn't matched by given regex; otherwise true is
// returned.
func (t *T) Matched(value StringRepresentation, regex string) bool {
	t.t.Helper()
	str, re := toString(value), regexp.MustCompile(regex)
	if !re.MatchString(str) {
		t.Errorf(assertErr, "matched",
			fmt.Sprintf(matchedErr, re.String(), str))
		return false
	}
	return true
}

// notMatchedErr default message for failed negated 'Matched'-assertion.
const notMatchedErr = "Regexp '%s'\n matches '%s'"

// Matched negation passes if called [T.Matched] assertion with given
// arguments fails; otherwise it fails.
func (n Not) Matched(value StringRepresentation, regex string) bool {
	n.t.t.Helper()
	if regexp.MustCompile(regex).MatchString(toString(value)) {
		n.t.Errorf(assertErr, "don't-match",
			fmt.Sprintf(notMatchedErr, regex, toString(value)))
		return false
	}
	return true
}

// SpaceMatched escapes given variadic strings before it joins them with
// the `\s*`-separator and matches the result against given value's
// string representation, e.g.:
//
//	<p>
//	   some text
//	</p>
//
// would be matched by
//
//	t.SpaceMatched(value, "<p>", "some text", "</p>").
//
// SpaceMatched fails the test and returns false iff the matching
// fails; otherwise true is returned.
func (t *T) SpaceMatched(value StringRepresentation, ss ...string) bool {
	t.t.Helper()
	re, str := spaceRe(ss...), toString(value)
	if !re.MatchString(str) {
		t.Errorf(assertErr, "space-match", fmt.Sprintf(
			matchedErr, re.String(), str))
		return false
	}
	return true
}

// SpaceMatched negation passes if called [T.SpaceMatched] assertion
// with given arguments fails; otherwise it fails.
func (n Not) SpaceMatched(value StringRepresentation, ss ...string) bool {
	n.t.t.Helper()
	re := spaceRe(ss...)
	if re.MatchString(toString(value)) {
		n.t.Errorf(assertErr, "not: space-match", fmt.Sprintf(
			notMatchedErr, re.String(), toString(value)))
		return false
	}
	return true
}

// spaceRe quotes given strings, lines of a multi-line string trimmed
// separately, and joins them allowing white space in between.
func spaceRe(ss ...string) *regexp.Regexp {
	quoted := []string{}
	for _, s := range ss {
		for _, line := range strings.Split(s, "\n") {
			quoted = append(
				quoted, regexp.QuoteMeta(strings.TrimSpace(line)))
		}
	}
	return regexp.MustCompile(strings.Join(quoted, `\s*`))
}

// errErr default message for failed "Err"-assertion
const errErr = "given value doesn't implement 'error'"

// Err fails the test and returns false iff given value doesn't
// implement the error-interface; otherwise true is returned.
func (t *T) Err(err interface{}) bool {
	t.t.Helper()
	if _, ok := err.(error); !ok {
		t.Errorf(assertErr, "error", errErr)
		return false
	}
	return true
}

// errIsErr default message for failed "ErrIs"-assertion
const errIsErr = "given error doesn't wrap target-error"

// ErrIs fails the test and returns false iff given err doesn't
// implement the error-interface or doesn't wrap given target; otherwise
// true is returned.
func (t *T) ErrIs(err interface{}, target error) bool {
	t.t.Helper()
	e, ok := err.(error)
	if !ok {
		t.Errorf(assertErr, "error is", errIsErr)
		return false
	}
	if errors.Is(e, target) {
		return true
	}
	t.Errorf(assertErr, "error is",
		fmt.Sprintf("%s: %+v\n%+v", errIsErr, e, target))
	return false
}

// errMatchedErr default message for failed "ErrMatched"-assertion
const errMatchedErr = "given regexp '%s' doesn't match '%s'"

// ErrMatched fails the test and returns false iff given err doesn't
// implement the error-interface or its message isn't matched by given
// regex; otherwise true is returned.  A "%s" in given regex matches
// anything.
func (t *T) ErrMatched(err interface{}, re string) bool {
	t.t.Helper()
	e, ok := err.(error)
	if !ok {
		t.Errorf(assertErr, "error matched", errErr)
		return false
	}
	re = strings.ReplaceAll(re, "%s", ".*?")
	if !regexp.MustCompile(re).MatchString(e.Error()) {
		t.Errorf(assertErr, "error matched", fmt.Sprintf(
			errMatchedErr, re, e.Error()))
		return false
	}
	return true
}

// panicsErr default message for failed "Panics"-assertion
const panicsErr = "given function doesn't panic"

// Panics fails the test and returns false iff given function doesn't
// panic; otherwise true is returned.
func (t *T) Panics(f func()) bool {
	t.t.Helper()
	if !panics(f) {
		t.Errorf(assertErr, "panics", panicsErr)
		return false
	}
	return true
}

// notPanicsErr default message for failed negated "Panics"-assertion
const notPanicsErr = "given function panics"

// Panics negation passes if given function doesn't panic; otherwise it
// fails.
func (n Not) Panics(f func()) bool {
	n.t.t.Helper()
	if panics(f) {
		n.t.Errorf(assertErr, "doesn't panic", notPanicsErr)
		return false
	}
	return true
}

// panics reports if given function panicked.  A cancellation of a
// session's T is passed on.
func panics(f func()) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(canceled); ok {
				panic(r)
			}
			panicked = true
		}
	}()
	f()
	return false
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit

import (
	"fmt"
	"testing"
)

// helper is implemented by *testing.T.
type helper interface{ Helper() }

// noHelper stands in for a testing.T if a session runs a case.
type noHelper struct{}

func (noHelper) Helper() {}

// T instances are passed to setUp, test and tearDown methods providing
// means for logging, assertion, failing and cancellation:
//
//	func (s *MyFixture) logsSomething(t *xunit.T) { t.Log("ran") }
//
// A T is either created by a Session or, if a fixture is run by [Run],
// wraps the testing.T of the method's sub-test.  In the later case
// failures, logs and cancellations are those of the wrapped testing.T
// unless the fixture implements SuiteErrorer, SuiteLogging or
// SuiteCanceler.
type T struct {
	t        helper
	name     string
	session  *Session
	logger   func(...interface{})
	errorer  func(...interface{})
	canceler func()

	// Not provides the negations of T's assertions.
	Not Not
}

// GoT returns the wrapped testing.T instance if t was created by [Run];
// nil otherwise.
func (t *T) GoT() *testing.T {
	goT, _ := t.t.(*testing.T)
	return goT
}

// Name returns the name of the running test method.
func (t *T) Name() string { return t.name }

// Session returns the session running t's test.
func (t *T) Session() *Session { return t.session }

// Log writes given arguments to t's logger.
func (t *T) Log(args ...interface{}) { t.logger(args...) }

// Logf writes given format string leveraging Sprintf to t's logger.
func (t *T) Logf(format string, args ...interface{}) {
	t.Log(fmt.Sprintf(format, args...))
}

// Parallel signals that this test may be run in parallel with other
// parallel flagged tests.  It is a no-op for tests run by a session.
func (t *T) Parallel() {
	if goT := t.GoT(); goT != nil {
		goT.Parallel()
	}
}

// Error reports given arguments as failure but continues the test's
// execution.
func (t *T) Error(args ...interface{}) {
	t.t.Helper()
	t.errorer(args...)
}

// Errorf reports given format-string leveraging fmt.Sprintf as failure
// but continues the test's execution.
func (t *T) Errorf(format string, args ...interface{}) {
	t.t.Helper()
	t.Error(fmt.Sprintf(format, args...))
}

// FailNow flags the test as failed and stops its execution.  A
// fixture's tearDown is still executed.
func (t *T) FailNow() {
	t.t.Helper()
	t.canceler()
}

// FatalIfNot cancels the test (see FailNow) if given assertion is
// false and is a no-op otherwise.
func (t *T) FatalIfNot(assertion bool) {
	if assertion {
		return
	}
	t.t.Helper()
	t.FailNow()
}

// FatalOn cancels the test (see FailNow) after reporting given error
// iff it is not nil.
func (t *T) FatalOn(err error) {
	t.t.Helper()
	if err == nil {
		return
	}
	t.Fatal(err.Error())
}

// Fatal reports given arguments as failure and cancels the test (see
// FailNow).
func (t *T) Fatal(args ...interface{}) {
	t.t.Helper()
	t.Error(args...)
	t.FailNow()
}

// Fatalf reports given format-string leveraging fmt.Sprintf as failure
// and cancels the test (see FailNow).
func (t *T) Fatalf(format string, args ...interface{}) {
	t.t.Helper()
	t.Error(fmt.Sprintf(format, args...))
	t.FailNow()
}

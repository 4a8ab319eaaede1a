// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit

import (
	"testing"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Run runs each method of given fixture's method table as a sub-test of
// given testing.T instance in the order of their sorted names:
//
//	type MySuite struct{}
//
//	func (s *MySuite) Methods() xunit.Methods {
//	    return xunit.Methods{"Has_tested_behavior": s.hasTestedBehavior}
//	}
//
//	func (s *MySuite) hasTestedBehavior(t *xunit.T) { ... }
//
//	func TestMySuite(t *testing.T) { xunit.Run(&MySuite{}, t) }
//
// A SetUp-method of the fixture is executed before, a TearDown-method
// after each sub-test.  All sub-tests share the same fixture and a
// session which is closed once they are done.
func Run(f Fixture, t *testing.T) {
	s := NewSession()
	t.Cleanup(func() { s.Close() })
	methods := f.Methods()
	names := maps.Keys(methods)
	slices.Sort(names)
	subTestFactory := newSubTestFactory(f, s)
	for _, name := range names {
		t.Run(name, subTestFactory(name, methods[name]))
	}
}

// SuiteLogging implementation of a fixture overwrites the logging of T
// instances passed to its methods by [Run] with the function returned
// by Logger.  E.g.:
//
//	type MySuite struct{ Logs string }
//
//	func (s *MySuite) Logger() func(...interface{}) {
//	    return func(args ...interface{}) {
//	        s.Logs += fmt.Sprint(args...)
//	    }
//	}
type SuiteLogging interface {
	Logger() func(args ...interface{})
}

// SuiteErrorer overwrites default test-error handling of T instances
// passed by [Run] which defaults to an Error-call of the wrapped
// testing.T-instance.  I.e. calling on a T methods like Error, Errorf
// or a failing assertion ends up in a call of provided function.
type SuiteErrorer interface {
	Error() func(...interface{})
}

// SuiteCanceler overwrites default test-cancellation handling of T
// instances passed by [Run] which defaults to a FailNow-call of the
// wrapped testing.T-instance.  I.e. calling on a T methods like Fatal,
// Fatalf, FailNow, FatalIfNot, or FatalOn ends up in a call of provided
// function.
type SuiteCanceler interface {
	Cancel() func()
}

// newSubTestFactory returns for given fixture a sub-test-factory, i.e.
// a function wrapping test-methods into functions that can be passed to
// the Run-method of a testing.T-instance.
func newSubTestFactory(
	f Fixture, s *Session,
) func(string, func(*T)) func(*testing.T) {
	suiteLogging, hasLogger := f.(SuiteLogging)
	suiteErrorer, hasErrorer := f.(SuiteErrorer)
	suiteCanceler, hasCanceler := f.(SuiteCanceler)
	setUp, hasSetUp := f.(SetUpper)
	tearDown, hasTearDown := f.(TearDowner)
	return func(name string, test func(*T)) func(*testing.T) {
		return func(t *testing.T) {
			suiteT := &T{
				t:        t,
				name:     name,
				session:  s,
				logger:   t.Log,
				errorer:  t.Error,
				canceler: t.FailNow,
			}
			suiteT.Not = Not{t: suiteT}
			if hasLogger {
				suiteT.logger = suiteLogging.Logger()
			}
			if hasErrorer {
				suiteT.errorer = suiteErrorer.Error()
			}
			if hasCanceler {
				suiteT.canceler = suiteCanceler.Cancel()
			}
			if hasSetUp {
				setUp.SetUp(suiteT)
			}
			if hasTearDown {
				defer tearDown.TearDown(suiteT)
			}
			test(suiteT)
		}
	}
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fx provides fixtures run by xunit.Run in the tests of the
// xunit package.
//
// Each fixture embeds the FixtureLog ensuring that all loggings during
// a fixture's test runs are appended to the *Logs*-property which then
// can be evaluated after the fixture's test runs.
package fx

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/slukits/xunit"
)

// FixtureLog provides the general logging facility for fixtures by
// implementing xunit.SuiteLogging.  A FixtureLog mustn't be copied once
// it has been used.
type FixtureLog struct {
	Logs  string
	mutex sync.Mutex
}

// log logs concurrency save given arguments to the *Logs* property.
func (fl *FixtureLog) log(args ...interface{}) {
	fl.mutex.Lock()
	defer fl.mutex.Unlock()
	fl.Logs += fmt.Sprint(args...)
}

// Logger implements xunit.SuiteLogging, i.e. xunit.Run will use the
// returned function to implement xunit.T.Log/Logf.
func (fl *FixtureLog) Logger() func(args ...interface{}) {
	return fl.log
}

// AllMethodsRun logs *Exp* iff its only method is run.
type AllMethodsRun struct {
	FixtureLog
	Exp string
}

func (s *AllMethodsRun) Methods() xunit.Methods {
	return xunit.Methods{"A_test": s.aTest}
}

func (s *AllMethodsRun) aTest(t *xunit.T) { t.Log(s.Exp) }

// SetUpTearDown logs its hooks and methods separated by a space, i.e.
// "setUp A tearDown setUp B tearDown " is expected.
type SetUpTearDown struct{ FixtureLog }

func (s *SetUpTearDown) Methods() xunit.Methods {
	return xunit.Methods{
		"B": func(t *xunit.T) { t.Log("B ") },
		"A": func(t *xunit.T) { t.Log("A ") },
	}
}

func (s *SetUpTearDown) SetUp(t *xunit.T) { t.Log("setUp ") }

func (s *SetUpTearDown) TearDown(t *xunit.T) { t.Log("tearDown ") }

// TearDownAfterCancel implements for each possible test cancellation,
// i.e. FailNow, FatalIfNot, FatalOn, Fatal and Fatalf, a method.  Its
// canceler only counts cancellations and its errorer collects reported
// failures.  Since the cancellations are suppressed each test logs
// "continued" after its cancellation followed by tearDown's "down".
type TearDownAfterCancel struct {
	FixtureLog
	Canceled int
	Errs     []string
}

func (s *TearDownAfterCancel) Methods() xunit.Methods {
	return xunit.Methods{
		"Fail_now":     func(t *xunit.T) { t.FailNow(); t.Log("continued") },
		"Fatal_if_not": func(t *xunit.T) { t.FatalIfNot(false); t.Log("continued") },
		"Fatal_on":     func(t *xunit.T) { t.FatalOn(errors.New("on")); t.Log("continued") },
		"Fatal":        func(t *xunit.T) { t.Fatal("fatal"); t.Log("continued") },
		"Fatalf":       func(t *xunit.T) { t.Fatalf("%s", "fatalf"); t.Log("continued") },
	}
}

func (s *TearDownAfterCancel) TearDown(t *xunit.T) { t.Log("down") }

func (s *TearDownAfterCancel) Cancel() func() {
	return func() { s.Canceled++ }
}

func (s *TearDownAfterCancel) Error() func(...interface{}) {
	return func(args ...interface{}) {
		s.Errs = append(s.Errs, fmt.Sprint(args...))
	}
}

// FailingAssertions fails each of its assertions while its errorer
// collects the reported failures instead of failing the running test.
type FailingAssertions struct {
	Errs []string
}

func (s *FailingAssertions) Methods() xunit.Methods {
	return xunit.Methods{
		"Assertions": func(t *xunit.T) {
			t.True(false)
			t.Eq(1, "1")
			t.Not.Nil(nil)
		},
	}
}

func (s *FailingAssertions) Error() func(...interface{}) {
	return func(args ...interface{}) {
		s.Errs = append(s.Errs, fmt.Sprint(args...))
	}
}

// Joined returns the collected failures joined by a new line.
func (s *FailingAssertions) Joined() string {
	return strings.Join(s.Errs, "\n")
}

// Handles records for each of its methods the T it was given.
type Handles struct {
	mutex sync.Mutex
	Got   map[string]*xunit.T
}

func (s *Handles) Methods() xunit.Methods {
	return xunit.Methods{"One": s.record, "Two": s.record}
}

func (s *Handles) record(t *xunit.T) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.Got == nil {
		s.Got = map[string]*xunit.T{}
	}
	s.Got[t.Name()] = t
}

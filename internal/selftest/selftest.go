// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package selftest has xunit test itself: its CaseTest fixture runs
// scenarios over the recorder, cases, results and sessions.  A
// session running all of CaseTest's methods should report no failure.
package selftest

import (
	"github.com/slukits/xunit"
)

// New returns a fresh CaseTest fixture.
func New() xunit.Fixture { return &CaseTest{} }

// CaseTest is a fixture testing the xunit lifecycle with xunit.
type CaseTest struct {
	result *xunit.Result
}

func (s *CaseTest) Methods() xunit.Methods {
	return xunit.Methods{
		"testRecorderIsInitiallyNotRun": s.testRecorderIsInitiallyNotRun,
		"testRecorderRuns":              s.testRecorderRuns,
		"testTemplateMethod":            s.testTemplateMethod,
		"testSetUpPrecedesTestMethod":   s.testSetUpPrecedesTestMethod,
		"testUnknownMethod":             s.testUnknownMethod,
		"testResult":                    s.testResult,
		"testFailedResult":              s.testFailedResult,
		"testFailedResultFormatting":    s.testFailedResultFormatting,
		"testSession":                   s.testSession,
		"testClosedSession":             s.testClosedSession,
	}
}

// SetUp provides each scenario with an empty result.
func (s *CaseTest) SetUp(t *xunit.T) { s.result = &xunit.Result{} }

func (s *CaseTest) recorder(t *xunit.T, method string) *xunit.Recorder {
	rec, err := xunit.NewRecorder(method)
	t.FatalOn(err)
	return rec
}

func (s *CaseTest) testRecorderIsInitiallyNotRun(t *xunit.T) {
	rec := s.recorder(t, "testMethod")
	_, ran := rec.WasRun()
	t.False(ran)
	t.False(rec.WasSetUp())
}

func (s *CaseTest) testRecorderRuns(t *xunit.T) {
	rec := s.recorder(t, "testMethod")
	rec.Run()
	n, ran := rec.WasRun()
	t.True(ran)
	t.Eq(1, n)
	t.True(rec.WasSetUp())
}

func (s *CaseTest) testTemplateMethod(t *xunit.T) {
	rec := s.recorder(t, "testMethod")
	rec.Run()
	t.Eq("setUp testMethod tearDown ", rec.Log())
}

func (s *CaseTest) testSetUpPrecedesTestMethod(t *xunit.T) {
	// testMethod fails if setUp didn't run before
	t.True(s.recorder(t, "testMethod").Run().OK())
}

func (s *CaseTest) testUnknownMethod(t *xunit.T) {
	_, err := xunit.NewRecorder("testUnknownMethod")
	t.ErrIs(err, xunit.ErrUnknownMethod)
}

func (s *CaseTest) testResult(t *xunit.T) {
	s.result = s.recorder(t, "testMethod").Run()
	t.Eq("1 run, 0 failed", s.result.Summary())
}

func (s *CaseTest) testFailedResult(t *xunit.T) {
	s.result = s.recorder(t, "testBrokenMethod").Run()
	t.Eq("1 run, 1 failed", s.result.Summary())
}

func (s *CaseTest) testFailedResultFormatting(t *xunit.T) {
	s.result = s.recorder(t, "testFailingMethod").Run()
	t.False(s.result.OK())
	t.Contains(s.result.Failures()[0], "testFailingMethod: test failed")
}

func (s *CaseTest) testSession(t *xunit.T) {
	ss := xunit.NewSession()
	defer ss.Close()
	t.FatalOn(ss.Add(
		s.recorder(t, "testMethod").Case,
		s.recorder(t, "testBrokenMethod").Case,
	))
	r, err := ss.Run()
	t.FatalOn(err)
	t.Eq("2 run, 1 failed", r.Summary())
}

func (s *CaseTest) testClosedSession(t *xunit.T) {
	ss := xunit.NewSession()
	t.FatalOn(ss.Close())
	_, err := ss.Run()
	t.ErrIs(err, xunit.ErrSessionClosed)
}

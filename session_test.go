// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit_test

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/slukits/xunit"
)

// counter counts the fixtures created by its factory.
type counter struct {
	created int
}

func (c *counter) factory() xunit.Fixture {
	c.created++
	return &logging{}
}

// logging logs in each of its methods.
type logging struct{}

func (f *logging) Methods() xunit.Methods {
	return xunit.Methods{
		"b": func(t *xunit.T) { t.Log("in b") },
		"a": func(t *xunit.T) { t.Logf("in %s", t.Name()) },
	}
}

func mustCase(t *xunit.T, method string) *xunit.Case {
	rec, err := xunit.NewRecorder(method)
	t.FatalOn(err)
	return rec.Case
}

type session struct{}

func (s *session) SetUp(t *xunit.T) { t.Parallel() }

func (s *session) Methods() xunit.Methods {
	return xunit.Methods{
		"Has_a_unique_id":                      s.hasUniqueID,
		"Runs_added_cases_into_one_result":     s.runsAddedCases,
		"Adds_a_case_per_fixture_method":       s.addsCasePerMethod,
		"Runs_only_filtered_cases":             s.runsFilteredCases,
		"Logs_test_logs_with_session_and_case": s.logsWithSessionAndCase,
		"Refuses_work_once_closed":             s.refusesWorkOnceClosed,
		"Is_passed_to_each_test":               s.isPassedToEachTest,
	}
}

func (s *session) hasUniqueID(t *xunit.T) {
	s1, s2 := xunit.NewSession(), xunit.NewSession()
	t.Not.Eq("", s1.ID())
	t.Not.Eq(s1.ID(), s2.ID())
}

func (s *session) runsAddedCases(t *xunit.T) {
	ss := xunit.NewSession()
	defer ss.Close()
	t.FatalOn(ss.Add(
		mustCase(t, "testMethod"),
		mustCase(t, "testBrokenMethod"),
		mustCase(t, "testFailingMethod"),
	))
	r, err := ss.Run()
	t.FatalOn(err)
	t.Eq("3 run, 2 failed", r.Summary())
}

func (s *session) addsCasePerMethod(t *xunit.T) {
	ss, c := xunit.NewSession(), &counter{}
	defer ss.Close()
	t.FatalOn(ss.AddFixture(c.factory))
	t.Eq(2, ss.Len())
	// one fixture to read the method table and one for each case
	t.Eq(3, c.created)
}

func (s *session) runsFilteredCases(t *xunit.T) {
	ss := xunit.NewSession(xunit.WithFilter(regexp.MustCompile(`^a$`)))
	defer ss.Close()
	t.FatalOn(ss.AddFixture(func() xunit.Fixture { return &logging{} }))
	r, err := ss.Run()
	t.FatalOn(err)
	t.Eq("1 run, 0 failed", r.Summary())
}

func (s *session) logsWithSessionAndCase(t *xunit.T) {
	buf := &bytes.Buffer{}
	ss := xunit.NewSession(xunit.WithLogger(zerolog.New(buf)))
	defer ss.Close()
	t.FatalOn(ss.AddFixture(func() xunit.Fixture { return &logging{} }))
	_, err := ss.Run()
	t.FatalOn(err)
	t.Contains(buf.String(), `"session":"`+ss.ID()+`"`)
	t.Contains(buf.String(), `"case":"a","message":"in a"`)
	t.Contains(buf.String(), `"case":"b","message":"in b"`)
	t.Contains(buf.String(), `"message":"2 run, 0 failed"`)
}

func (s *session) refusesWorkOnceClosed(t *xunit.T) {
	ss := xunit.NewSession()
	t.FatalOn(ss.Close())
	t.FatalOn(ss.Close())
	t.ErrIs(ss.Add(mustCase(t, "testMethod")), xunit.ErrSessionClosed)
	t.ErrIs(ss.AddFixture(func() xunit.Fixture { return &logging{} }),
		xunit.ErrSessionClosed)
	r, err := ss.Run()
	t.ErrIs(err, xunit.ErrSessionClosed)
	t.Nil(r)
}

func (s *session) isPassedToEachTest(t *xunit.T) {
	var got *xunit.Session
	ss := xunit.NewSession()
	defer ss.Close()
	c, err := xunit.NewCase(sessionSpy{got: &got}, "spy")
	t.FatalOn(err)
	t.FatalOn(ss.Add(c))
	_, err = ss.Run()
	t.FatalOn(err)
	t.Is(ss, got)
}

func TestSession(t *testing.T) {
	t.Parallel()
	xunit.Run(&session{}, t)
}

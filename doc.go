// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package xunit is a minimal xUnit-style test runner meant to show the
// test lifecycle of a test case: a setUp hook runs, then the test
// method, then a tearDown hook.  It grew out of notes on the "write a
// failing test, then the code" cycle and keeps the toy it started
// with, a test double recording whether setUp and the test method
// have run:
//
//	rec, err := xunit.NewRecorder("testMethod")
//	if err != nil {
//	    // unknown method name
//	}
//	_, ran := rec.WasRun() // false
//	rec.Run()
//	n, ran := rec.WasRun() // 1, true
//	rec.WasSetUp()         // true
//
// A test method is looked up by name in the method table of a
// [Fixture].  The lookup happens when a [Case] is constructed, i.e. an
// unknown name fails with [ErrUnknownMethod] before anything runs:
//
//	type MyFixture struct{ db *fakeDB }
//
//	func (s *MyFixture) Methods() xunit.Methods {
//	    return xunit.Methods{
//	        "Stores_given_value": s.storesGivenValue,
//	    }
//	}
//
//	func (s *MyFixture) SetUp(t *xunit.T) { s.db = newFakeDB() }
//
//	func (s *MyFixture) storesGivenValue(t *xunit.T) {
//	    s.db.Put("k", "v")
//	    t.Eq("v", s.db.Get("k"))
//	}
//
// Cases are run either one at a time by [Case.Run] or collected in an
// explicitly constructed [Session] which tallies them into a [Result]:
//
//	s := xunit.NewSession()
//	defer s.Close()
//	s.AddFixture(func() xunit.Fixture { return &MyFixture{} })
//	r, _ := s.Run()
//	fmt.Println(r.Summary()) // 1 run, 0 failed
//
// Finally a fixture may be run by go test through [Run] in which case
// each method of its table becomes a sub-test:
//
//	func TestMyFixture(t *testing.T) { xunit.Run(&MyFixture{}, t) }
package xunit

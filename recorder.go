// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit

import (
	"strings"

	"github.com/pkg/errors"
)

// Recorder is a test double recording whether its setUp and its test
// method have been run.  Its method table provides
//   - testMethod: marks the recorder as run; it fails if setUp hasn't
//     run before
//   - testBrokenMethod: panics
//   - testFailingMethod: fails an assertion
//   - testCanceledMethod: cancels the test
//
// Each executed hook and method is appended to the recorder's log.
type Recorder struct {
	*Case
	runs  int
	setUp bool
	log   []string
}

// NewRecorder returns a recorder running given test method.  The
// returned error wraps ErrUnknownMethod if the recorder has no such
// method.
func NewRecorder(method string) (*Recorder, error) {
	r := &Recorder{}
	c, err := NewCase(r, method)
	if err != nil {
		return nil, err
	}
	r.Case = c
	return r, nil
}

// Methods returns the recorder's method table.
func (r *Recorder) Methods() Methods {
	return Methods{
		"testMethod":         r.testMethod,
		"testBrokenMethod":   r.testBrokenMethod,
		"testFailingMethod":  r.testFailingMethod,
		"testCanceledMethod": r.testCanceledMethod,
	}
}

// WasRun returns how often the test method has run and true; or zero
// and false if it didn't run yet.
func (r *Recorder) WasRun() (int, bool) { return r.runs, r.runs > 0 }

// WasSetUp is true iff the recorder's setUp has run.
func (r *Recorder) WasSetUp() bool { return r.setUp }

// Log returns the space separated names of the executed hooks and
// methods, each followed by a space, e.g. "setUp testMethod tearDown ".
func (r *Recorder) Log() string {
	if len(r.log) == 0 {
		return ""
	}
	return strings.Join(r.log, " ") + " "
}

// SetUp flags the recorder as set up.
func (r *Recorder) SetUp(t *T) {
	r.setUp = true
	r.log = append(r.log, "setUp")
}

// TearDown logs the recorder's tear down.
func (r *Recorder) TearDown(t *T) {
	r.log = append(r.log, "tearDown")
}

func (r *Recorder) testMethod(t *T) {
	if !r.setUp {
		t.Fatal("testMethod: setUp didn't run")
	}
	r.runs++
	r.log = append(r.log, "testMethod")
}

func (r *Recorder) testBrokenMethod(t *T) {
	r.log = append(r.log, "testBrokenMethod")
	panic(errors.New("broken method"))
}

func (r *Recorder) testFailingMethod(t *T) {
	r.log = append(r.log, "testFailingMethod")
	t.True(false)
}

func (r *Recorder) testCanceledMethod(t *T) {
	r.log = append(r.log, "testCanceledMethod")
	t.FailNow()
	r.log = append(r.log, "unreachable")
}

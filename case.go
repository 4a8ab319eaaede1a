// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit

import (
	"github.com/pkg/errors"
)

// ErrUnknownMethod is wrapped by the error NewCase returns if a
// fixture's method table has no entry for the requested name.
var ErrUnknownMethod = errors.New("xunit: unknown test method")

// Methods maps test method names to their handlers.
type Methods map[string]func(*T)

// Fixture is implemented by anything whose test methods are run by
// name.  A fixture may additionally implement SetUpper and TearDowner.
type Fixture interface {
	Methods() Methods
}

// SetUpper is implemented by fixtures which need a hook executed
// before each of their test methods.
type SetUpper interface {
	SetUp(*T)
}

// TearDowner is implemented by fixtures which need a hook executed
// after each of their test methods.
type TearDowner interface {
	TearDown(*T)
}

// Case binds a test method, resolved by its name, to a fixture.
type Case struct {
	name    string
	fixture Fixture
	method  func(*T)
}

// NewCase looks up given name in given fixture's method table and
// returns a case running it.  The returned error wraps
// ErrUnknownMethod iff there is no such method.
func NewCase(f Fixture, name string) (*Case, error) {
	method := f.Methods()[name]
	if method == nil {
		return nil, errors.Wrapf(ErrUnknownMethod, "%T: %s", f, name)
	}
	return &Case{name: name, fixture: f, method: method}, nil
}

// Name returns the name of the test method c runs.
func (c *Case) Name() string { return c.name }

// Run executes c in a session of its own and returns its result.
func (c *Case) Run() *Result {
	s := NewSession()
	defer s.Close()
	r := &Result{}
	c.run(s, r)
	return r
}

// run executes c's setUp, test method and tearDown in that order
// reporting into given result.  If setUp doesn't complete neither the
// test method nor the tearDown is executed.  A tearDown is executed
// even if the test method was canceled.
func (c *Case) run(s *Session, r *Result) {
	r.runs++
	cr := &caseRun{result: r, name: c.name}
	t := s.newT(cr)
	s.log.Debug().Str("case", c.name).Msg("run")

	if setUp, ok := c.fixture.(SetUpper); ok {
		if !cr.exec(PhaseSetUp, func() { setUp.SetUp(t) }) {
			return
		}
	}
	cr.exec(PhaseTest, func() { c.method(t) })
	if tearDown, ok := c.fixture.(TearDowner); ok {
		cr.exec(PhaseTearDown, func() { tearDown.TearDown(t) })
	}

	s.log.Debug().Str("case", c.name).Bool("failed", cr.failed).
		Msg("done")
}

// canceled is panicked by a session's T on FailNow.
type canceled struct{}

// caseRun collects the outcome of a single case execution.
type caseRun struct {
	result *Result
	name   string
	phase  Phase
	failed bool
	// phaseFailed is true iff the current phase reported a failure.
	phaseFailed bool
}

// exec runs given function in given phase and reports false iff it
// panicked, i.e. also if it was canceled.
func (cr *caseRun) exec(p Phase, fn func()) (completed bool) {
	cr.phase, cr.phaseFailed = p, false
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(canceled); ok {
			return
		}
		var err error
		if e, ok := r.(error); ok {
			err = errors.Wrapf(e, "%s panicked", p)
		} else {
			err = errors.Errorf("%s panicked: %v", p, r)
		}
		cr.fail(Errored, err.Error(), err)
	}()
	fn()
	return true
}

// fail records a failure of the running case.  The result's failed
// count is only increased for a case's first failure.
func (cr *caseRun) fail(k Kind, msg string, err error) {
	cr.result.failures = append(cr.result.failures, Failure{
		Case:    cr.name,
		Phase:   cr.phase,
		Kind:    k,
		Message: msg,
		Err:     err,
	})
	cr.phaseFailed = true
	if cr.failed {
		return
	}
	cr.failed = true
	cr.result.failed++
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit

import "fmt"

// Phase identifies the part of a case's execution a failure happened
// in.
type Phase int

const (
	PhaseSetUp Phase = iota
	PhaseTest
	PhaseTearDown
)

func (p Phase) String() string {
	switch p {
	case PhaseSetUp:
		return "setUp"
	case PhaseTest:
		return "test"
	case PhaseTearDown:
		return "tearDown"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Kind discriminates failed assertions from panics.
type Kind int

const (
	// Failed is the kind of failures reported through a T, e.g. a
	// failing assertion or a FailNow call.
	Failed Kind = iota
	// Errored is the kind of failures caused by a panic.
	Errored
)

func (k Kind) String() string {
	if k == Errored {
		return "errored"
	}
	return "failed"
}

// Failure describes a single failure of a case's run.
type Failure struct {
	Case    string
	Phase   Phase
	Kind    Kind
	Message string
	// Err is set for Errored failures.
	Err error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s %s: %s", f.Case, f.Phase, f.Kind, f.Message)
}

// Result tallies the cases run in a session.  The zero value is ready
// to use.
type Result struct {
	runs     int
	failed   int
	failures []Failure
}

// RunCount returns the number of started cases.
func (r *Result) RunCount() int { return r.runs }

// FailedCount returns the number of cases having at least one failure.
func (r *Result) FailedCount() int { return r.failed }

// Failures returns a copy of the failures in the order they were
// reported.
func (r *Result) Failures() []Failure {
	return append([]Failure(nil), r.failures...)
}

// OK is true iff no case failed.
func (r *Result) OK() bool { return r.failed == 0 }

// Summary reports run and failed cases, e.g. "2 run, 1 failed".
func (r *Result) Summary() string {
	return fmt.Sprintf("%d run, %d failed", r.runs, r.failed)
}

func (r *Result) String() string { return r.Summary() }

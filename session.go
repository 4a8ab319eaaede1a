// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrSessionClosed is returned by a session's methods after it was
// closed.
var ErrSessionClosed = errors.New("xunit: session closed")

// Session collects cases, runs them one after another and tallies their
// outcome.  A session's life is explicit:
//
//	s := xunit.NewSession()
//	s.Add(cases...)
//	r, err := s.Run()
//	s.Close()
//
// Each T passed to a case's methods provides its session.  A Session is
// not safe for concurrent use.
type Session struct {
	id     string
	log    zerolog.Logger
	filter *regexp.Regexp
	cases  []*Case
	closed bool
}

// Option configures a session at its construction.
type Option func(*Session)

// WithLogger sets the logger a session reports its runs and its tests'
// logs to.  It defaults to zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithFilter restricts a session's run to cases whose name is matched
// by given regular expression.
func WithFilter(re *regexp.Regexp) Option {
	return func(s *Session) { s.filter = re }
}

// NewSession creates a session with a unique id.
func NewSession(oo ...Option) *Session {
	s := &Session{id: uuid.NewString(), log: zerolog.Nop()}
	for _, o := range oo {
		o(s)
	}
	s.log = s.log.With().Str("session", s.id).Logger()
	return s
}

// ID identifies s in its log entries.
func (s *Session) ID() string { return s.id }

// Logger returns s's logger.
func (s *Session) Logger() zerolog.Logger { return s.log }

// Len returns the number of cases added to s.
func (s *Session) Len() int { return len(s.cases) }

// Add appends given cases to the cases s runs.
func (s *Session) Add(cc ...*Case) error {
	if s.closed {
		return ErrSessionClosed
	}
	s.cases = append(s.cases, cc...)
	return nil
}

// AddFixture adds a case for each method of the fixtures created by
// given factory.  Each case gets a fixture of its own; cases are added
// in the order of their sorted method names.
func (s *Session) AddFixture(newFixture func() Fixture) error {
	if s.closed {
		return ErrSessionClosed
	}
	names := maps.Keys(newFixture().Methods())
	slices.Sort(names)
	cc := make([]*Case, 0, len(names))
	for _, name := range names {
		c, err := NewCase(newFixture(), name)
		if err != nil {
			return err
		}
		cc = append(cc, c)
	}
	return s.Add(cc...)
}

// Run executes all added cases matched by s's filter in the order they
// were added.
func (s *Session) Run() (*Result, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	r := &Result{}
	for _, c := range s.cases {
		if s.filter != nil && !s.filter.MatchString(c.Name()) {
			continue
		}
		c.run(s, r)
	}
	s.log.Debug().Int("run", r.RunCount()).Int("failed", r.FailedCount()).
		Msg(r.Summary())
	return r, nil
}

// Close discards s's cases.  Closing a closed session is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed, s.cases = true, nil
	return nil
}

// newT returns a T reporting its failures to given case run and its
// logs to s's logger.
func (s *Session) newT(cr *caseRun) *T {
	log := s.log.With().Str("case", cr.name).Logger()
	t := &T{
		t:       noHelper{},
		name:    cr.name,
		session: s,
		logger: func(args ...interface{}) {
			log.Info().Msg(fmt.Sprint(args...))
		},
		errorer: func(args ...interface{}) {
			cr.fail(Failed, fmt.Sprint(args...), nil)
		},
		canceler: func() {
			if !cr.phaseFailed {
				cr.fail(Failed, "canceled", nil)
			}
			panic(canceled{})
		},
	}
	t.Not = Not{t: t}
	return t
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selftest_test

import (
	"testing"

	"github.com/slukits/xunit"
	"github.com/slukits/xunit/internal/selftest"
)

func Test_self_test_passes_in_a_session(t *testing.T) {
	t.Parallel()
	s := xunit.NewSession()
	defer s.Close()
	if err := s.AddFixture(selftest.New); err != nil {
		t.Fatal(err)
	}
	r, err := s.Run()
	if err != nil {
		t.Fatal(err)
	}
	if !r.OK() {
		t.Fatalf("%s: %v", r.Summary(), r.Failures())
	}
	if r.RunCount() != len(selftest.New().Methods()) {
		t.Errorf("expected every method to run; got %s", r.Summary())
	}
}

func TestCaseTest(t *testing.T) {
	t.Parallel()
	xunit.Run(selftest.New(), t)
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Xunit runs xunit's self-test, i.e. xunit testing its own test lifecycle
with its recorder, and reports the outcome.

Usage:

	xunit run [--run REGEX] [--verbose]
	xunit list

run prints each failure followed by a summary like "10 run, 0 failed"
and exits with status 1 if a case failed.  The flags may be given as
XUNIT_RUN and XUNIT_VERBOSE environment variables.  list prints the
names of the self-test's cases.
*/
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "xunit: %v\n", err)
		os.Exit(1)
	}
}

// errFailed is returned by the run command if a case failed.
var errFailed = errors.New("cases failed")

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/slukits/xunit"
	"github.com/slukits/xunit/internal/config"
	"github.com/slukits/xunit/internal/selftest"
)

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "xunit",
		Short:         "Run xunit's self-test",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.AddCommand(newRunCmd(), newListCmd())
	return root
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the self-test cases and report their outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			r, err := run(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), r)
			if !r.OK() {
				return errFailed
			}
			return nil
		},
	}
	config.Flags(cmd.Flags())
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the self-test cases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			names := maps.Keys(selftest.New().Methods())
			slices.Sort(names)
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

// run executes the self-test in a session configured by given
// configuration logging to given writer.
func run(cfg *config.Config, logTo io.Writer) (*xunit.Result, error) {
	log := zerolog.New(zerolog.ConsoleWriter{Out: logTo}).
		Level(cfg.LogLevel()).With().Timestamp().Logger()
	oo := []xunit.Option{xunit.WithLogger(log)}
	if cfg.Run != nil {
		oo = append(oo, xunit.WithFilter(cfg.Run))
	}
	s := xunit.NewSession(oo...)
	defer s.Close()
	if err := s.AddFixture(selftest.New); err != nil {
		return nil, err
	}
	return s.Run()
}

// report writes given result's failures and its summary to given
// writer.
func report(out io.Writer, r *xunit.Result) {
	failed := color.New(color.FgRed)
	for _, f := range r.Failures() {
		failed.Fprintln(out, f.String())
	}
	if r.OK() {
		color.New(color.FgGreen).Fprintln(out, r.Summary())
		return
	}
	failed.Fprintln(out, r.Summary())
}

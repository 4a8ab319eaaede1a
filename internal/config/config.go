// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config holds the xunit command's configuration which is read
// from its flags and XUNIT_* environment variables, the flags taking
// precedence.
package config

import (
	"regexp"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables overwriting defaults.
const EnvPrefix = "XUNIT"

// Keys of the configuration values; they are also the flag names.
const (
	KeyRun     = "run"
	KeyVerbose = "verbose"
)

// Config holds the configuration of an xunit run.
type Config struct {
	// Run selects the cases to run by their names; nil runs all.
	Run *regexp.Regexp
	// Verbose lowers the log level from warn to debug.
	Verbose bool
}

// LogLevel returns the log level the configuration asks for.
func (c *Config) LogLevel() zerolog.Level {
	if c.Verbose {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}

// Flags registers the configuration flags at given flag set.
func Flags(fs *pflag.FlagSet) {
	fs.StringP(KeyRun, "r", "",
		"run only cases whose name matches given regular expression")
	fs.BoolP(KeyVerbose, "v", false, "log each case's run")
}

// Load reads the configuration from given flag set and the
// environment.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "config: bind flags")
	}
	cfg := &Config{Verbose: v.GetBool(KeyVerbose)}
	if expr := v.GetString(KeyRun); expr != "" {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, errors.Wrapf(err, "config: %s", KeyRun)
		}
		cfg.Run = re
	}
	return cfg, nil
}

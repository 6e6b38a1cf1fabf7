// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the BIGINT_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
// Order matches the procedural grouping (numeric, duration, string, bool).
var envOverrides = []envOverride{
	// Numeric overrides
	{"BASE", []string{"base"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Base = parsed
		}
	}},
	{"SHOWBASE", []string{"showbase"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.ShowBase = parsed
		}
	}},
	{"LIMB", []string{"limb"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.LimbWidth = parsed
		}
	}},
	{"FFT_THRESHOLD", []string{"fft-threshold"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.FFTThreshold = parsed
		}
	}},
	{"PARALLEL_THRESHOLD", []string{"parallel-threshold"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.ParallelThreshold = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"OP", []string{"op"}, func(c *AppConfig, v string) {
		c.Op = v
	}},
	{"OUTPUT", []string{"output"}, func(c *AppConfig, v string) {
		c.OutputFile = v
	}},
	{"CALIBRATION_PROFILE", []string{"calibration-profile"}, func(c *AppConfig, v string) {
		c.CalibrationProfile = v
	}},
	{"SERVE_ADDR", []string{"serve-addr"}, func(c *AppConfig, v string) {
		c.ServeAddr = v
	}},

	// Boolean overrides
	{"UPPER", []string{"upper"}, func(c *AppConfig, v string) {
		c.Uppercase = parseBoolEnv(v, c.Uppercase)
	}},
	{"VERBOSE", []string{"v"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"QUIET", []string{"quiet"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"REPL", []string{"repl"}, func(c *AppConfig, v string) {
		c.REPL = parseBoolEnv(v, c.REPL)
	}},
	{"TUI", []string{"tui"}, func(c *AppConfig, v string) {
		c.TUI = parseBoolEnv(v, c.TUI)
	}},
	{"COMPARE", []string{"compare"}, func(c *AppConfig, v string) {
		c.Compare = parseBoolEnv(v, c.Compare)
	}},
	{"CALIBRATE", []string{"calibrate"}, func(c *AppConfig, v string) {
		c.Calibrate = parseBoolEnv(v, c.Calibrate)
	}},
	{"AUTO_CALIBRATE", []string{"auto-calibrate"}, func(c *AppConfig, v string) {
		c.AutoCalibrate = parseBoolEnv(v, c.AutoCalibrate)
	}},
	{"SERVE", []string{"serve"}, func(c *AppConfig, v string) {
		c.Serve = parseBoolEnv(v, c.Serve)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with BIGINT_):
//   - BASE, SHOWBASE, LIMB, OP, TIMEOUT, FFT_THRESHOLD, PARALLEL_THRESHOLD,
//     UPPER, VERBOSE, QUIET, REPL, TUI, COMPARE, CALIBRATE, AUTO_CALIBRATE,
//     OUTPUT, CALIBRATION_PROFILE, SERVE, SERVE_ADDR
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}

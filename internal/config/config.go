// Package config resolves the bigint CLI's runtime configuration from
// (in priority order) command-line flags, environment variables prefixed
// with BIGINT_, a cached calibration profile, an adaptive hardware
// estimate, and finally static defaults.
package config

import (
	"flag"
	"fmt"
	"time"
)

// EnvPrefix is prepended to every environment variable this package reads.
const EnvPrefix = "BIGINT_"

// AppConfig holds every tunable the bigint CLI, REPL, and orchestration
// layers consult.
type AppConfig struct {
	Base       int
	Uppercase  bool
	ShowBase   int
	LimbWidth  int
	Op         string
	LHS        string
	RHS        string

	FFTThreshold      int
	ParallelThreshold int

	CalibrationProfile string
	Calibrate          bool
	AutoCalibrate      bool

	Verbose bool
	Quiet   bool
	REPL    bool
	TUI     bool
	Compare bool

	Serve     bool
	ServeAddr string

	Completion string

	Timeout    time.Duration
	OutputFile string
}

// DefaultConfig returns the static defaults used before any env/flag/
// calibration override is applied.
func DefaultConfig() AppConfig {
	return AppConfig{
		Base:               10,
		LimbWidth:          32,
		CalibrationProfile: "~/.bigint_calibration.json",
		Timeout:            30 * time.Second,
		ServeAddr:          ":8080",
	}
}

// ParseFlags builds a flag.FlagSet bound to a copy of the static defaults,
// parses args against it, applies environment variable overrides for any
// flag the caller didn't set explicitly, and returns the resolved config.
func ParseFlags(progName string, args []string) (*AppConfig, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)

	fs.IntVar(&cfg.Base, "base", cfg.Base, "numeric base for literals and output (2-36)")
	fs.BoolVar(&cfg.Uppercase, "upper", cfg.Uppercase, "uppercase alphabetic digits in output")
	fs.IntVar(&cfg.ShowBase, "showbase", cfg.ShowBase, "base-prefix display mode (0=none, 1=C-style, 2=explicit)")
	fs.IntVar(&cfg.LimbWidth, "limb", cfg.LimbWidth, "limb width in bits (8, 16, or 32)")
	fs.StringVar(&cfg.Op, "op", cfg.Op, "operation: + - * / % & | ^ << >> cmp")
	fs.StringVar(&cfg.LHS, "a", cfg.LHS, "left operand literal")
	fs.StringVar(&cfg.RHS, "b", cfg.RHS, "right operand literal")
	fs.IntVar(&cfg.FFTThreshold, "fft-threshold", cfg.FFTThreshold, "bit length above which multiplication switches to FFT (0 = adaptive)")
	fs.IntVar(&cfg.ParallelThreshold, "parallel-threshold", cfg.ParallelThreshold, "bit length above which FFT transforms run concurrently (0 = adaptive)")
	fs.StringVar(&cfg.CalibrationProfile, "calibration-profile", cfg.CalibrationProfile, "path to the cached calibration profile")
	fs.BoolVar(&cfg.Calibrate, "calibrate", cfg.Calibrate, "run a full calibration, print the measured FFT threshold, and exit")
	fs.BoolVar(&cfg.AutoCalibrate, "auto-calibrate", cfg.AutoCalibrate, "run a quick calibration at startup instead of loading the cached profile")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress non-essential output")
	fs.BoolVar(&cfg.REPL, "repl", cfg.REPL, "drop into an interactive REPL")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "run the interactive dashboard instead of printing a result")
	fs.BoolVar(&cfg.Compare, "compare", cfg.Compare, "run every applicable division/multiplication algorithm and print a comparison table")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall operation timeout")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "write the result to this file instead of stdout")
	fs.BoolVar(&cfg.Serve, "serve", cfg.Serve, "run the HTTP calculation server instead of a one-shot evaluation")
	fs.StringVar(&cfg.ServeAddr, "serve-addr", cfg.ServeAddr, "address the HTTP server listens on")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "print a shell completion script (bash, zsh, fish, or powershell) and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.LimbWidth != 8 && cfg.LimbWidth != 16 && cfg.LimbWidth != 32 {
		return nil, fmt.Errorf("invalid -limb %d: must be 8, 16, or 32", cfg.LimbWidth)
	}
	applyEnvOverrides(&cfg, fs)
	return &cfg, nil
}

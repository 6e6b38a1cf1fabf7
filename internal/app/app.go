package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/bigint/internal/bigerrors"
	"github.com/agbru/bigint/internal/bigint"
	"github.com/agbru/bigint/internal/calibration"
	"github.com/agbru/bigint/internal/cli"
	"github.com/agbru/bigint/internal/config"
	"github.com/agbru/bigint/internal/logging"
	"github.com/agbru/bigint/internal/server"
	"github.com/agbru/bigint/internal/tui"
	"github.com/agbru/bigint/internal/ui"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Application is a single invocation of the bigint CLI: a resolved
// configuration plus the writers its subcommands report to.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger overrides the default stderr logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New parses args (args[0] is the program name, matching os.Args) into a
// resolved AppConfig and returns an Application ready to Run.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "bigint"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseFlags(programName, cmdArgs)
	if err != nil {
		return nil, err
	}
	app.Config = *cfg

	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "app")
	}

	return app, nil
}

// Run dispatches to the subcommand selected by the resolved configuration
// and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.Quiet)

	if a.Config.Calibrate {
		a.Config = calibration.RunCalibration(ctx, out, a.Config)
		return bigerrors.ExitSuccess
	}

	if a.Config.AutoCalibrate {
		if updated, ok := calibration.AutoCalibrate(ctx, a.Config, out); ok {
			a.Config = updated
		}
	} else if cached, loaded := calibration.LoadCachedCalibration(a.Config, a.Config.CalibrationProfile); loaded {
		a.Config = cached
	}
	a.Config = config.ApplyAdaptiveThresholds(a.Config)
	applyThresholds(a.Config)

	if a.Config.Serve {
		return a.runServe(ctx)
	}

	if a.Config.TUI {
		return a.runTUI(ctx)
	}

	if a.Config.REPL {
		return a.runREPL(out)
	}

	return a.runCalculate(ctx, out)
}

// runCompletion prints a shell completion script for the configured shell
// and exits; it performs no arithmetic and needs no context.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, nil); err != nil {
		a.Logger.Error("completion generation failed", err)
		return bigerrors.ExitErrorConfig
	}
	return bigerrors.ExitSuccess
}

// runServe starts the HTTP calculation server and blocks until ctx is
// cancelled or the listener fails.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	srv := server.New(a.Config.ServeAddr, a.Logger)
	if err := srv.ListenAndServe(ctx); err != nil {
		a.Logger.Error("server exited with error", err)
		return bigerrors.ExitErrorGeneric
	}
	return bigerrors.ExitSuccess
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, a.Config, Version)
}

// runREPL drops into the interactive read-eval-print loop.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(cli.REPLConfig{
		Base:              a.Config.Base,
		LimbWidth:         a.Config.LimbWidth,
		Upper:             a.Config.Uppercase,
		ShowBase:          bigint.ShowBase(a.Config.ShowBase),
		Timeout:           a.Config.Timeout,
		ParallelThreshold: a.Config.ParallelThreshold,
		FFTThreshold:      a.Config.FFTThreshold,
		Compare:           a.Config.Compare,
	})
	repl.SetOutput(out)
	repl.Start()
	return bigerrors.ExitSuccess
}

// applyThresholds pushes the resolved FFT/parallel thresholds into the
// core package's tunable variables. The core package never reads config
// itself; this is the one place that bridges the two.
func applyThresholds(cfg config.AppConfig) {
	if cfg.FFTThreshold > 0 {
		bigint.FFTMulThreshold = cfg.FFTThreshold
	}
	if cfg.ParallelThreshold > 0 {
		bigint.FFTParallelThreshold = cfg.ParallelThreshold
	}
}

// IsHelpError reports whether err is the flag package's sentinel for a
// -h/-help invocation, which callers should treat as a clean exit rather
// than a configuration failure.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

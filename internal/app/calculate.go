package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/bigint/internal/bigerrors"
	"github.com/agbru/bigint/internal/bigint"
	"github.com/agbru/bigint/internal/cli"
	"github.com/agbru/bigint/internal/orchestration"
)

// runCalculate evaluates -a <op> -b once against the resolved
// configuration and prints (or saves) the result.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	if a.Config.Op == "" {
		fmt.Fprintln(a.ErrWriter, "no -op given; pass -op, -repl, -tui, -serve, or -completion")
		return bigerrors.ExitErrorConfig
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	var (
		results []orchestration.CalculationResult
		err     error
	)
	switch a.Config.LimbWidth {
	case 8:
		results, err = cli.Evaluate[uint8](ctx, a.Config.LHS, a.Config.Op, a.Config.RHS, a.Config.Base, a.Config.Compare, a.Config.Uppercase, bigint.ShowBase(a.Config.ShowBase))
	case 16:
		results, err = cli.Evaluate[uint16](ctx, a.Config.LHS, a.Config.Op, a.Config.RHS, a.Config.Base, a.Config.Compare, a.Config.Uppercase, bigint.ShowBase(a.Config.ShowBase))
	default:
		results, err = cli.Evaluate[uint32](ctx, a.Config.LHS, a.Config.Op, a.Config.RHS, a.Config.Base, a.Config.Compare, a.Config.Uppercase, bigint.ShowBase(a.Config.ShowBase))
	}
	if err != nil {
		a.Logger.Error("evaluation failed", err)
		if errors.Is(err, cli.ErrDivisionByZero) {
			return bigerrors.ExitErrorDivide
		}
		return bigerrors.ExitErrorParse
	}

	if !a.Config.Quiet {
		cli.PrintExecutionMode(len(results), out)
	}

	presenter := cli.ResultPresenter{}
	if len(results) > 1 {
		presenter.PresentComparisonTable(results, out)
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, presenter, out)

	if best := findBestResult(results); best != nil && a.Config.OutputFile != "" {
		if err := cli.WriteRenderedResult(a.Config.OutputFile, best.Name, best.Value, best.Duration); err != nil {
			a.Logger.Error("failed to save result", err)
			return bigerrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "\nResult saved to: %s\n", a.Config.OutputFile)
		}
	}

	return exitCode
}

// findBestResult returns the fastest successful result, or nil if every
// strategy failed.
func findBestResult(results []orchestration.CalculationResult) *orchestration.CalculationResult {
	var best *orchestration.CalculationResult
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		if best == nil || results[i].Duration < best.Duration {
			best = &results[i]
		}
	}
	return best
}

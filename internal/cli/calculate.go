package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/bigint/internal/config"
	"github.com/agbru/bigint/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user: the requested operation, environment details, and the thresholds
// that will govern algorithm dispatch.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Operation: %s%s%s, timeout %s%s%s.\n",
		ui.ColorMagenta(), cfg.Op, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Optimization thresholds: Parallel=%s%d%s bits, FFT=%s%d%s bits.\n",
		ui.ColorCyan(), cfg.ParallelThreshold, ui.ColorReset(), ui.ColorCyan(), cfg.FFTThreshold, ui.ColorReset())
}

// PrintExecutionMode announces whether this run compares every applicable
// strategy or dispatches straight to the single selected one.
func PrintExecutionMode(numStrategies int, out io.Writer) {
	var modeDesc string
	if numStrategies > 1 {
		modeDesc = fmt.Sprintf("Parallel comparison of %s%d%s strategies", ui.ColorGreen(), numStrategies, ui.ColorReset())
	} else {
		modeDesc = "Single dispatch"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

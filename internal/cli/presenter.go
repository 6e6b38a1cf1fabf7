package cli

import (
	"fmt"
	"io"

	"github.com/agbru/bigint/internal/format"
	"github.com/agbru/bigint/internal/orchestration"
	"github.com/agbru/bigint/internal/ui"
)

// ResultPresenter implements orchestration.ResultPresenter for CLI output:
// colorized, tabular output for -compare mode and a single-line result for
// the ordinary case.
type ResultPresenter struct{}

var _ orchestration.ResultPresenter = ResultPresenter{}

// PresentComparisonTable displays the comparison summary table with
// strategy names, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (ResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := 8 // "Strategy" header length
	maxDurationLen := 8
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	fmt.Fprintf(out, "%sStrategy%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-8),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s✗ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✓ Success%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// padRight returns s followed by length spaces (a no-op if length <= 0).
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the winning result.
func (ResultPresenter) PresentResult(result orchestration.CalculationResult, verbose bool, out io.Writer) {
	fmt.Fprintf(out, "%s=%s %s%s%s\n", ui.ColorBold(), ui.ColorReset(), ui.ColorGreen(), result.Value, ui.ColorReset())
	if verbose {
		fmt.Fprintf(out, "  strategy: %s%s%s, time: %s%s%s\n",
			ui.ColorCyan(), result.Name, ui.ColorReset(),
			ui.ColorCyan(), format.FormatExecutionDuration(result.Duration), ui.ColorReset())
	}
}

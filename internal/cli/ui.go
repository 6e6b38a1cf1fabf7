//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"time"

	"github.com/briandowns/spinner"
)

const (
	// TruncationLimit is the digit threshold from which a rendered value is
	// truncated in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the
	// beginning and end of a truncated number.
	DisplayEdges = 25
	// SpinnerRefreshRate is the animation interval for the calibration/
	// long-multiplication spinner.
	SpinnerRefreshRate = 200 * time.Millisecond
)

// Spinner abstracts a terminal spinner so long-running callers (calibration,
// FFT passes) don't depend on a specific spinner implementation, easing testing.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

// realSpinner adapts github.com/briandowns/spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                   { rs.s.Start() }
func (rs *realSpinner) Stop()                    { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// NewCalculationSpinner builds a spinner with a suffix appropriate for a
// long-running FFT multiplication or calibration pass.
func NewCalculationSpinner(suffix string) Spinner {
	sp := newSpinner(spinner.WithColor("cyan"))
	sp.UpdateSuffix(suffix)
	return sp
}

// truncateDigits shortens a long rendered digit string to its first and
// last DisplayEdges characters, joined by an ellipsis, once it exceeds
// TruncationLimit. Only the package's tests call it; the REPL and -compare
// output print values in full.
func truncateDigits(s string) string {
	if len(s) <= TruncationLimit {
		return s
	}
	return s[:DisplayEdges] + "…" + s[len(s)-DisplayEdges:]
}

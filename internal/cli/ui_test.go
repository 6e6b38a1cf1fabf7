package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/agbru/bigint/internal/ui"
	"github.com/briandowns/spinner"
)

// MockSpinner for testing.
type MockSpinner struct {
	started bool
	stopped bool
	suffix  string
}

func (m *MockSpinner) Start() { m.started = true }
func (m *MockSpinner) Stop()  { m.stopped = true }
func (m *MockSpinner) UpdateSuffix(suffix string) { m.suffix = suffix }

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	rs := &realSpinner{s}

	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
}

func TestNewCalculationSpinner(t *testing.T) {
	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()

	mockS := &MockSpinner{}
	newSpinner = func(options ...spinner.Option) Spinner {
		return mockS
	}

	sp := NewCalculationSpinner("computing FFT product...")
	sp.Start()
	sp.Stop()

	if !mockS.started || !mockS.stopped {
		t.Error("spinner should have started and stopped")
	}
	if mockS.suffix != "computing FFT product..." {
		t.Errorf("expected suffix to be set before Start, got %q", mockS.suffix)
	}
}

func TestColors(t *testing.T) {
	ui.InitTheme(false)

	_ = ui.ColorReset()
	_ = ui.ColorRed()
	_ = ui.ColorGreen()
	_ = ui.ColorYellow()
	_ = ui.ColorBlue()
	_ = ui.ColorMagenta()
	_ = ui.ColorCyan()
	_ = ui.ColorBold()
	_ = ui.ColorUnderline()
}

func TestTruncateDigits(t *testing.T) {
	t.Parallel()

	short := "12345"
	if got := truncateDigits(short); got != short {
		t.Errorf("short input should pass through unchanged, got %q", got)
	}

	long := strings.Repeat("9", TruncationLimit+50)
	got := truncateDigits(long)
	if len(got) >= len(long) {
		t.Errorf("expected truncation to shorten the string")
	}
	if !strings.HasPrefix(got, long[:DisplayEdges]) {
		t.Errorf("expected truncated output to keep the leading edge")
	}
	if !strings.HasSuffix(got, long[len(long)-DisplayEdges:]) {
		t.Errorf("expected truncated output to keep the trailing edge")
	}
}

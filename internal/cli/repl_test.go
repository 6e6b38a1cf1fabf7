package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bigint/internal/ui"
)

func newTestREPL(input string) (*REPL, *bytes.Buffer) {
	var out bytes.Buffer
	r := NewREPL(REPLConfig{
		LimbWidth: 32,
		Base:      10,
		Timeout:   time.Second,
	})
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&out)
	return r, &out
}

func TestREPLEvalAddition(t *testing.T) {
	r, out := newTestREPL("123 + 456\nexit\n")
	r.Start()
	if !strings.Contains(out.String(), "579") {
		t.Errorf("expected result 579 in output, got: %s", out.String())
	}
}

func TestREPLEvalMultiplication(t *testing.T) {
	r, out := newTestREPL("123456789 * 987654321\nexit\n")
	r.Start()
	if !strings.Contains(out.String(), "121932631112635269") {
		t.Errorf("expected product in output, got: %s", out.String())
	}
}

func TestREPLDivisionByZero(t *testing.T) {
	r, out := newTestREPL("10 / 0\nexit\n")
	r.Start()
	if !strings.Contains(out.String(), "Error") {
		t.Errorf("expected error message for division by zero, got: %s", out.String())
	}
}

func TestREPLCompareToggle(t *testing.T) {
	r, out := newTestREPL("compare\nstatus\nexit\n")
	r.Start()
	if !strings.Contains(out.String(), "Compare:    "+ui.ColorCyan()+"yes") {
		t.Errorf("expected compare enabled in status output, got: %s", out.String())
	}
}

func TestREPLBaseCommand(t *testing.T) {
	r, out := newTestREPL("base 16\nff + 1\nexit\n")
	r.Start()
	if !strings.Contains(out.String(), "100") {
		t.Errorf("expected hex sum 100 in output, got: %s", out.String())
	}
}

func TestREPLInvalidLimb(t *testing.T) {
	r, out := newTestREPL("limb 24\nexit\n")
	r.Start()
	if !strings.Contains(out.String(), "Invalid limb width") {
		t.Errorf("expected invalid limb width error, got: %s", out.String())
	}
}

func TestREPLUnknownOperator(t *testing.T) {
	r, out := newTestREPL("5 ~ 3\nexit\n")
	r.Start()
	if !strings.Contains(out.String(), "Unknown operator") {
		t.Errorf("expected unknown operator error, got: %s", out.String())
	}
}

func TestREPLCmpOperator(t *testing.T) {
	r, out := newTestREPL("5 cmp 3\nexit\n")
	r.Start()
	if !strings.Contains(out.String(), "1") {
		t.Errorf("expected cmp result 1 in output, got: %s", out.String())
	}
}

func TestREPLExitOnEOF(t *testing.T) {
	r, out := newTestREPL("")
	r.Start()
	if !strings.Contains(out.String(), "Goodbye") {
		t.Errorf("expected goodbye message on EOF, got: %s", out.String())
	}
}

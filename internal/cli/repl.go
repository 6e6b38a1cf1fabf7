// Package cli provides the interactive REPL for arbitrary-precision
// arithmetic sessions.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/bigint/internal/bigint"
	"github.com/agbru/bigint/internal/orchestration"
	"github.com/agbru/bigint/internal/ui"
)

// ErrDivisionByZero is returned by Evaluate for "/" and "%" when the right
// operand is zero, distinct from a plain parse failure so callers can
// report it with its own exit status.
var ErrDivisionByZero = errors.New("division by zero")

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// LimbWidth selects the limb type (8, 16, or 32 bits) used to parse
	// and evaluate operands.
	LimbWidth int
	// Base is the numeric base used to parse operands and print results.
	Base int
	// Upper uppercases alphabetic digits in output.
	Upper bool
	// ShowBase controls base-prefix rendering.
	ShowBase bigint.ShowBase
	// Timeout bounds each evaluated command.
	Timeout time.Duration
	// ParallelThreshold and FFTThreshold feed strategy selection when
	// Compare is enabled.
	ParallelThreshold int
	FFTThreshold      int
	// Compare runs every applicable strategy and prints a table instead
	// of dispatching straight to the fastest one.
	Compare bool
}

// REPL represents an interactive arbitrary-precision calculator session.
type REPL struct {
	config    REPLConfig
	presenter ResultPresenter
	in        io.Reader
	out       io.Writer
}

// NewREPL creates a new REPL instance.
func NewREPL(config REPLConfig) *REPL {
	if config.Base == 0 {
		config.Base = 10
	}
	if config.LimbWidth == 0 {
		config.LimbWidth = 32
	}
	return &REPL{
		config:    config,
		presenter: ResultPresenter{},
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start begins the interactive REPL session. It reads one line at a
// time until the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"bigint> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sArbitrary-Precision Calculator - Interactive Mode%s     %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<a> <op> <b>%s   - Evaluate, e.g. %s123 * 456%s (ops: %s)\n",
		ui.ColorYellow(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset(), strings.Join(supportedOps(), " "))
	fmt.Fprintf(r.out, "  %sbase <n>%s       - Set the numeric base (2-36) for input and output\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slimb <8|16|32>%s - Set the limb width used to evaluate operands\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %scompare%s        - Toggle running every applicable strategy\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s         - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s           - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s   - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

func supportedOps() []string {
	return []string{"+", "-", "*", "/", "%", "&", "|", "^", "<<", ">>", "cmp"}
}

func isSupportedOp(op string) bool {
	for _, o := range supportedOps() {
		if o == op {
			return true
		}
	}
	return false
}

// processCommand parses and executes a user command. Returns false if
// the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "base":
		r.cmdBase(args)
	case "limb":
		r.cmdLimb(args)
	case "compare", "cmp":
		if len(args) == 0 {
			r.cmdToggleCompare()
		} else {
			r.cmdEval(append([]string{parts[0]}, args...))
		}
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.cmdEval(parts)
	}

	return true
}

// cmdBase handles the "base" command.
func (r *REPL) cmdBase(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: base <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 2 || n > 36 {
		fmt.Fprintf(r.out, "%sInvalid base: %s (must be 2-36)%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	r.config.Base = n
	fmt.Fprintf(r.out, "Base set to %s%d%s\n", ui.ColorGreen(), n, ui.ColorReset())
}

// cmdLimb handles the "limb" command.
func (r *REPL) cmdLimb(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: limb <8|16|32>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || (n != 8 && n != 16 && n != 32) {
		fmt.Fprintf(r.out, "%sInvalid limb width: %s (must be 8, 16, or 32)%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	r.config.LimbWidth = n
	fmt.Fprintf(r.out, "Limb width set to %s%d%s bits\n", ui.ColorGreen(), n, ui.ColorReset())
}

// cmdToggleCompare handles "compare" with no arguments.
func (r *REPL) cmdToggleCompare() {
	r.config.Compare = !r.config.Compare
	status := "disabled"
	if r.config.Compare {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Strategy comparison: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Base:       %s%d%s\n", ui.ColorCyan(), r.config.Base, ui.ColorReset())
	fmt.Fprintf(r.out, "  Limb width: %s%d%s bits\n", ui.ColorCyan(), r.config.LimbWidth, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:    %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	compareStatus := "no"
	if r.config.Compare {
		compareStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Compare:    %s%s%s\n", ui.ColorCyan(), compareStatus, ui.ColorReset())
	fmt.Fprintln(r.out)
}

// cmdEval parses "<lhs> <op> <rhs>" and evaluates it with the currently
// configured limb width.
func (r *REPL) cmdEval(parts []string) {
	if len(parts) != 3 {
		fmt.Fprintf(r.out, "%sUnrecognized input. Expected: <a> <op> <b>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		return
	}

	lhsStr, op, rhsStr := parts[0], parts[1], parts[2]
	if !isSupportedOp(op) {
		fmt.Fprintf(r.out, "%sUnknown operator: %s%s\n", ui.ColorRed(), op, ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	var (
		results []orchestration.CalculationResult
		err     error
	)
	switch r.config.LimbWidth {
	case 8:
		results, err = Evaluate[uint8](ctx, lhsStr, op, rhsStr, r.config.Base, r.config.Compare, r.config.Upper, r.config.ShowBase)
	case 16:
		results, err = Evaluate[uint16](ctx, lhsStr, op, rhsStr, r.config.Base, r.config.Compare, r.config.Upper, r.config.ShowBase)
	default:
		results, err = Evaluate[uint32](ctx, lhsStr, op, rhsStr, r.config.Base, r.config.Compare, r.config.Upper, r.config.ShowBase)
	}
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	if r.config.Compare && len(results) > 1 {
		r.presenter.PresentComparisonTable(results, r.out)
	}
	_ = orchestration.AnalyzeComparisonResults(results, r.presenter, r.out)
}

// Evaluate parses both operands at the given limb width, runs the
// requested operator, and returns either a single-strategy result or,
// for "*" and "/" with compare enabled, every applicable strategy so
// callers can compare them. It is shared by the REPL and the one-shot
// CLI evaluation path.
func Evaluate[L bigint.Limb](ctx context.Context, lhsStr, op, rhsStr string, base int, compare, upper bool, showBase bigint.ShowBase) ([]orchestration.CalculationResult, error) {
	lhs, ok := bigint.TryParseInt[L](lhsStr, base)
	if !ok {
		return nil, fmt.Errorf("invalid operand %q for base %d", lhsStr, base)
	}
	rhs, ok := bigint.TryParseInt[L](rhsStr, base)
	if !ok {
		return nil, fmt.Errorf("invalid operand %q for base %d", rhsStr, base)
	}

	render := func(v *bigint.Int[L]) string { return v.ToString(base, upper, showBase) }

	switch op {
	case "*":
		if compare {
			return orchestration.ExecuteMultiplications(ctx, lhs, rhs, orchestration.GetMultiplicationStrategiesToRun(lhs, rhs)), nil
		}
		return oneResult("mul", render(lhs.Mul(rhs))), nil
	case "/":
		if compare {
			strategies := orchestration.GetDivisionStrategiesToRun(lhs, rhs)
			if strategies == nil {
				return nil, ErrDivisionByZero
			}
			return orchestration.ExecuteDivisions(ctx, lhs, rhs, strategies), nil
		}
		if rhs.IsZero() {
			return nil, ErrDivisionByZero
		}
		return oneResult("div", render(lhs.Div(rhs))), nil
	case "%":
		if rhs.IsZero() {
			return nil, ErrDivisionByZero
		}
		return oneResult("mod", render(lhs.Mod(rhs))), nil
	case "+":
		return oneResult("add", render(lhs.Add(rhs))), nil
	case "-":
		return oneResult("sub", render(lhs.Sub(rhs))), nil
	case "&":
		return oneResult("and", render(lhs.And(rhs))), nil
	case "|":
		return oneResult("or", render(lhs.Or(rhs))), nil
	case "^":
		return oneResult("xor", render(lhs.Xor(rhs))), nil
	case "<<", ">>":
		k, err := strconv.ParseUint(rhsStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("shift amount must be a non-negative decimal integer, got %q", rhsStr)
		}
		if op == "<<" {
			return oneResult("shl", render(lhs.Shl(k))), nil
		}
		return oneResult("shr", render(lhs.Shr(k))), nil
	case "cmp":
		return oneResult("cmp", strconv.Itoa(lhs.Cmp(rhs))), nil
	default:
		return nil, fmt.Errorf("unknown operator %q", op)
	}
}

func oneResult(name, value string) []orchestration.CalculationResult {
	return []orchestration.CalculationResult{{Name: name, Value: value}}
}

// Package tui implements a small bubbletea dashboard for watch mode: it
// reads "<a> <op> <b> [base]" expressions from stdin, one per line, and
// shows which division or multiplication algorithm was dispatched for the
// most recent operation alongside a sparkline of operand bit lengths.
package tui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/bigint/internal/bigerrors"
	"github.com/agbru/bigint/internal/bigint"
	"github.com/agbru/bigint/internal/config"
	"github.com/agbru/bigint/internal/format"
	"github.com/agbru/bigint/internal/orchestration"
	"github.com/agbru/bigint/internal/sysmon"
	"github.com/agbru/bigint/internal/ui"
)

// historySize caps how many evaluated lines the log panel keeps.
const historySize = 8

// evalEntry is one evaluated line of watch-mode input.
type evalEntry struct {
	lhs, op, rhs string
	algo         string
	value        string
	err          error
	bitLen       int
	dur          time.Duration
}

type lineMsg string
type stdinClosedMsg struct{}
type tickMsg time.Time
type sysStatsMsg sysmon.Stats

// Model is the bubbletea model backing the watch dashboard.
type Model struct {
	ctx     context.Context
	cfg     config.AppConfig
	version string
	keys    KeyMap

	scanner *bufio.Scanner
	history []evalEntry
	bitLens *RingBuffer
	sys     sysmon.Stats

	start       time.Time
	width       int
	stdinClosed bool
	quitting    bool
}

// NewModel builds a watch-dashboard model reading expressions from in.
func NewModel(ctx context.Context, cfg config.AppConfig, version string, in *os.File) Model {
	return Model{
		ctx:     ctx,
		cfg:     cfg,
		version: version,
		keys:    DefaultKeyMap(),
		scanner: bufio.NewScanner(in),
		bitLens: NewRingBuffer(60),
		start:   time.Now(),
		width:   80,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(readLineCmd(m.scanner), tickCmd(), sampleSysStatsCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case lineMsg:
		entry := evaluate(m.cfg, string(msg))
		m.history = append(m.history, entry)
		if len(m.history) > historySize {
			m.history = m.history[len(m.history)-historySize:]
		}
		if entry.err == nil {
			m.bitLens.Push(float64(entry.bitLen))
		}
		return m, readLineCmd(m.scanner)

	case stdinClosedMsg:
		m.stdinClosed = true
		return m, nil

	case tickMsg:
		if m.ctx.Err() != nil {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case sysStatsMsg:
		m.sys = sysmon.Stats(msg)
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("bigint watch  %s", m.version)
	b.WriteString(headerStyle.Render(title))
	b.WriteString("  ")
	b.WriteString(elapsedStyle.Render(format.FormatExecutionDuration(time.Since(m.start))))
	b.WriteString("\n\n")

	if len(m.history) == 0 {
		b.WriteString(logTimeStyle.Render("waiting for expressions on stdin...\n"))
	}
	for _, e := range m.history {
		b.WriteString(renderEntry(e))
		b.WriteString("\n")
	}

	if line := m.bitLens.Slice(); len(line) > 0 {
		b.WriteString("\n")
		b.WriteString(sparklineStyle.Render(RenderSparkline(normalizeBitLens(line))))
		b.WriteString(fmt.Sprintf(" (max %d bits)\n", int(maxOf(line))))
	}

	b.WriteString("\n")
	b.WriteString(sysStatsStyle.Render(fmt.Sprintf("cpu %.0f%%  mem %.0f%%", m.sys.CPUPercent, m.sys.MemPercent)))
	if m.stdinClosed {
		b.WriteString(logTimeStyle.Render("  (stdin closed)"))
	}
	b.WriteString("\n")
	b.WriteString(footerKeyStyle.Render(m.keys.Quit.Help().Key))
	b.WriteString(" " + footerDescStyle.Render(m.keys.Quit.Help().Desc))
	b.WriteString("\n")

	return panelStyle.Render(b.String())
}

func renderEntry(e evalEntry) string {
	if e.err != nil {
		return logTimeStyle.Render(fmt.Sprintf("%s %s %s", e.lhs, e.op, e.rhs)) + "  " +
			statusErrorStyle.Render("error") + " " + logErrorStyle.Render(e.err.Error())
	}
	algo := e.algo
	if algo == "" {
		algo = "-"
	}
	return logTimeStyle.Render(fmt.Sprintf("%s %s %s", e.lhs, e.op, e.rhs)) + " = " +
		logValueStyle.Render(truncate(e.value, 40)) + "  " +
		logAlgoStyle.Render("["+algo+"]") + "  " +
		logTimeStyle.Render(format.FormatExecutionDuration(e.dur))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func normalizeBitLens(vals []float64) []float64 {
	max := maxOf(vals)
	if max <= 0 {
		return vals
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = v / max * 100
	}
	return out
}

func maxOf(vals []float64) float64 {
	var max float64
	for _, v := range vals {
		if v > max {
			max = v
		}
	}
	return max
}

func readLineCmd(scanner *bufio.Scanner) tea.Cmd {
	return func() tea.Msg {
		if scanner.Scan() {
			return lineMsg(scanner.Text())
		}
		return stdinClosedMsg{}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg { return sysStatsMsg(sysmon.Sample()) }
}

// evaluate parses one "<a> <op> <b> [base]" line and reports both the
// rendered result and, for multiplication and division, the algorithm
// DivEq/MulEq actually dispatched to, mirroring the switch Evaluate uses in
// the one-shot and REPL paths but without the strategy-comparison overhead.
func evaluate(cfg config.AppConfig, line string) evalEntry {
	start := time.Now()
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return evalEntry{err: fmt.Errorf("expected: <a> <op> <b> [base]")}
	}
	lhsStr, op, rhsStr := fields[0], fields[1], fields[2]
	base := cfg.Base
	if len(fields) >= 4 {
		if b, err := strconv.Atoi(fields[3]); err == nil {
			base = b
		}
	}

	var entry evalEntry
	switch cfg.LimbWidth {
	case 8:
		entry = evaluateWidth[uint8](cfg, lhsStr, rhsStr, op, base)
	case 16:
		entry = evaluateWidth[uint16](cfg, lhsStr, rhsStr, op, base)
	default:
		entry = evaluateWidth[uint32](cfg, lhsStr, rhsStr, op, base)
	}
	entry.lhs, entry.op, entry.rhs = lhsStr, op, rhsStr
	entry.dur = time.Since(start)
	return entry
}

func evaluateWidth[L bigint.Limb](cfg config.AppConfig, lhsStr, rhsStr, op string, base int) evalEntry {
	lhs, ok := bigint.TryParseInt[L](lhsStr, base)
	if !ok {
		return evalEntry{err: fmt.Errorf("invalid operand %q for base %d", lhsStr, base)}
	}
	rhs, ok := bigint.TryParseInt[L](rhsStr, base)
	if !ok {
		return evalEntry{err: fmt.Errorf("invalid operand %q for base %d", rhsStr, base)}
	}

	bitLen := lhs.BitLen()
	if rb := rhs.BitLen(); rb > bitLen {
		bitLen = rb
	}
	render := func(v *bigint.Int[L]) string {
		return v.ToString(cfg.Base, cfg.Uppercase, bigint.ShowBase(cfg.ShowBase))
	}

	switch op {
	case "*":
		algo := orchestration.DispatchedMultiplicationName(lhs, rhs)
		return evalEntry{algo: algo, value: render(lhs.Mul(rhs)), bitLen: bitLen}
	case "/":
		if rhs.IsZero() {
			return evalEntry{err: fmt.Errorf("division by zero"), bitLen: bitLen}
		}
		algo := orchestration.DispatchedDivisionName(lhs, rhs)
		return evalEntry{algo: algo, value: render(lhs.Div(rhs)), bitLen: bitLen}
	case "%":
		if rhs.IsZero() {
			return evalEntry{err: fmt.Errorf("division by zero"), bitLen: bitLen}
		}
		algo := orchestration.DispatchedDivisionName(lhs, rhs)
		return evalEntry{algo: algo, value: render(lhs.Mod(rhs)), bitLen: bitLen}
	case "+":
		return evalEntry{algo: "-", value: render(lhs.Add(rhs)), bitLen: bitLen}
	case "-":
		return evalEntry{algo: "-", value: render(lhs.Sub(rhs)), bitLen: bitLen}
	case "&":
		return evalEntry{algo: "-", value: render(lhs.And(rhs)), bitLen: bitLen}
	case "|":
		return evalEntry{algo: "-", value: render(lhs.Or(rhs)), bitLen: bitLen}
	case "^":
		return evalEntry{algo: "-", value: render(lhs.Xor(rhs)), bitLen: bitLen}
	case "<<", ">>":
		k, err := strconv.ParseUint(rhsStr, 10, 64)
		if err != nil {
			return evalEntry{err: fmt.Errorf("shift amount must be a non-negative decimal integer, got %q", rhsStr), bitLen: bitLen}
		}
		if op == "<<" {
			return evalEntry{algo: "-", value: render(lhs.Shl(k)), bitLen: bitLen}
		}
		return evalEntry{algo: "-", value: render(lhs.Shr(k)), bitLen: bitLen}
	case "cmp":
		return evalEntry{algo: "-", value: strconv.Itoa(lhs.Cmp(rhs)), bitLen: bitLen}
	default:
		return evalEntry{err: fmt.Errorf("unknown operator %q", op), bitLen: bitLen}
	}
}

// Run starts the watch dashboard reading expressions from stdin until ctx is
// canceled or the user quits, returning a process exit code.
func Run(ctx context.Context, cfg config.AppConfig, version string) int {
	ui.InitTheme(false)
	initTUIStyles()

	m := NewModel(ctx, cfg, version, os.Stdin)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "watch dashboard:", err)
		return bigerrors.ExitErrorGeneric
	}
	if ctx.Err() != nil {
		return bigerrors.ExitErrorCanceled
	}
	return bigerrors.ExitSuccess
}

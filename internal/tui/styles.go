package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bigint/internal/ui"
)

// Style variables for the watch dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	versionStyle     lipgloss.Style
	elapsedStyle     lipgloss.Style
	logTimeStyle     lipgloss.Style
	logAlgoStyle     lipgloss.Style
	logValueStyle    lipgloss.Style
	logErrorStyle    lipgloss.Style
	footerKeyStyle   lipgloss.Style
	footerDescStyle  lipgloss.Style
	statusDoneStyle  lipgloss.Style
	statusErrorStyle lipgloss.Style
	sparklineStyle   lipgloss.Style
	sysStatsStyle    lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Bg).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Background(t.Bg).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	logTimeStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	logAlgoStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	logValueStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	logErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statusDoneStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	statusErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	sparklineStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	sysStatsStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}

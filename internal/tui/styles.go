package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/partviz/internal/ui"
)

// Dashboard styles, derived from the active ui theme by initTUIStyles.
var (
	panelStyle, headerStyle                               lipgloss.Style
	titleStyle, versionStyle, elapsedStyle                lipgloss.Style
	laneTitleStyle, cellStyle, cellMarkedStyle            lipgloss.Style
	pivotStyle, boundaryStyle, scanStyle                  lipgloss.Style
	metricLabelStyle, metricValueStyle                    lipgloss.Style
	progressBarStyle, sparklineStyle                      lipgloss.Style
	successStyle, errorStyle, dimStyle                    lipgloss.Style
	footerKeyStyle, footerDescStyle                       lipgloss.Style
	statusRunningStyle, statusDoneStyle, statusErrorStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

func fg(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// initTUIStyles must run again after ui.InitTheme so --no-color reaches the
// dashboard.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = fg(t.Text).Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1)
	headerStyle = fg(t.Accent).Bold(true).Padding(0, 1)
	titleStyle = fg(t.Accent).Bold(true)
	versionStyle = fg(t.Dim)
	elapsedStyle = fg(t.Accent)

	// Lanes: one color per marker role.
	laneTitleStyle = fg(t.Accent).Bold(true)
	cellStyle = fg(t.Text)
	cellMarkedStyle = fg(t.Text).Bold(true).Underline(true)
	pivotStyle = fg(t.Pivot).Bold(true)
	boundaryStyle = fg(t.Boundary).Bold(true)
	scanStyle = fg(t.Scan).Bold(true)
	metricLabelStyle = fg(t.Dim)
	metricValueStyle = fg(t.Accent).Bold(true)
	progressBarStyle = fg(t.Accent)
	sparklineStyle = fg(t.Warning)

	successStyle = fg(t.Success)
	errorStyle = fg(t.Error)
	dimStyle = fg(t.Dim)

	footerKeyStyle = fg(t.Accent).Bold(true)
	footerDescStyle = fg(t.Dim)
	statusRunningStyle = fg(t.Success).Bold(true)
	statusDoneStyle = fg(t.Accent).Bold(true)
	statusErrorStyle = fg(t.Error).Bold(true)
}

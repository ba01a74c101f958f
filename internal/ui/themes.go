package ui

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the ANSI sequences of the plain CLI output, one per role.
// Every field of the colorless theme is empty.
type Theme struct {
	Name string

	Primary   string // scheme names, keys
	Secondary string // labels
	Success   string
	Warning   string // cancellations
	Error     string // failures, mismatches
	Info      string // durations, counters
	Accent    string // pivot in printed sequences
	Bold      string
	Underline string
	Reset     string
}

// fg256 returns the escape sequence selecting color n of the 256-color palette.
func fg256(n int) string { return fmt.Sprintf("\033[38;5;%dm", n) }

func palette(name string, primary, secondary, success, warning, failure, info, accent int) Theme {
	return Theme{
		Name:      name,
		Primary:   fg256(primary),
		Secondary: fg256(secondary),
		Success:   fg256(success),
		Warning:   fg256(warning),
		Error:     fg256(failure),
		Info:      fg256(info),
		Accent:    fg256(accent),
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}
}

var (
	DarkTheme    = palette("dark", 75, 246, 114, 221, 203, 80, 213)
	LightTheme   = palette("light", 25, 241, 34, 166, 160, 31, 127)
	NoColorTheme = Theme{Name: "none"}

	themeMu      sync.RWMutex
	currentTheme = DarkTheme
)

// TUITheme is the lipgloss palette of the dashboard. Pivot, Boundary and
// Scan give each marker role its own color so the cursors stay apart when
// they share a cell neighborhood.
type TUITheme struct {
	Text, Border, Accent, Dim lipgloss.TerminalColor
	Success, Warning, Error   lipgloss.TerminalColor
	Pivot, Boundary, Scan     lipgloss.TerminalColor
}

var (
	DarkTUITheme = TUITheme{
		Text:     lipgloss.Color("#D8DEE9"),
		Border:   lipgloss.Color("#4C6EF5"),
		Accent:   lipgloss.Color("#74C0FC"),
		Dim:      lipgloss.Color("#707880"),
		Success:  lipgloss.Color("#8CE99A"),
		Warning:  lipgloss.Color("#FFC078"),
		Error:    lipgloss.Color("#FF6B6B"),
		Pivot:    lipgloss.Color("#F783AC"),
		Boundary: lipgloss.Color("#FFD43B"),
		Scan:     lipgloss.Color("#63E6BE"),
	}

	NoColorTUITheme = TUITheme{
		Text: lipgloss.NoColor{}, Border: lipgloss.NoColor{}, Accent: lipgloss.NoColor{}, Dim: lipgloss.NoColor{},
		Success: lipgloss.NoColor{}, Warning: lipgloss.NoColor{}, Error: lipgloss.NoColor{},
		Pivot: lipgloss.NoColor{}, Boundary: lipgloss.NoColor{}, Scan: lipgloss.NoColor{},
	}
)

// GetCurrentTheme returns the active CLI theme.
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// GetCurrentTUITheme returns the dashboard palette matching the active theme.
func GetCurrentTUITheme() TUITheme {
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// SetCurrentTheme replaces the active theme.
func SetCurrentTheme(t Theme) {
	themeMu.Lock()
	currentTheme = t
	themeMu.Unlock()
}

// SetTheme selects a theme by name. Unknown names fall back to dark.
func SetTheme(name string) {
	switch name {
	case LightTheme.Name:
		SetCurrentTheme(LightTheme)
	case NoColorTheme.Name:
		SetCurrentTheme(NoColorTheme)
	default:
		SetCurrentTheme(DarkTheme)
	}
}

// InitTheme picks the startup theme. --no-color and a NO_COLOR variable
// (https://no-color.org/) both disable colors.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterModel renders the key help and the run status.
type FooterModel struct {
	keymap KeyMap
	done   bool
	failed bool
	width  int
}

// NewFooterModel creates a footer for km.
func NewFooterModel(km KeyMap) FooterModel {
	return FooterModel{keymap: km}
}

// SetDone marks the runs as finished.
func (f *FooterModel) SetDone(done bool) { f.done = done }

// SetError marks the runs as failed.
func (f *FooterModel) SetError(failed bool) { f.failed = failed }

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) { f.width = w }

// View renders the footer.
func (f FooterModel) View() string {
	var help []string
	for _, b := range f.keymap.ShortHelp() {
		help = append(help, footerKeyStyle.Render(b.Help().Key)+" "+footerDescStyle.Render(b.Help().Desc))
	}
	left := " " + strings.Join(help, "  ")

	var status string
	switch {
	case f.failed:
		status = statusErrorStyle.Render("Error")
	case f.done:
		status = statusDoneStyle.Render("Done")
	default:
		status = statusRunningStyle.Render("Sorting")
	}

	gap := max(f.width-lipgloss.Width(left)-lipgloss.Width(status)-1, 1)
	return left + strings.Repeat(" ", gap) + status
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/partviz/internal/format"
	"github.com/agbru/partviz/internal/sysmon"
)

// HeaderModel is the top bar of the dashboard.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	mode      string
	keys      int
	eta       time.Duration
	sys       sysmon.Stats
	sampled   bool
	width     int
}

func NewHeaderModel(version, mode string, keys int) HeaderModel {
	return HeaderModel{startTime: time.Now(), version: version, mode: mode, keys: keys}
}

// SetDone stops the clock and clears the estimate.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
	h.eta = 0
}

func (h *HeaderModel) SetETA(eta time.Duration) { h.eta = eta }

// SetSysStats records the latest host load sample.
func (h *HeaderModel) SetSysStats(s sysmon.Stats) {
	h.sys = s
	h.sampled = true
}

// Reset restarts the clock for a new generation of runs.
func (h *HeaderModel) Reset() {
	h.startTime, h.endTime, h.eta = time.Now(), time.Time{}, 0
}

func (h *HeaderModel) SetWidth(w int) { h.width = w }

func (h HeaderModel) elapsed() time.Duration {
	if h.endTime.IsZero() {
		return time.Since(h.startTime)
	}
	return h.endTime.Sub(h.startTime)
}

// View lays out "partviz [version] | N keys, mode | Elapsed | ETA" on the
// left and the host load on the right. The load is dropped when the line
// would overflow.
func (h HeaderModel) View() string {
	name := "partviz"
	if h.version != "" && h.version != "dev" {
		name += " " + h.version
	}
	segments := []string{
		titleStyle.Render(name),
		versionStyle.Render(fmt.Sprintf("%d keys, %s", h.keys, h.mode)),
		elapsedStyle.Render("Elapsed: " + format.FormatExecutionDuration(h.elapsed())),
	}
	if h.endTime.IsZero() && h.eta > 0 {
		segments = append(segments, elapsedStyle.Render("ETA: "+format.FormatETA(h.eta)))
	}
	left := strings.Join(segments, versionStyle.Render(" | "))

	right := ""
	if h.sampled {
		right = versionStyle.Render(h.sys.String())
	}
	// headerStyle pads one cell on each side.
	room := h.width - 2 - lipgloss.Width(left)
	gap := room - lipgloss.Width(right)
	if gap < 1 {
		right, gap = "", max(room, 0)
	}
	return headerStyle.Width(h.width).Render(left + strings.Repeat(" ", gap) + right)
}

package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/partviz/internal/format"
	"github.com/agbru/partviz/internal/orchestration"
	"github.com/agbru/partviz/internal/viz"
)

const (
	// activityCapacity is the number of ticks kept per lane.
	activityCapacity = 64
	// laneBarWidth is the width of the per-lane progress bar.
	laneBarWidth = 20
	// laneChrome is the horizontal space taken by the panel border and padding.
	laneChrome = 4
)

type laneStatus int

const (
	laneRunning laneStatus = iota
	laneDone
	laneFailed
)

type laneMarker struct {
	kind  viz.MarkerKind
	index int
}

// LaneModel mirrors one run's sink: the slot labels and the live markers.
type LaneModel struct {
	scheme    string
	values    []int
	cellWidth int
	markers   map[viz.MarkerHandle]laneMarker
	progress  float64
	labels    int
	pending   int
	activity  *ActivityHistory
	status    laneStatus
	result    orchestration.RunResult
	width     int
}

// NewLaneModel creates a lane showing input before any event.
func NewLaneModel(scheme string, input []int) LaneModel {
	cw := 1
	for _, v := range input {
		cw = max(cw, len(strconv.Itoa(v)))
	}
	return LaneModel{
		scheme:    scheme,
		values:    slices.Clone(input),
		cellWidth: cw,
		markers:   make(map[viz.MarkerHandle]laneMarker),
		activity:  NewActivityHistory(activityCapacity),
	}
}

// Apply replays one sink call on the lane.
func (l *LaneModel) Apply(e viz.Event) {
	switch e.Kind {
	case viz.EventMarkerCreated, viz.EventMarkerMoved:
		l.markers[e.Marker] = laneMarker{kind: e.MarkerKind, index: e.Index}
	case viz.EventLabelSet:
		if e.Index >= 0 && e.Index < len(l.values) {
			l.values[e.Index] = e.Value
		}
		l.labels++
	case viz.EventMarkerRemoved:
		delete(l.markers, e.Marker)
	case viz.EventWait:
		return
	}
	l.pending++
}

// SetProgress records the run's progress.
func (l *LaneModel) SetProgress(v float64) {
	l.progress = v
}

// Finish records the outcome of the run. The labels are replaced by the
// run's final output and the markers are cleared.
func (l *LaneModel) Finish(res orchestration.RunResult) {
	l.result = res
	l.status = laneDone
	if res.Err != nil {
		l.status = laneFailed
	} else {
		l.progress = 1
	}
	if len(res.Output) == len(l.values) {
		copy(l.values, res.Output)
	}
	clear(l.markers)
}

// Tick closes the current activity sample.
func (l *LaneModel) Tick() {
	l.activity.Push(l.pending)
	l.pending = 0
}

// SetWidth updates the available width.
func (l *LaneModel) SetWidth(w int) {
	l.width = w
}

// View renders the lane panel.
func (l LaneModel) View() string {
	start, end := l.window()
	lines := []string{
		l.titleLine(),
		l.valuesLine(start, end),
		l.markersLine(start, end),
		l.statsLine(),
	}
	style := panelStyle
	if l.width > 0 {
		style = style.Width(l.width - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (l LaneModel) titleLine() string {
	var status string
	switch l.status {
	case laneDone:
		status = statusDoneStyle.Render("done")
	case laneFailed:
		status = statusErrorStyle.Render("failed")
	default:
		status = statusRunningStyle.Render("running")
	}
	bar := progressBarStyle.Render(format.ProgressBar(l.progress, laneBarWidth))
	return fmt.Sprintf("%s  %s  %s %5.1f%%",
		laneTitleStyle.Render(strings.ToUpper(l.scheme)), status, bar, l.progress*100)
}

// window returns the range of slots that fit the panel, centered on the
// live markers when the sequence is too long.
func (l LaneModel) window() (int, int) {
	n := len(l.values)
	if l.width <= 0 {
		return 0, n
	}
	visible := max(1, (l.width-laneChrome+1)/(l.cellWidth+1))
	if n <= visible {
		return 0, n
	}
	center, count := 0, 0
	for _, m := range l.markers {
		if m.index >= 0 && m.index < n {
			center += m.index
			count++
		}
	}
	if count > 0 {
		center /= count
	}
	start := min(max(center-visible/2, 0), n-visible)
	return start, start + visible
}

func (l LaneModel) valuesLine(start, end int) string {
	marked := make(map[int]bool, len(l.markers))
	for _, m := range l.markers {
		marked[m.index] = true
	}
	cells := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		text := fmt.Sprintf("%*d", l.cellWidth, l.values[i])
		if marked[i] {
			cells = append(cells, cellMarkedStyle.Render(text))
		} else {
			cells = append(cells, cellStyle.Render(text))
		}
	}
	return strings.Join(cells, " ")
}

func (l LaneModel) markersLine(start, end int) string {
	bySlot := make(map[int][]viz.MarkerKind, len(l.markers))
	for _, m := range l.markers {
		bySlot[m.index] = append(bySlot[m.index], m.kind)
	}
	cells := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		kinds := bySlot[i]
		slices.Sort(kinds)
		if len(kinds) > l.cellWidth {
			kinds = kinds[:l.cellWidth]
		}
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", l.cellWidth-len(kinds)))
		for _, k := range kinds {
			b.WriteString(markerGlyph(k))
		}
		cells = append(cells, b.String())
	}
	return strings.Join(cells, " ")
}

// markerGlyph renders a marker kind as one styled character.
func markerGlyph(k viz.MarkerKind) string {
	switch k {
	case viz.MarkerPivot:
		return pivotStyle.Render("P")
	case viz.MarkerBoundaryI:
		return boundaryStyle.Render("i")
	case viz.MarkerScanJ:
		return scanStyle.Render("j")
	case viz.MarkerScanLeft:
		return scanStyle.Render("L")
	case viz.MarkerScanRight:
		return scanStyle.Render("R")
	}
	return "?"
}

func (l LaneModel) statsLine() string {
	label := func(name, value string) string {
		return metricLabelStyle.Render(name+": ") + metricValueStyle.Render(value)
	}
	var parts []string
	if l.status == laneRunning {
		parts = append(parts, label("label updates", strconv.Itoa(l.labels)))
	} else {
		s := l.result.Stats
		parts = append(parts,
			label("comparisons", format.FormatCount(s.Comparisons)),
			label("swaps", format.FormatCount(s.Swaps)),
			label("partitions", format.FormatCount(s.Partitions)),
			label("depth", strconv.Itoa(s.MaxDepth)),
		)
	}
	line := strings.Join(parts, "  ")
	if spark := l.activity.Sparkline(activityCapacity); spark != "" {
		budget := l.width - laneChrome - lipgloss.Width(line) - 2
		if l.width <= 0 || budget > 0 {
			if l.width > 0 && len([]rune(spark)) > budget {
				spark = string([]rune(spark)[len([]rune(spark))-budget:])
			}
			line += "  " + sparklineStyle.Render(spark)
		}
	}
	return line
}

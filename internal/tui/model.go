package tui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/partviz/internal/errors"
	"github.com/agbru/partviz/internal/orchestration"
	"github.com/agbru/partviz/internal/quicksort"
	"github.com/agbru/partviz/internal/sysmon"
)

// tickInterval is the refresh period of the elapsed time and sparklines.
const tickInterval = 250 * time.Millisecond

// Session describes the runs a dashboard executes.
type Session struct {
	Input   []int
	Schemes []quicksort.Scheme
	// Speed paces every lane; zero disables pacing.
	Speed float64
	// Options are passed to orchestration.ExecuteRuns. RunObserver and
	// Logger are honored; FinalPause is set from Options.Timing.
	Options orchestration.RunOptions
}

// ExecutionState tracks the current generation of runs. A restart bumps
// the generation so messages from the canceled runs are ignored.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
	done       bool
	exitCode   int
	finished   []orchestration.RunResult
}

// Model is the dashboard: a header, one lane per scheme, the results panel
// and the footer.
type Model struct {
	header  HeaderModel
	lanes   []LaneModel
	results ResultsModel
	footer  FooterModel

	keymap KeyMap

	ExecutionState

	width  int
	height int

	parentCtx context.Context
	session   Session
	ref       *programRef
}

// NewModel prepares the dashboard. The runs start from Init.
func NewModel(parentCtx context.Context, session Session, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	km := DefaultKeyMap()
	mode := string(session.Options.Mode)
	if mode == "" {
		mode = string(orchestration.ModeConcurrent)
	}
	return Model{
		header: NewHeaderModel(version, mode, len(session.Input)),
		lanes:  newLanes(session),
		footer: NewFooterModel(km),
		keymap: km,
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		session:   session,
		ref:       &programRef{},
	}
}

func newLanes(session Session) []LaneModel {
	lanes := make([]LaneModel, len(session.Schemes))
	for i, s := range session.Schemes {
		lanes[i] = NewLaneModel(s.Name(), session.Input)
	}
	return lanes
}

func (m Model) Init() tea.Cmd {
	return m.launch()
}

// launch starts the runs of the current generation together with the
// refresh ticker and the context watcher.
func (m Model) launch() tea.Cmd {
	return tea.Batch(
		tickCmd(m.generation),
		startRunsCmd(m.ref, m.ctx, m.session, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case VizEventMsg:
		if msg.Generation == m.generation && msg.Lane >= 0 && msg.Lane < len(m.lanes) {
			m.lanes[msg.Lane].Apply(msg.Event)
		}
		return m, nil

	case ProgressMsg:
		if msg.Generation == m.generation && msg.RunIndex >= 0 && msg.RunIndex < len(m.lanes) {
			m.lanes[msg.RunIndex].SetProgress(msg.Value)
			m.header.SetETA(msg.ETA)
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case ComparisonResultsMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.results.SetResults(msg.Results)
		for _, res := range msg.Results {
			for i := range m.lanes {
				if m.lanes[i].scheme == res.Scheme {
					m.lanes[i].Finish(res)
				}
			}
		}
		return m, nil

	case FinalResultMsg:
		if msg.Generation == m.generation {
			m.results.SetFinal(msg.Result)
		}
		return m, nil

	case ErrorMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.results.SetError(msg.Err, msg.Duration)
		m.footer.SetError(true)
		return m, nil

	case TickMsg:
		// Each generation owns one tick chain; a restart lets the old one lapse.
		if m.done || msg.Generation != m.generation {
			return m, nil
		}
		for i := range m.lanes {
			m.lanes[i].Tick()
		}
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd(m.generation))

	case SysStatsMsg:
		m.header.SetSysStats(msg.Stats)
		return m, nil

	case RunsCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a restarted session
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.finished = msg.Results
		m.results.SetComplete(msg.ExitCode)
		m.header.SetDone()
		m.footer.SetDone(true)
		if msg.ExitCode == apperrors.ExitErrorMismatch {
			m.footer.SetError(true)
		}
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		// A finished dashboard stays up past the run deadline until the user quits.
		if m.done && errors.Is(msg.Err, context.DeadlineExceeded) {
			return m, nil
		}
		if !m.done {
			m.exitCode = apperrors.HandleRunError(msg.Err, 0, io.Discard, nil)
		}
		m.done = true
		m.header.SetDone()
		m.footer.SetDone(true)
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if !m.done {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Restart):
		if m.cancel != nil {
			m.cancel()
		}

		m.generation++
		m.ctx, m.cancel = context.WithCancel(m.parentCtx)

		m.header.Reset()
		m.lanes = newLanes(m.session)
		m.results = ResultsModel{}
		m.footer.SetDone(false)
		m.footer.SetError(false)
		m.done = false
		m.exitCode = apperrors.ExitSuccess
		m.finished = nil
		m.layoutPanels()
		return m, m.launch()
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	parts := []string{m.header.View()}
	for _, l := range m.lanes {
		parts = append(parts, l.View())
	}
	parts = append(parts, m.results.View(), m.footer.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.results.SetWidth(m.width)
	for i := range m.lanes {
		m.lanes[i].SetWidth(m.width)
	}
}

// Run shows the dashboard on the alternate screen until the user quits or
// ctx ends. It returns the exit code and the results of the last generation
// that completed, or nil when none did.
func Run(ctx context.Context, session Session, version string) (int, []orchestration.RunResult) {
	initTUIStyles()

	model := NewModel(ctx, session, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.ref.SetProgram(p)

	final, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric, nil
	}
	m, ok := final.(Model)
	if !ok {
		return apperrors.ExitSuccess, nil
	}
	m.cancel()
	return m.exitCode, m.finished
}

// startRunsCmd returns a tea.Cmd that launches the orchestration. Every
// lane renders through a paced sink forwarding its events to the program.
func startRunsCmd(ref *programRef, ctx context.Context, session Session, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref, generation: gen}
		presenter := &TUIResultPresenter{ref: ref, generation: gen}

		opts := session.Options
		if session.Speed > 0 {
			opts.FinalPause = time.Duration(float64(opts.Timing.Final) / session.Speed)
		}
		results := orchestration.ExecuteRuns(ctx, session.Input, session.Schemes, opts,
			laneSinks(ref, session.Speed, gen), reporter, io.Discard)
		exitCode := orchestration.AnalyzeRunResults(results,
			orchestration.PresentationOptions{ShowOutput: true}, presenter, presenter, io.Discard)

		return RunsCompleteMsg{Generation: gen, ExitCode: exitCode, Results: results}
	}
}

func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Generation: gen, Time: t}
	})
}

// sampleSysStatsCmd samples the host load off the update loop.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg{Stats: sysmon.Sample()}
	}
}

// watchContextCmd reports the end of ctx, whether by signal, deadline or
// restart.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}

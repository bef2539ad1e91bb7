package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/genricoloni/cliploop/internal/domain"
	"github.com/genricoloni/cliploop/internal/loop"
	"go.uber.org/zap"
)

type focus int

const (
	focusScrub focus = iota
	focusStart
	focusEnd
	focusCount
)

func (f focus) String() string {
	switch f {
	case focusStart:
		return "start"
	case focusEnd:
		return "end"
	default:
		return "position"
	}
}

type playbackMsg domain.PlaybackEvent

type playbackClosedMsg struct{}

type tickMsg time.Time

// Model is the interactive front end: the range selector, then the loop
// previewer once a range is confirmed. All screen state is mutated from
// Update, so the screens need no locking.
type Model struct {
	ctx      context.Context
	logger   *zap.Logger
	router   *loop.Router
	events   <-chan domain.PlaybackEvent
	focus    focus
	step     float64
	width    int
	notice   string
	spinner  int
	quitting bool
}

// NewModel creates the model and mounts a fresh range selector
func NewModel(ctx context.Context, logger *zap.Logger, pb domain.Playback) Model {
	router := loop.NewRouter(logger, pb)
	router.Current().Mount(ctx)

	return Model{
		ctx:    ctx,
		logger: logger,
		router: router,
		events: pb.Events(),
		step:   1,
	}
}

// Init starts listening to the playback stream
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), tickCmd())
}

// waitForEvent delivers the next playback event as a message
func waitForEvent(events <-chan domain.PlaybackEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return playbackClosedMsg{}
		}
		return playbackMsg(ev)
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update applies one message
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case playbackMsg:
		m.router.HandleEvent(m.ctx, domain.PlaybackEvent(msg))
		return m, waitForEvent(m.events)

	case playbackClosedMsg:
		m.logger.Info("Playback stream closed, leaving interactive mode")
		m.quitting = true
		return m, tea.Quit

	case tickMsg:
		if m.router.Current().Sync().Loading() {
			m.spinner = (m.spinner + 1) % len(spinnerFrames)
		}
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	}

	if m.router.Previewer() != nil {
		switch msg.String() {
		case "esc", "backspace":
			m.router.Back(m.ctx)
			m.focus = focusScrub
			m.notice = ""
		}
		return m, nil
	}

	sel := m.router.Selector()
	m.notice = ""

	switch msg.String() {
	case "tab", "down", "j":
		sel.ReleaseScrub(m.ctx)
		m.focus = (m.focus + 1) % focusCount
	case "shift+tab", "up", "k":
		sel.ReleaseScrub(m.ctx)
		m.focus = (m.focus + focusCount - 1) % focusCount
	case "left", "h":
		m.nudge(sel, -m.step)
	case "right", "l":
		m.nudge(sel, m.step)
	case "[":
		m.step = decreaseStep(m.step)
	case "]":
		m.step = increaseStep(m.step)
	case " ":
		sel.ReleaseScrub(m.ctx)
	case "enter":
		if sel.ReleaseScrub(m.ctx) {
			return m, nil
		}
		return m.confirm()
	case "p":
		sel.ReleaseScrub(m.ctx)
		return m.confirm()
	}
	return m, nil
}

func (m Model) nudge(sel *loop.RangeSelector, delta float64) {
	switch m.focus {
	case focusStart:
		sel.NudgeStart(delta)
	case focusEnd:
		sel.NudgeEnd(delta)
	default:
		sel.NudgeScrub(delta)
	}
}

func (m Model) confirm() (tea.Model, tea.Cmd) {
	p, err := m.router.Confirm(m.ctx)
	if errors.Is(err, loop.ErrNotLoaded) {
		m.notice = "Video is still loading"
		return m, nil
	}
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.logger.Info("Range confirmed",
		zap.Float64("start", p.Boundaries().Start),
		zap.Float64("end", p.Boundaries().End))
	return m, nil
}

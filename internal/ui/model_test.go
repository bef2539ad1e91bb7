package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/genricoloni/cliploop/internal/domain"
	"go.uber.org/zap"
)

// fakePlayback records seeks and exposes a stream the test never writes to
type fakePlayback struct {
	events chan domain.PlaybackEvent
	seeks  []int64
}

func newFakePlayback() *fakePlayback {
	return &fakePlayback{events: make(chan domain.PlaybackEvent)}
}

func (f *fakePlayback) Start(context.Context) error         { return nil }
func (f *fakePlayback) Stop(context.Context) error          { return nil }
func (f *fakePlayback) Load(context.Context) error          { return nil }
func (f *fakePlayback) Events() <-chan domain.PlaybackEvent { return f.events }
func (f *fakePlayback) SeekTo(_ context.Context, ms int64) error {
	f.seeks = append(f.seeks, ms)
	return nil
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
	}
	return m
}

func loadedMsg(durationMillis, positionMillis int64) playbackMsg {
	return playbackMsg(domain.StatusEvent(domain.PlaybackSnapshot{
		IsLoaded:       true,
		DurationMillis: durationMillis,
		PositionMillis: positionMillis,
	}))
}

func TestConfirmBeforeLoadIsRefused(t *testing.T) {
	pb := newFakePlayback()
	m := NewModel(context.Background(), zap.NewNop(), pb)

	m = send(t, m, key("p"))

	if m.router.Previewer() != nil {
		t.Fatal("expected to stay on the selector")
	}
	if m.notice == "" {
		t.Fatal("expected a notice explaining why preview is unavailable")
	}
	if !strings.Contains(m.View(), "Preview available once the video loads") {
		t.Fatalf("expected disabled hint in view:\n%s", m.View())
	}
}

func TestNudgeFocusedBoundary(t *testing.T) {
	pb := newFakePlayback()
	m := NewModel(context.Background(), zap.NewNop(), pb)
	m = send(t, m, loadedMsg(60_000, 0))

	// focus start, then end
	m = send(t, m, key("tab"), key("right"), key("right"))
	m = send(t, m, key("tab"), key("]"), key("right"))

	r := m.router.Selector().Selection()
	if r.StartSeconds != 2 {
		t.Fatalf("expected start 2, got %v", r.StartSeconds)
	}
	if r.EndSeconds != 12 {
		t.Fatalf("expected end 12, got %v", r.EndSeconds)
	}
	if len(pb.seeks) != 0 {
		t.Fatalf("boundary edits must not seek, got %v", pb.seeks)
	}
}

func TestScrubCommitsOnRelease(t *testing.T) {
	pb := newFakePlayback()
	m := NewModel(context.Background(), zap.NewNop(), pb)
	m = send(t, m, loadedMsg(60_000, 0))

	m = send(t, m, key("right"), key("right"), key("right"))
	if len(pb.seeks) != 0 {
		t.Fatalf("dragging must not seek, got %v", pb.seeks)
	}
	if !m.router.Selector().Dragging() {
		t.Fatal("expected a drag in progress")
	}

	m = send(t, m, key("enter"))

	if len(pb.seeks) != 1 || pb.seeks[0] != 3000 {
		t.Fatalf("expected one seek to 3000, got %v", pb.seeks)
	}
	if m.router.Previewer() != nil {
		t.Fatal("releasing a scrub must not confirm")
	}
}

func TestConfirmAndBack(t *testing.T) {
	pb := newFakePlayback()
	m := NewModel(context.Background(), zap.NewNop(), pb)
	m = send(t, m, loadedMsg(60_000, 0))
	m = send(t, m, key("tab"), key("]"), key("]"), key("right")) // start 5

	m = send(t, m, key("enter"))

	p := m.router.Previewer()
	if p == nil {
		t.Fatal("expected the previewer after confirm")
	}
	if got := p.Boundaries(); got.Start != 5 || got.End != 10 {
		t.Fatalf("unexpected boundaries %+v", got)
	}
	if len(pb.seeks) != 1 || pb.seeks[0] != 5000 {
		t.Fatalf("expected mount seek to 5000, got %v", pb.seeks)
	}
	if !strings.Contains(m.View(), "Playing from 0:05 to 0:10") {
		t.Fatalf("unexpected view:\n%s", m.View())
	}

	m = send(t, m, key("esc"))

	if m.router.Previewer() != nil {
		t.Fatal("expected to be back on the selector")
	}
	r := m.router.Selector().Selection()
	if r.StartSeconds != 0 || r.EndSeconds != 10 {
		t.Fatalf("expected a fresh (0, 10) range, got %+v", r)
	}
}

func TestPlaybackMessagesKeepListening(t *testing.T) {
	pb := newFakePlayback()
	m := NewModel(context.Background(), zap.NewNop(), pb)

	next, cmd := m.Update(loadedMsg(20_000, 10_500))
	if cmd == nil {
		t.Fatal("expected a command waiting for the next event")
	}
	if len(pb.seeks) != 1 || pb.seeks[0] != 0 {
		t.Fatalf("expected loop seek to 0, got %v", pb.seeks)
	}

	_, cmd = next.Update(playbackClosedMsg{})
	if cmd == nil {
		t.Fatal("expected quit command when the stream closes")
	}
}

func TestQuit(t *testing.T) {
	m := NewModel(context.Background(), zap.NewNop(), newFakePlayback())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.View() != "" {
		t.Fatal("expected empty view after quitting")
	}
}

func TestSelectorViewShowsLoadingAndRange(t *testing.T) {
	m := NewModel(context.Background(), zap.NewNop(), newFakePlayback())

	view := m.View()
	for _, want := range []string{"Select loop range", "Loading video", "Start:    0:00", "End:      0:10", "/ 1:40"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestStepLadder(t *testing.T) {
	if got := increaseStep(1); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
	if got := increaseStep(60); got != 60 {
		t.Fatalf("expected 60, got %v", got)
	}
	if got := decreaseStep(1); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
	if got := decreaseStep(0.1); got != 0.1 {
		t.Fatalf("expected 0.1, got %v", got)
	}
}

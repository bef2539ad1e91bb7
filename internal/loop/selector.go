package loop

import (
	"context"
	"errors"
	"math"

	"github.com/genricoloni/cliploop/internal/domain"
	"go.uber.org/zap"
)

const (
	// DefaultStartSeconds is the start boundary of a freshly mounted selector
	DefaultStartSeconds = 0.0
	// DefaultEndSeconds is the end boundary of a freshly mounted selector
	DefaultEndSeconds = 10.0
)

// ErrNotLoaded is returned when confirming before any loaded snapshot arrived
var ErrNotLoaded = errors.New("playback not loaded")

// RangeSelector owns the mutable range and the free scrub control.
// The loop check runs against the live selection, so edits in progress take
// effect on the next tick.
type RangeSelector struct {
	Controller
	selection    domain.RangeSelection
	dragging     bool
	pendingScrub float64
}

// NewRangeSelector creates a selector with the default (0, 10) range
func NewRangeSelector(logger *zap.Logger, seeker domain.Seeker) *RangeSelector {
	s := &RangeSelector{
		selection: domain.RangeSelection{
			StartSeconds: DefaultStartSeconds,
			EndSeconds:   DefaultEndSeconds,
		},
	}
	s.Controller = newController(logger, seeker, "selector", s.Boundaries)
	return s
}

// Mount has no side effects for the selector
func (s *RangeSelector) Mount(ctx context.Context) {
	s.logger.Debug("Range selector mounted")
}

// Selection returns a copy of the current range
func (s *RangeSelector) Selection() domain.RangeSelection {
	return s.selection
}

// Boundaries returns the current range as loop boundaries
func (s *RangeSelector) Boundaries() domain.LoopBoundaries {
	return domain.LoopBoundaries{Start: s.selection.StartSeconds, End: s.selection.EndSeconds}
}

// SetStart moves the start boundary, clamped to the control span
func (s *RangeSelector) SetStart(seconds float64) {
	s.selection.StartSeconds = s.clampToSpan(seconds)
}

// SetEnd moves the end boundary, clamped to the control span
func (s *RangeSelector) SetEnd(seconds float64) {
	s.selection.EndSeconds = s.clampToSpan(seconds)
}

// NudgeStart moves the start boundary by delta seconds
func (s *RangeSelector) NudgeStart(delta float64) {
	s.SetStart(s.selection.StartSeconds + delta)
}

// NudgeEnd moves the end boundary by delta seconds
func (s *RangeSelector) NudgeEnd(delta float64) {
	s.SetEnd(s.selection.EndSeconds + delta)
}

// DragScrub moves the scrub control without touching playback
func (s *RangeSelector) DragScrub(seconds float64) {
	s.dragging = true
	s.pendingScrub = s.clampToSpan(seconds)
}

// NudgeScrub drags the scrub control by delta seconds from where it shows
func (s *RangeSelector) NudgeScrub(delta float64) {
	s.DragScrub(s.ScrubPosition() + delta)
}

// Dragging reports whether a scrub drag is in progress
func (s *RangeSelector) Dragging() bool {
	return s.dragging
}

// ScrubPosition is the value the scrub control shows: the pending drag value
// while dragging, the synced position otherwise.
func (s *RangeSelector) ScrubPosition() float64 {
	if s.dragging {
		return s.pendingScrub
	}
	return s.sync.PositionSeconds()
}

// ReleaseScrub commits a drag with a single seek. It reports false when no
// drag was in progress.
func (s *RangeSelector) ReleaseScrub(ctx context.Context) bool {
	if !s.dragging {
		return false
	}
	target := secondsToMillis(s.pendingScrub)
	s.dragging = false
	s.logger.Debug("Scrub released", zap.Int64("targetMillis", target))
	s.seek(ctx, target)
	return true
}

// CanConfirm reports whether the hand-off is enabled
func (s *RangeSelector) CanConfirm() bool {
	return s.sync.Loaded()
}

// Confirm returns the selection as loop boundaries. start < end is not
// checked; an inverted range is handed off as is.
func (s *RangeSelector) Confirm() (domain.LoopBoundaries, error) {
	if !s.CanConfirm() {
		return domain.LoopBoundaries{}, ErrNotLoaded
	}
	return s.Boundaries(), nil
}

func (s *RangeSelector) clampToSpan(seconds float64) float64 {
	if math.IsNaN(seconds) {
		return 0
	}
	return math.Min(math.Max(seconds, 0), s.sync.DurationSeconds())
}

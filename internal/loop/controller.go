package loop

import (
	"context"
	"math"

	"github.com/genricoloni/cliploop/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Screen is a single screen instance driven by the capability's event stream.
// All methods must be called from one goroutine.
type Screen interface {
	// Mount runs the screen's entry side effects
	Mount(ctx context.Context)

	// HandleEvent applies one capability event synchronously
	HandleEvent(ctx context.Context, ev domain.PlaybackEvent)

	// Sync exposes the position-sync state for display
	Sync() *PositionSync
}

// LoopTarget reports whether playback at positionMillis has reached the end
// boundary and, if so, the position to seek back to. The check is level
// triggered: it holds on every tick past the end, including when end <= start.
func LoopTarget(positionMillis int64, b domain.LoopBoundaries) (int64, bool) {
	if float64(positionMillis) < b.End*1000 {
		return 0, false
	}
	return secondsToMillis(b.Start), true
}

func secondsToMillis(s float64) int64 {
	return int64(math.Round(s * 1000))
}

// Controller holds the state shared by both screens: position sync plus the
// loop check against whatever boundaries the owning screen provides.
type Controller struct {
	logger     *zap.Logger
	seeker     domain.Seeker
	sync       *PositionSync
	boundaries func() domain.LoopBoundaries
	loopSeeks  int
}

func newController(logger *zap.Logger, seeker domain.Seeker, screen string, boundaries func() domain.LoopBoundaries) Controller {
	return Controller{
		logger: logger.With(
			zap.String("screen", screen),
			zap.String("session", uuid.NewString())),
		seeker:     seeker,
		sync:       NewPositionSync(),
		boundaries: boundaries,
	}
}

// HandleEvent drives the position-sync transition and, while loaded, the loop check
func (c *Controller) HandleEvent(ctx context.Context, ev domain.PlaybackEvent) {
	switch ev.Kind {
	case domain.EventLoadStarted:
		c.sync.MarkLoadStarted()
	case domain.EventReadyForDisplay:
		c.sync.MarkReady()
	case domain.EventStatus:
		prev := c.sync.State()
		state := c.sync.Apply(ev.Snapshot)
		if state != prev {
			c.logger.Debug("Playback state changed",
				zap.Stringer("from", prev),
				zap.Stringer("to", state),
				zap.Int64("durationMillis", ev.Snapshot.DurationMillis))
		}
		if state == domain.StateLoaded {
			c.enforce(ctx, ev.Snapshot.PositionMillis)
		}
	default:
		c.logger.Debug("Ignoring unknown event", zap.String("kind", string(ev.Kind)))
	}
}

// enforce issues a seek back to start when position has reached end
func (c *Controller) enforce(ctx context.Context, positionMillis int64) bool {
	target, ok := LoopTarget(positionMillis, c.boundaries())
	if !ok {
		return false
	}
	c.loopSeeks++
	c.logger.Debug("End boundary reached, seeking to start",
		zap.Int64("positionMillis", positionMillis),
		zap.Int64("targetMillis", target))
	c.seek(ctx, target)
	return true
}

// seek submits a fire-and-forget seek; failures only get logged
func (c *Controller) seek(ctx context.Context, targetMillis int64) {
	if err := c.seeker.SeekTo(ctx, targetMillis); err != nil {
		c.logger.Warn("Seek request failed",
			zap.Int64("targetMillis", targetMillis),
			zap.Error(err))
	}
}

// Sync exposes the position-sync state
func (c *Controller) Sync() *PositionSync {
	return c.sync
}

// LoopSeeks returns how many loop-back seeks this screen has issued
func (c *Controller) LoopSeeks() int {
	return c.loopSeeks
}

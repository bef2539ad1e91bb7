package engine

import (
	"context"
	"sync"

	"github.com/genricoloni/cliploop/internal/domain"
	"github.com/genricoloni/cliploop/internal/loop"
	"go.uber.org/zap"
)

// Engine drives a single screen from the playback event stream when no
// interactive UI owns it. The screen is mounted once playback first reports
// a loaded snapshot, so its entry seek has a track to act on.
type Engine struct {
	logger   *zap.Logger
	playback domain.Playback
	screen   loop.Screen
	mounted  bool
	cancel   context.CancelFunc
	done     chan struct{}
	mu       sync.Mutex
}

// NewEngine creates a new dispatch engine
func NewEngine(logger *zap.Logger, pb domain.Playback) *Engine {
	return &Engine{
		logger:   logger,
		playback: pb,
	}
}

// Attach sets the screen to drive. It must be called before Start.
func (e *Engine) Attach(screen loop.Screen) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.screen = screen
	e.mounted = false
}

// Start launches the event processing loop in a goroutine.
// It returns immediately (non-blocking).
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.done != nil {
		return nil
	}
	if e.screen == nil {
		e.logger.Warn("Engine started without a screen, events will be discarded")
	}

	e.logger.Info("Engine starting...")

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	e.cancel = cancel
	e.done = make(chan struct{})

	go e.runLoop(loopCtx, e.screen, e.done)
	return nil
}

// runLoop is the main event processing loop. Events are applied in arrival
// order with no coalescing: the loop check is level triggered and must see
// every tick.
func (e *Engine) runLoop(ctx context.Context, screen loop.Screen, done chan struct{}) {
	defer close(done)

	events := e.playback.Events()

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Engine loop stopped")
			return

		case ev, ok := <-events:
			if !ok {
				e.logger.Info("Playback events channel closed")
				return
			}
			if screen == nil {
				continue
			}
			e.dispatch(ctx, screen, ev)
		}
	}
}

// dispatch applies one event and mounts the screen on first load
func (e *Engine) dispatch(ctx context.Context, screen loop.Screen, ev domain.PlaybackEvent) {
	e.logger.Debug("Event received",
		zap.String("kind", string(ev.Kind)),
		zap.Bool("loaded", ev.Snapshot.IsLoaded),
		zap.Int64("position_ms", ev.Snapshot.PositionMillis))

	screen.HandleEvent(ctx, ev)

	if e.mounted || !screen.Sync().Loaded() {
		return
	}
	e.mounted = true
	screen.Mount(ctx)
}

// Stop cancels the loop and waits for it to exit
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	cancel, done := e.cancel, e.done
	e.mu.Unlock()

	if done == nil {
		return nil
	}

	e.logger.Info("Engine stopping...")
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

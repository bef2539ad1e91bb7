package playback

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/genricoloni/cliploop/internal/domain"
	"go.uber.org/zap"
)

var (
	// ErrSimulatorStopped is returned when the simulated player is not running
	ErrSimulatorStopped = errors.New("simulated player not running")
	// ErrNothingLoaded is returned when seeking before Load
	ErrNothingLoaded = errors.New("nothing loaded")
)

// SimulatedPlayer plays a silent fixed-length asset against the wall clock.
// Like a real player it stops at the end instead of looping, and applies
// seeks on the following tick.
type SimulatedPlayer struct {
	logger          *zap.Logger
	interval        time.Duration
	length          time.Duration
	now             func() time.Time
	events          chan domain.PlaybackEvent
	mu              sync.Mutex
	running         bool
	cancel          context.CancelFunc
	wg              sync.WaitGroup
	loaded          bool
	playing         bool
	position        time.Duration
	lastTick        time.Time
	pending         *time.Duration
	awaitingFrame   bool
	lastDropWarning time.Time
}

// NewSimulatedPlayer creates a clock-driven player of the configured length
func NewSimulatedPlayer(logger *zap.Logger, cfg domain.Config) *SimulatedPlayer {
	return &SimulatedPlayer{
		logger:   logger,
		interval: cfg.GetPollInterval(),
		length:   cfg.GetSimDuration(),
		now:      time.Now,
		events:   make(chan domain.PlaybackEvent, 16),
	}
}

// Start begins ticking. It does not block.
func (s *SimulatedPlayer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	s.running = true

	tickCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(tickCtx)

	s.logger.Info("Simulated playback started",
		zap.Duration("length", s.length),
		zap.Duration("interval", s.interval))
	return nil
}

// Stop halts ticking and closes the events channel
func (s *SimulatedPlayer) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
	close(s.events)

	s.logger.Info("Simulated playback shutdown complete")
	return nil
}

// Events returns a read-only channel of status ticks and lifecycle signals
func (s *SimulatedPlayer) Events() <-chan domain.PlaybackEvent {
	return s.events
}

// Load (re)loads the asset and starts playing from the beginning
func (s *SimulatedPlayer) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return ErrSimulatorStopped
	}
	s.loaded = true
	s.playing = true
	s.position = 0
	s.pending = nil
	s.lastTick = s.now()
	s.awaitingFrame = true
	s.mu.Unlock()

	s.logger.Info("Simulated asset loaded", zap.Duration("length", s.length))
	s.emit(domain.PlaybackEvent{Kind: domain.EventLoadStarted})
	return nil
}

// Unload releases the asset; the next event reports an unloaded snapshot
func (s *SimulatedPlayer) Unload() {
	s.mu.Lock()
	s.loaded = false
	s.playing = false
	s.position = 0
	s.pending = nil
	s.mu.Unlock()

	s.emit(domain.StatusEvent(domain.PlaybackSnapshot{}))
}

// SeekTo records a seek target, clamped to [0, length]
func (s *SimulatedPlayer) SeekTo(ctx context.Context, positionMillis int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := time.Duration(positionMillis) * time.Millisecond
	target = min(max(target, 0), s.length)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNothingLoaded
	}
	// a newer request supersedes one not yet applied
	s.pending = &target
	return nil
}

func (s *SimulatedPlayer) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick advances the clock and publishes a snapshot
func (s *SimulatedPlayer) tick() {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return
	}

	now := s.now()
	switch {
	case s.pending != nil:
		s.position = *s.pending
		s.pending = nil
		s.playing = s.position < s.length
	case s.playing:
		s.position += now.Sub(s.lastTick)
	}
	if s.position >= s.length {
		s.position = s.length
		s.playing = false
	}
	s.lastTick = now

	snap := domain.PlaybackSnapshot{
		IsLoaded:       true,
		DurationMillis: s.length.Milliseconds(),
		PositionMillis: s.position.Milliseconds(),
	}
	ready := s.awaitingFrame
	s.awaitingFrame = false
	s.mu.Unlock()

	s.emit(domain.StatusEvent(snap))
	if ready {
		s.emit(domain.PlaybackEvent{Kind: domain.EventReadyForDisplay})
	}
}

// emit publishes without blocking; nothing is sent once Stop has begun
func (s *SimulatedPlayer) emit(ev domain.PlaybackEvent) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	dropped := false
	select {
	case s.events <- ev:
	default:
		dropped = true
	}
	warn := dropped && s.now().Sub(s.lastDropWarning) >= 5*time.Second
	if warn {
		s.lastDropWarning = s.now()
	}
	s.mu.Unlock()

	if warn {
		s.logger.Warn("Events channel full, dropping playback event")
	}
}

//go:build !linux
// +build !linux

package playback

import (
	"context"
	"errors"
	"fmt"

	"github.com/genricoloni/cliploop/internal/domain"
	"go.uber.org/zap"
)

// ErrNotStarted is returned by operations that need a bus connection
var ErrNotStarted = errors.New("playback capability not started")

// MprisPlayer stub for non-Linux platforms
type MprisPlayer struct {
	logger *zap.Logger
	events chan domain.PlaybackEvent
}

// NewMprisPlayer creates a stub player that returns an error on non-Linux platforms
func NewMprisPlayer(logger *zap.Logger, cfg domain.Config) *MprisPlayer {
	events := make(chan domain.PlaybackEvent)
	close(events)
	return &MprisPlayer{logger: logger, events: events}
}

// Start returns an error indicating MPRIS is not supported on this platform
func (m *MprisPlayer) Start(ctx context.Context) error {
	return fmt.Errorf("MPRIS playback is only supported on Linux systems, use CLIPLOOP_BACKEND=sim")
}

// Stop is a no-op on non-Linux platforms
func (m *MprisPlayer) Stop(ctx context.Context) error {
	return nil
}

// Load always fails on non-Linux platforms
func (m *MprisPlayer) Load(ctx context.Context) error {
	return ErrNotStarted
}

// SeekTo always fails on non-Linux platforms
func (m *MprisPlayer) SeekTo(ctx context.Context, positionMillis int64) error {
	return ErrNotStarted
}

// Events returns a closed channel since playback is not available
func (m *MprisPlayer) Events() <-chan domain.PlaybackEvent {
	return m.events
}

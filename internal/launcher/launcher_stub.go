//go:build !linux
// +build !linux

package launcher

import (
	"context"
	"fmt"

	"github.com/genricoloni/cliploop/internal/domain"
	"go.uber.org/zap"
)

// StubLauncher is a placeholder for platforms without MPRIS
type StubLauncher struct {
	logger *zap.Logger
}

// NewLauncher creates a stub launcher for unsupported platforms
func NewLauncher(logger *zap.Logger, cfg domain.Config) (*StubLauncher, error) {
	logger.Warn("Launching a media player is not supported on this platform")
	return &StubLauncher{logger: logger}, nil
}

// Launch returns an error indicating the platform is not supported
func (l *StubLauncher) Launch(ctx context.Context, source string) error {
	return fmt.Errorf("player launch not supported on this platform, use CLIPLOOP_BACKEND=sim")
}

// Close is a no-op
func (l *StubLauncher) Close() error {
	return nil
}

package loop

import (
	"context"
	"fmt"

	"github.com/genricoloni/cliploop/internal/domain"
	"go.uber.org/zap"
)

// LoopPreviewer confines playback to boundaries fixed at construction
type LoopPreviewer struct {
	Controller
	bounds  domain.LoopBoundaries
	mounted bool
}

// NewLoopPreviewer creates a previewer for the given boundaries
func NewLoopPreviewer(logger *zap.Logger, seeker domain.Seeker, b domain.LoopBoundaries) *LoopPreviewer {
	p := &LoopPreviewer{bounds: b}
	p.Controller = newController(logger, seeker, "previewer", p.Boundaries)
	return p
}

// Mount seeks to the start boundary. Only the first call has an effect.
func (p *LoopPreviewer) Mount(ctx context.Context) {
	if p.mounted {
		return
	}
	p.mounted = true
	p.logger.Info("Loop preview started",
		zap.Float64("start", p.bounds.Start),
		zap.Float64("end", p.bounds.End))
	p.seek(ctx, secondsToMillis(p.bounds.Start))
}

// Boundaries returns the immutable loop boundaries
func (p *LoopPreviewer) Boundaries() domain.LoopBoundaries {
	return p.bounds
}

// Describe renders the range for display
func (p *LoopPreviewer) Describe() string {
	return fmt.Sprintf("Playing from %s to %s", FormatTime(p.bounds.Start), FormatTime(p.bounds.End))
}

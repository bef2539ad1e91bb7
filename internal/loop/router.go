package loop

import (
	"context"

	"github.com/genricoloni/cliploop/internal/domain"
	"go.uber.org/zap"
)

// Router owns the current screen and performs the selector to previewer
// hand-off. Only the current screen receives events.
type Router struct {
	logger    *zap.Logger
	seeker    domain.Seeker
	selector  *RangeSelector
	previewer *LoopPreviewer
}

// NewRouter creates a router showing a fresh range selector
func NewRouter(logger *zap.Logger, seeker domain.Seeker) *Router {
	return &Router{
		logger:   logger,
		seeker:   seeker,
		selector: NewRangeSelector(logger, seeker),
	}
}

// Current returns the mounted screen
func (r *Router) Current() Screen {
	if r.previewer != nil {
		return r.previewer
	}
	return r.selector
}

// Selector returns the range selector, or nil while previewing
func (r *Router) Selector() *RangeSelector {
	return r.selector
}

// Previewer returns the loop previewer, or nil while selecting
func (r *Router) Previewer() *LoopPreviewer {
	return r.previewer
}

// HandleEvent forwards an event to the current screen
func (r *Router) HandleEvent(ctx context.Context, ev domain.PlaybackEvent) {
	r.Current().HandleEvent(ctx, ev)
}

// Confirm hands the selection off to a new previewer through the navigation
// parameters and mounts it. It fails with ErrNotLoaded before playback loads.
func (r *Router) Confirm(ctx context.Context) (*LoopPreviewer, error) {
	if r.selector == nil {
		return r.previewer, nil
	}
	b, err := r.selector.Confirm()
	if err != nil {
		return nil, err
	}

	params := EncodeParams(b)
	parsed, err := ParseParams(params)
	if err != nil {
		r.logger.Warn("Loop parameters defaulted", zap.Error(err))
	}

	r.previewer = NewLoopPreviewer(r.logger, r.seeker, parsed)
	r.selector = nil
	r.previewer.Mount(ctx)
	return r.previewer, nil
}

// Back discards the previewer and mounts a selector with default range
func (r *Router) Back(ctx context.Context) *RangeSelector {
	if r.selector != nil {
		return r.selector
	}
	r.previewer = nil
	r.selector = NewRangeSelector(r.logger, r.seeker)
	r.selector.Mount(ctx)
	return r.selector
}

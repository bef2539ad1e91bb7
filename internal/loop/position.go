package loop

import (
	"github.com/genricoloni/cliploop/internal/domain"
)

const (
	// DefaultDurationSeconds keeps range controls numerically valid while nothing is loaded
	DefaultDurationSeconds = 100.0
	// DefaultPositionSeconds is reported while nothing is loaded
	DefaultPositionSeconds = 0.0
)

// PositionSync reconciles capability-reported position and duration with
// what the screens display and check against.
type PositionSync struct {
	state          domain.LoadState
	durationMillis int64
	positionMillis int64
	loading        bool
}

// NewPositionSync returns a machine in the Uninitialized state with the
// loading flag raised.
func NewPositionSync() *PositionSync {
	return &PositionSync{loading: true}
}

// Apply transitions on a status snapshot and returns the resulting state
func (p *PositionSync) Apply(s domain.PlaybackSnapshot) domain.LoadState {
	if !s.IsLoaded {
		p.state = domain.StateUnloaded
		p.durationMillis = 0
		p.positionMillis = 0
		return p.state
	}

	p.state = domain.StateLoaded
	p.durationMillis = max(s.DurationMillis, 0)
	p.positionMillis = max(s.PositionMillis, 0)
	p.loading = false
	return p.state
}

// State returns the current machine state
func (p *PositionSync) State() domain.LoadState {
	return p.state
}

// Loaded reports whether the last snapshot carried loaded media
func (p *PositionSync) Loaded() bool {
	return p.state == domain.StateLoaded
}

// Loading reports whether a loading indicator should be shown
func (p *PositionSync) Loading() bool {
	return p.loading
}

// MarkLoadStarted raises the loading flag
func (p *PositionSync) MarkLoadStarted() {
	p.loading = true
}

// MarkReady clears the loading flag
func (p *PositionSync) MarkReady() {
	p.loading = false
}

// DurationSeconds returns the known duration, or DefaultDurationSeconds when
// not loaded or when the capability reported a zero length.
func (p *PositionSync) DurationSeconds() float64 {
	if !p.Loaded() || p.durationMillis == 0 {
		return DefaultDurationSeconds
	}
	return float64(p.durationMillis) / 1000
}

// PositionSeconds returns the known position, or DefaultPositionSeconds when not loaded
func (p *PositionSync) PositionSeconds() float64 {
	if !p.Loaded() {
		return DefaultPositionSeconds
	}
	return float64(p.positionMillis) / 1000
}

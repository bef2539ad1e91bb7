package loop

import (
	"testing"

	"github.com/genricoloni/cliploop/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPositionSync_SafeDefaults(t *testing.T) {
	p := NewPositionSync()

	assert.Equal(t, domain.StateUninitialized, p.State())
	assert.True(t, p.Loading())
	assert.Equal(t, 100.0, p.DurationSeconds())
	assert.Equal(t, 0.0, p.PositionSeconds())
}

func TestPositionSync_Transitions(t *testing.T) {
	p := NewPositionSync()

	state := p.Apply(domain.PlaybackSnapshot{IsLoaded: true, DurationMillis: 42000, PositionMillis: 1500})
	assert.Equal(t, domain.StateLoaded, state)
	assert.False(t, p.Loading())
	assert.Equal(t, 42.0, p.DurationSeconds())
	assert.Equal(t, 1.5, p.PositionSeconds())

	state = p.Apply(domain.PlaybackSnapshot{IsLoaded: false, DurationMillis: 42000, PositionMillis: 9000})
	assert.Equal(t, domain.StateUnloaded, state)
	assert.Equal(t, 100.0, p.DurationSeconds(), "stale duration must not leak")
	assert.Equal(t, 0.0, p.PositionSeconds(), "stale position must not leak")

	state = p.Apply(domain.PlaybackSnapshot{IsLoaded: true, DurationMillis: 30000, PositionMillis: 0})
	assert.Equal(t, domain.StateLoaded, state)
	assert.Equal(t, 30.0, p.DurationSeconds())
}

func TestPositionSync_ZeroDurationFallsBack(t *testing.T) {
	p := NewPositionSync()
	p.Apply(domain.PlaybackSnapshot{IsLoaded: true, DurationMillis: 0, PositionMillis: 0})

	assert.True(t, p.Loaded())
	assert.Equal(t, 100.0, p.DurationSeconds())
}

func TestPositionSync_NegativeValuesClamped(t *testing.T) {
	p := NewPositionSync()
	p.Apply(domain.PlaybackSnapshot{IsLoaded: true, DurationMillis: 10000, PositionMillis: -250})

	assert.Equal(t, 0.0, p.PositionSeconds())
}

func TestPositionSync_LoadingFlag(t *testing.T) {
	p := NewPositionSync()
	p.MarkReady()
	assert.False(t, p.Loading())

	p.MarkLoadStarted()
	assert.True(t, p.Loading())

	p.Apply(domain.PlaybackSnapshot{IsLoaded: true, DurationMillis: 1000})
	assert.False(t, p.Loading())
}

func TestLoadState_String(t *testing.T) {
	assert.Equal(t, "Uninitialized", domain.StateUninitialized.String())
	assert.Equal(t, "Loaded", domain.StateLoaded.String())
	assert.Equal(t, "Unloaded", domain.StateUnloaded.String())
	assert.Equal(t, "Unknown", domain.LoadState(42).String())
}

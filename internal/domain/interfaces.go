package domain

import (
	"context"
	"time"
)

// Seeker issues position changes to the playback capability.
// Seeks are requests: they return once submitted, not once applied.
type Seeker interface {
	SeekTo(ctx context.Context, positionMillis int64) error
}

// Playback defines the contract of the external media decode/render capability
//
//go:generate mockgen -destination=mocks/playback_mock.go -package=mocks github.com/genricoloni/cliploop/internal/domain Playback,Seeker
type Playback interface {
	Seeker

	// Start begins producing events. It must not block.
	Start(ctx context.Context) error

	// Stop halts event production and closes the events channel
	Stop(ctx context.Context) error

	// Load (re)loads the fixed source asset
	Load(ctx context.Context) error

	// Events returns a read-only channel of status ticks and lifecycle signals
	Events() <-chan PlaybackEvent
}

// Launcher starts an external player on the source asset
type Launcher interface {
	// Launch spawns the player; it returns once the process has started
	Launch(ctx context.Context, source string) error

	// Close terminates the spawned player, if any
	Close() error
}

// Config defines the interface for application configuration
type Config interface {
	// GetBackend returns the playback backend name ("mpris" or "sim")
	GetBackend() string

	// GetPlayer returns the MPRIS player suffix, e.g. "mpv"
	GetPlayer() string

	// GetPollInterval returns how often the capability reports status
	GetPollInterval() time.Duration

	// GetSimDuration returns the length of the simulated asset
	GetSimDuration() time.Duration

	// GetSourceAsset returns the fixed media path
	GetSourceAsset() string

	// ShouldLaunch reports whether a player process should be spawned
	ShouldLaunch() bool

	// ShouldWatch reports whether the asset should be watched for changes
	ShouldWatch() bool

	// GetLogFile returns where interactive mode writes its logs
	GetLogFile() string
}

package domain

// LoadState represents where the position-sync machine currently is
type LoadState int

const (
	// StateUninitialized means no snapshot has been received yet
	StateUninitialized LoadState = iota
	// StateLoaded means the last snapshot reported loaded media
	StateLoaded
	// StateUnloaded means the media was released after having been seen
	StateUnloaded
)

// String returns the state name.
func (s LoadState) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateLoaded:
		return "Loaded"
	case StateUnloaded:
		return "Unloaded"
	default:
		return "Unknown"
	}
}

// EventKind tells apart status ticks from lifecycle signals
type EventKind string

const (
	// EventStatus carries a PlaybackSnapshot
	EventStatus EventKind = "status"
	// EventLoadStarted is emitted when the capability begins loading the asset
	EventLoadStarted EventKind = "load_started"
	// EventReadyForDisplay is emitted once the first frame can be shown
	EventReadyForDisplay EventKind = "ready_for_display"
)

// PlaybackSnapshot is what the playback capability reports on every tick
type PlaybackSnapshot struct {
	// IsLoaded is false when no media is available
	IsLoaded bool
	// DurationMillis is only meaningful when IsLoaded is true
	DurationMillis int64
	// PositionMillis is the current playback offset
	PositionMillis int64
}

// PlaybackEvent is a single item on the capability's event stream
type PlaybackEvent struct {
	Kind     EventKind
	Snapshot PlaybackSnapshot
}

// StatusEvent wraps a snapshot into a status event
func StatusEvent(s PlaybackSnapshot) PlaybackEvent {
	return PlaybackEvent{Kind: EventStatus, Snapshot: s}
}

// RangeSelection is the mutable range owned by the range selector.
// Start and end are adjusted independently and may cross.
type RangeSelection struct {
	StartSeconds float64
	EndSeconds   float64
}

// LoopBoundaries are the immutable (start, end) offsets handed to the previewer
type LoopBoundaries struct {
	Start float64
	End   float64
}

//go:build linux
// +build linux

package playback

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/genricoloni/cliploop/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	mprisPrefix       = "org.mpris.MediaPlayer2."
	mprisObjectPath   = "/org/mpris/MediaPlayer2"
	mprisPlayerIface  = "org.mpris.MediaPlayer2.Player"
	propMetadata      = mprisPlayerIface + ".Metadata"
	propPosition      = mprisPlayerIface + ".Position"
	methodSetPosition = mprisPlayerIface + ".SetPosition"
	methodOpenUri     = mprisPlayerIface + ".OpenUri"
	signalSeeked      = mprisPlayerIface + ".Seeked"
	signalProps       = "org.freedesktop.DBus.Properties.PropertiesChanged"
	signalNameOwner   = "org.freedesktop.DBus.NameOwnerChanged"
)

var (
	// ErrNotStarted is returned by operations that need a bus connection
	ErrNotStarted = errors.New("playback capability not started")
	// ErrNoTrack is returned when seeking before the player reports a track
	ErrNoTrack = errors.New("no track loaded")
)

// MprisPlayer drives an MPRIS-capable media player over the session bus
type MprisPlayer struct {
	logger          *zap.Logger
	busName         string
	source          string
	interval        time.Duration
	events          chan domain.PlaybackEvent
	mu              sync.RWMutex
	running         bool
	cancel          context.CancelFunc
	conn            DBusClient // Interface for testability
	dial            func() (DBusClient, error)
	lastDropWarning time.Time      // Rate limiting for "channel full" warnings
	wg              sync.WaitGroup // Tracks active producer goroutines
	owner           string         // Unique bus name (:1.45) of the tracked player
	trackID         dbus.ObjectPath
	lengthMicros    int64
	awaitingFrame   bool
}

// NewMprisPlayer creates a new MPRIS playback capability
func NewMprisPlayer(logger *zap.Logger, cfg domain.Config) *MprisPlayer {
	return &MprisPlayer{
		logger:   logger,
		busName:  mprisPrefix + cfg.GetPlayer(),
		source:   cfg.GetSourceAsset(),
		interval: cfg.GetPollInterval(),
		events:   make(chan domain.PlaybackEvent, 16),
		dial: func() (DBusClient, error) {
			return NewStdDBusClient()
		},
	}
}

// Start connects to the session bus and begins polling. It does not block.
func (m *MprisPlayer) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = true

	// producers outlive the start context
	pollCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.cancel = cancel
	m.mu.Unlock()

	conn, err := m.dial()
	if err != nil {
		m.logger.Error("Failed to connect to session bus", zap.Error(err))
		m.mu.Lock()
		defer m.mu.Unlock()
		m.running = false
		m.cancel = nil
		cancel()
		return fmt.Errorf("session bus connection failed: %w", err)
	}

	m.mu.Lock()
	m.conn = conn
	m.mu.Unlock()

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(mprisObjectPath),
		dbus.WithMatchInterface("org.freedesktop.DBus.Properties"),
		dbus.WithMatchMember("PropertiesChanged"),
	); err != nil {
		m.logger.Error("Failed to add match signal", zap.Error(err))
		m.mu.Lock()
		m.running = false
		m.cancel = nil
		m.conn = nil
		m.mu.Unlock()
		cancel()
		conn.Close()
		return fmt.Errorf("failed to add match signal: %w", err)
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(mprisObjectPath),
		dbus.WithMatchInterface(mprisPlayerIface),
		dbus.WithMatchMember("Seeked"),
	); err != nil {
		m.logger.Warn("Failed to add Seeked match signal", zap.Error(err))
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchInterface("org.freedesktop.DBus"),
		dbus.WithMatchMember("NameOwnerChanged"),
	); err != nil {
		m.logger.Warn("Failed to add NameOwnerChanged match signal", zap.Error(err))
		// Non-fatal, the player just won't be re-attached after a restart
	}

	m.detectPlayer()

	m.wg.Add(2)
	go m.monitorSignals(pollCtx)
	go m.poll(pollCtx)

	m.logger.Info("MPRIS playback started",
		zap.String("player", m.busName),
		zap.Duration("interval", m.interval))
	return nil
}

// Stop gracefully stops polling and closes the events channel
func (m *MprisPlayer) Stop(ctx context.Context) error {
	m.mu.Lock()

	if !m.running {
		m.mu.Unlock()
		return nil
	}

	if m.cancel != nil {
		m.cancel()
	}

	m.running = false
	m.mu.Unlock()

	// Wait for all producer goroutines to terminate before closing channel
	m.logger.Debug("Waiting for playback goroutines to finish")
	m.wg.Wait()

	close(m.events)

	var err error
	m.mu.Lock()
	if m.conn != nil {
		if err = m.conn.Close(); err != nil {
			m.logger.Warn("Failed to close D-Bus connection", zap.Error(err))
		}
	}
	m.mu.Unlock()

	m.logger.Info("MPRIS playback shutdown complete")
	return err
}

// Events returns a read-only channel of status ticks and lifecycle signals
func (m *MprisPlayer) Events() <-chan domain.PlaybackEvent {
	return m.events
}

// Load asks the player to open the fixed source asset
func (m *MprisPlayer) Load(ctx context.Context) error {
	m.mu.Lock()
	conn := m.conn
	m.awaitingFrame = true
	m.mu.Unlock()

	if conn == nil {
		return ErrNotStarted
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.emit(domain.PlaybackEvent{Kind: domain.EventLoadStarted})

	uri := (&url.URL{Scheme: "file", Path: m.source}).String()
	if err := conn.Call(m.busName, mprisObjectPath, methodOpenUri, uri); err != nil {
		return fmt.Errorf("failed to open %s: %w", uri, err)
	}

	m.logger.Info("Source asset requested", zap.String("uri", uri))
	return nil
}

// SeekTo requests a position change. Targets are clamped to the track length;
// the call returns without waiting for the player to apply it.
func (m *MprisPlayer) SeekTo(ctx context.Context, positionMillis int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.RLock()
	conn := m.conn
	trackID := m.trackID
	length := m.lengthMicros
	m.mu.RUnlock()

	if conn == nil {
		return ErrNotStarted
	}
	if trackID == "" {
		return ErrNoTrack
	}

	micros := clampMicros(positionMillis*1000, length)
	if err := conn.Send(m.busName, mprisObjectPath, methodSetPosition, trackID, micros); err != nil {
		return fmt.Errorf("failed to send SetPosition: %w", err)
	}

	m.logger.Debug("Seek requested", zap.Int64("micros", micros))
	return nil
}

// clampMicros bounds a target to [0, length]; an unknown length only bounds below
func clampMicros(micros, length int64) int64 {
	if micros < 0 {
		return 0
	}
	if length > 0 && micros > length {
		return length
	}
	return micros
}

// detectPlayer resolves the configured player's unique bus name
func (m *MprisPlayer) detectPlayer() {
	owner, err := m.conn.GetNameOwner(m.busName)
	if err != nil {
		m.logger.Warn("MPRIS player not on the bus yet",
			zap.String("player", m.busName),
			zap.Error(err))
		m.emit(domain.StatusEvent(domain.PlaybackSnapshot{}))
		return
	}

	m.mu.Lock()
	m.owner = owner
	m.mu.Unlock()

	m.logger.Info("Detected MPRIS player",
		zap.String("player", m.busName),
		zap.String("unique", owner))
}

// poll reports a snapshot on every tick
func (m *MprisPlayer) poll(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Debug("Polling goroutine stopped")
			return
		case <-ticker.C:
			m.emitSnapshot()
		}
	}
}

// monitorSignals listens for D-Bus signals and processes them
func (m *MprisPlayer) monitorSignals(ctx context.Context) {
	defer m.wg.Done()

	signals := make(chan *dbus.Signal, 10)
	m.conn.Signal(signals)

	m.logger.Debug("Signal monitoring goroutine started")

	for {
		select {
		case <-ctx.Done():
			m.logger.Debug("Signal monitoring goroutine stopped")
			return
		case sig := <-signals:
			if sig == nil {
				continue
			}
			if sig.Name == signalNameOwner {
				m.handleNameOwnerChanged(ctx, sig)
			} else {
				m.handleSignal(sig)
			}
		}
	}
}

// handleNameOwnerChanged follows the tracked player across restarts
func (m *MprisPlayer) handleNameOwnerChanged(ctx context.Context, sig *dbus.Signal) {
	if len(sig.Body) < 3 {
		return
	}

	name, ok := sig.Body[0].(string)
	if !ok || name != m.busName {
		return
	}

	oldOwner, _ := sig.Body[1].(string)
	newOwner, _ := sig.Body[2].(string)

	m.mu.Lock()
	m.owner = newOwner
	m.trackID = ""
	m.lengthMicros = 0
	m.mu.Unlock()

	if newOwner == "" {
		m.logger.Info("MPRIS player removed",
			zap.String("player", name),
			zap.String("unique", oldOwner))
		m.emit(domain.StatusEvent(domain.PlaybackSnapshot{}))
		return
	}

	m.logger.Info("MPRIS player appeared, reloading source",
		zap.String("player", name),
		zap.String("unique", newOwner))

	if err := m.Load(ctx); err != nil {
		m.logger.Warn("Failed to reload source", zap.Error(err))
	}
}

// handleSignal reacts to Seeked and Metadata changes with an immediate snapshot
func (m *MprisPlayer) handleSignal(sig *dbus.Signal) {
	m.mu.RLock()
	owner := m.owner
	m.mu.RUnlock()

	if owner == "" || sig.Sender != owner {
		return
	}

	switch sig.Name {
	case signalSeeked:
		m.emitSnapshot()
	case signalProps:
		// PropertiesChanged body: interface, changed properties, invalidated properties
		if len(sig.Body) < 2 {
			return
		}
		iface, ok := sig.Body[0].(string)
		if !ok || iface != mprisPlayerIface {
			return
		}
		changed, ok := sig.Body[1].(map[string]dbus.Variant)
		if !ok {
			return
		}
		if _, has := changed["Metadata"]; has {
			m.emitSnapshot()
		}
	}
}

// emitSnapshot queries the player and publishes a status event, followed by
// ReadyForDisplay on the first loaded snapshot after a Load.
func (m *MprisPlayer) emitSnapshot() {
	snap := m.snapshot()
	m.emit(domain.StatusEvent(snap))

	if !snap.IsLoaded {
		return
	}
	m.mu.Lock()
	ready := m.awaitingFrame
	m.awaitingFrame = false
	m.mu.Unlock()
	if ready {
		m.emit(domain.PlaybackEvent{Kind: domain.EventReadyForDisplay})
	}
}

// snapshot reads Metadata and Position; any failure reports an unloaded player
func (m *MprisPlayer) snapshot() domain.PlaybackSnapshot {
	m.mu.RLock()
	owner := m.owner
	conn := m.conn
	m.mu.RUnlock()

	if owner == "" || conn == nil {
		return domain.PlaybackSnapshot{}
	}

	variant, err := conn.GetProperty(m.busName, mprisObjectPath, propMetadata)
	if err != nil {
		m.logger.Debug("Failed to read metadata", zap.Error(err))
		return domain.PlaybackSnapshot{}
	}

	// SAFE CAST: players with nothing open may return an empty or odd variant
	metadata, ok := variant.Value().(map[string]dbus.Variant)
	if !ok {
		return domain.PlaybackSnapshot{}
	}

	trackID, length := m.parseMetadata(metadata)
	if trackID == "" {
		return domain.PlaybackSnapshot{}
	}

	var position int64
	if posVariant, err := conn.GetProperty(m.busName, mprisObjectPath, propPosition); err == nil {
		position, _ = toInt64(posVariant.Value())
	}

	m.mu.Lock()
	m.trackID = trackID
	m.lengthMicros = length
	m.mu.Unlock()

	return domain.PlaybackSnapshot{
		IsLoaded:       true,
		DurationMillis: length / 1000,
		PositionMillis: clampMicros(position, 0) / 1000,
	}
}

// parseMetadata extracts the track id and length (microseconds)
func (m *MprisPlayer) parseMetadata(metadata map[string]dbus.Variant) (dbus.ObjectPath, int64) {
	var trackID dbus.ObjectPath
	if v, ok := metadata["mpris:trackid"]; ok {
		switch id := v.Value().(type) {
		case dbus.ObjectPath:
			trackID = id
		case string:
			// Some non-compliant players send a plain string
			trackID = dbus.ObjectPath(id)
		default:
			m.logger.Debug("Unexpected trackid type in metadata",
				zap.String("type", fmt.Sprintf("%T", v.Value())))
		}
	}

	var length int64
	if v, ok := metadata["mpris:length"]; ok {
		if l, ok := toInt64(v.Value()); ok && l > 0 {
			length = l
		}
	}

	return trackID, length
}

// toInt64 accepts the integer widths players use for lengths and positions
func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// emit publishes without blocking; snapshots are last-write-wins.
// Nothing is sent once Stop has begun, so the channel can be closed safely.
func (m *MprisPlayer) emit(ev domain.PlaybackEvent) {
	m.mu.RLock()
	if !m.running {
		m.mu.RUnlock()
		return
	}
	dropped := false
	select {
	case m.events <- ev:
	default:
		dropped = true
	}
	m.mu.RUnlock()

	if dropped {
		m.logChannelFullWarning()
	}
}

// logChannelFullWarning logs a warning about channel being full, but rate-limited
func (m *MprisPlayer) logChannelFullWarning() {
	m.mu.Lock()
	defer m.mu.Unlock()

	const warningInterval = 5 * time.Second
	now := time.Now()

	if now.Sub(m.lastDropWarning) >= warningInterval {
		m.logger.Warn("Events channel full, dropping playback event",
			zap.String("note", "The consumer is slower than the poll interval."))
		m.lastDropWarning = now
	}
}

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	defaultPlayer       = "mpv"
	defaultPollInterval = 250 * time.Millisecond
	defaultSimDuration  = 60 * time.Second
	defaultLogFileName  = "cliploop.log"

	BackendMpris = "mpris"
	BackendSim   = "sim"
)

// sourceAsset is fixed at build time:
//
//	go build -ldflags "-X github.com/genricoloni/cliploop/internal/config.sourceAsset=/path/to/clip.mp4"
var sourceAsset = "assets/videos/sample.mp4"

// AppConfig holds application configuration
type AppConfig struct {
	logger       *zap.Logger
	backend      string
	player       string
	pollInterval time.Duration
	simDuration  time.Duration
	source       string
	launch       bool
	watch        bool
	logFile      string
}

// NewAppConfig creates a new application configuration instance
func NewAppConfig(logger *zap.Logger) *AppConfig {
	backend := os.Getenv("CLIPLOOP_BACKEND")
	if backend != BackendMpris && backend != BackendSim {
		if backend != "" {
			logger.Warn("Unknown backend, using platform default", zap.String("backend", backend))
		}
		backend = defaultBackend()
	}

	player := os.Getenv("CLIPLOOP_PLAYER")
	if player == "" {
		player = defaultPlayer
	}

	source := os.ExpandEnv(sourceAsset)
	if len(source) > 0 && source[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			source = filepath.Join(home, source[1:])
		}
	}
	if abs, err := filepath.Abs(source); err == nil {
		source = abs
	}

	cfg := &AppConfig{
		logger:       logger,
		backend:      backend,
		player:       player,
		pollInterval: envDuration(logger, "CLIPLOOP_POLL_INTERVAL", defaultPollInterval),
		simDuration:  envDuration(logger, "CLIPLOOP_SIM_DURATION", defaultSimDuration),
		source:       source,
		launch:       envBool(logger, "CLIPLOOP_LAUNCH", true),
		watch:        envBool(logger, "CLIPLOOP_WATCH", true),
		logFile:      LogFilePath(),
	}

	logger.Info("Configuration loaded",
		zap.String("backend", cfg.backend),
		zap.String("player", cfg.player),
		zap.Duration("pollInterval", cfg.pollInterval),
		zap.Duration("simDuration", cfg.simDuration),
		zap.String("source", cfg.source),
		zap.Bool("launch", cfg.launch),
		zap.Bool("watch", cfg.watch))

	return cfg
}

// LogFilePath resolves the interactive-mode log destination. It needs no
// logger, so it can be used to build one.
func LogFilePath() string {
	if p := os.Getenv("CLIPLOOP_LOG_FILE"); p != "" {
		return p
	}
	return filepath.Join(os.TempDir(), defaultLogFileName)
}

func defaultBackend() string {
	if runtime.GOOS == "linux" {
		return BackendMpris
	}
	return BackendSim
}

// envDuration reads a positive Go duration, falling back on anything else
func envDuration(logger *zap.Logger, key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		logger.Warn("Invalid duration, using default",
			zap.String("key", key),
			zap.String("value", raw),
			zap.Duration("default", fallback))
		return fallback
	}
	return d
}

func envBool(logger *zap.Logger, key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		logger.Warn("Invalid boolean, using default",
			zap.String("key", key),
			zap.String("value", raw),
			zap.Bool("default", fallback))
		return fallback
	}
	return v
}

// GetBackend returns the playback backend name
func (c *AppConfig) GetBackend() string {
	return c.backend
}

// GetPlayer returns the MPRIS player suffix
func (c *AppConfig) GetPlayer() string {
	return c.player
}

// GetPollInterval returns the status polling cadence
func (c *AppConfig) GetPollInterval() time.Duration {
	return c.pollInterval
}

// GetSimDuration returns the simulated asset length
func (c *AppConfig) GetSimDuration() time.Duration {
	return c.simDuration
}

// GetSourceAsset returns the absolute path of the fixed source asset
func (c *AppConfig) GetSourceAsset() string {
	return c.source
}

// ShouldLaunch reports whether a player process should be spawned
func (c *AppConfig) ShouldLaunch() bool {
	return c.launch
}

// ShouldWatch reports whether the asset should be watched for changes
func (c *AppConfig) ShouldWatch() bool {
	return c.watch
}

// GetLogFile returns the interactive-mode log destination
func (c *AppConfig) GetLogFile() string {
	return c.logFile
}

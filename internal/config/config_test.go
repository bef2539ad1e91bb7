package config

import (
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewAppConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"CLIPLOOP_BACKEND", "CLIPLOOP_PLAYER", "CLIPLOOP_POLL_INTERVAL",
		"CLIPLOOP_SIM_DURATION", "CLIPLOOP_LAUNCH", "CLIPLOOP_WATCH", "CLIPLOOP_LOG_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg := NewAppConfig(zap.NewNop())

	if cfg.GetBackend() != defaultBackend() {
		t.Errorf("backend: expected %s, got %s", defaultBackend(), cfg.GetBackend())
	}
	if cfg.GetPlayer() != "mpv" {
		t.Errorf("player: expected mpv, got %s", cfg.GetPlayer())
	}
	if cfg.GetPollInterval() != 250*time.Millisecond {
		t.Errorf("poll interval: expected 250ms, got %v", cfg.GetPollInterval())
	}
	if cfg.GetSimDuration() != 60*time.Second {
		t.Errorf("sim duration: expected 60s, got %v", cfg.GetSimDuration())
	}
	if !cfg.ShouldLaunch() || !cfg.ShouldWatch() {
		t.Error("launch and watch should default to true")
	}
	if !filepath.IsAbs(cfg.GetSourceAsset()) {
		t.Errorf("source asset should be absolute, got %s", cfg.GetSourceAsset())
	}
	if filepath.Base(cfg.GetLogFile()) != "cliploop.log" {
		t.Errorf("unexpected log file %s", cfg.GetLogFile())
	}
}

func TestNewAppConfig_Overrides(t *testing.T) {
	t.Setenv("CLIPLOOP_BACKEND", "sim")
	t.Setenv("CLIPLOOP_PLAYER", "vlc")
	t.Setenv("CLIPLOOP_POLL_INTERVAL", "100ms")
	t.Setenv("CLIPLOOP_SIM_DURATION", "2m")
	t.Setenv("CLIPLOOP_LAUNCH", "false")
	t.Setenv("CLIPLOOP_WATCH", "0")
	t.Setenv("CLIPLOOP_LOG_FILE", "/tmp/x.log")

	cfg := NewAppConfig(zap.NewNop())

	if cfg.GetBackend() != BackendSim {
		t.Errorf("expected sim backend, got %s", cfg.GetBackend())
	}
	if cfg.GetPlayer() != "vlc" {
		t.Errorf("expected vlc, got %s", cfg.GetPlayer())
	}
	if cfg.GetPollInterval() != 100*time.Millisecond {
		t.Errorf("expected 100ms, got %v", cfg.GetPollInterval())
	}
	if cfg.GetSimDuration() != 2*time.Minute {
		t.Errorf("expected 2m, got %v", cfg.GetSimDuration())
	}
	if cfg.ShouldLaunch() || cfg.ShouldWatch() {
		t.Error("launch and watch should be disabled")
	}
	if cfg.GetLogFile() != "/tmp/x.log" {
		t.Errorf("unexpected log file %s", cfg.GetLogFile())
	}
}

func TestNewAppConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CLIPLOOP_BACKEND", "gstreamer")
	t.Setenv("CLIPLOOP_POLL_INTERVAL", "-5s")
	t.Setenv("CLIPLOOP_SIM_DURATION", "forever")
	t.Setenv("CLIPLOOP_LAUNCH", "maybe")

	core, logs := observer.New(zap.WarnLevel)
	cfg := NewAppConfig(zap.New(core))

	if cfg.GetBackend() != defaultBackend() {
		t.Errorf("expected platform default backend, got %s", cfg.GetBackend())
	}
	if cfg.GetPollInterval() != defaultPollInterval {
		t.Errorf("expected default poll interval, got %v", cfg.GetPollInterval())
	}
	if cfg.GetSimDuration() != defaultSimDuration {
		t.Errorf("expected default sim duration, got %v", cfg.GetSimDuration())
	}
	if !cfg.ShouldLaunch() {
		t.Error("expected launch default true")
	}
	if logs.Len() != 4 {
		t.Errorf("expected 4 warnings, got %d", logs.Len())
	}
}

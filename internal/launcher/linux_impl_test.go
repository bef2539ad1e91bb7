//go:build linux
// +build linux

package launcher

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func installed(names ...string) func(string) bool {
	set := map[string]bool{}
	for _, n := range names {
		set[n] = true
	}
	return func(binary string) bool { return set[binary] }
}

// TestDetectCommand verifies preference and fallback ordering
func TestDetectCommand(t *testing.T) {
	tests := []struct {
		name      string
		preferred string
		exists    func(string) bool
		expected  string
	}{
		{"Preferred Installed", "vlc", installed("mpv", "vlc"), "vlc"},
		{"Preference Is Case Insensitive", "VLC", installed("mpv", "vlc"), "vlc"},
		{"Preferred Missing Falls Back", "vlc", installed("celluloid", "mpv"), "mpv"},
		{"Unknown Preference", "spotify", installed("celluloid"), "celluloid"},
		{"Nothing Installed", "mpv", installed(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := detectCommand(zap.NewNop(), tt.preferred, tt.exists)
			if cmd.Name != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, cmd.Name)
			}
		})
	}
}

func TestPlayerCommandArgs(t *testing.T) {
	cmd := PlayerCommand{Name: "vlc", Binary: "vlc", Args: []string{"--control", "dbus", "%s"}}

	args := cmd.args("/videos/clip.mp4")

	if len(args) != 3 || args[2] != "/videos/clip.mp4" || args[0] != "--control" {
		t.Errorf("Unexpected args: %v", args)
	}
	if cmd.Args[2] != "%s" {
		t.Error("Template args must not be modified")
	}
}

func TestLaunchAndClose(t *testing.T) {
	if !commandExists("sleep") {
		t.Skip("sleep not available")
	}

	l := &ProcessLauncher{
		logger:  zap.NewNop(),
		command: PlayerCommand{Name: "sleep", Binary: "sleep", Args: []string{"%s"}},
	}

	if err := l.Launch(context.Background(), "30"); err != nil {
		t.Fatalf("Launch failed: %v", err)
	}
	pid := l.cmd.Process.Pid

	// second launch keeps the running process
	if err := l.Launch(context.Background(), "30"); err != nil {
		t.Fatalf("Second launch failed: %v", err)
	}
	if l.cmd.Process.Pid != pid {
		t.Error("Expected the same process after a second launch")
	}

	done := make(chan error, 1)
	go func() { done <- l.Close() }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Close failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timeout: Close did not return")
	}

	if err := l.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
}

func TestLaunch_Failures(t *testing.T) {
	l := &ProcessLauncher{
		logger:  zap.NewNop(),
		command: PlayerCommand{Name: "missing", Binary: "/nonexistent/player", Args: []string{"%s"}},
	}

	if err := l.Launch(context.Background(), "clip.mp4"); err == nil {
		t.Error("Expected error for a missing binary")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Launch(ctx, "clip.mp4"); err == nil {
		t.Error("Expected error for a cancelled context")
	}
}

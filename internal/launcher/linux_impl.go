//go:build linux
// +build linux

package launcher

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/genricoloni/cliploop/internal/domain"
	"go.uber.org/zap"
)

// PlayerCommand represents a detected MPRIS-capable player binary
type PlayerCommand struct {
	Name   string
	Binary string
	Args   []string // %s will be replaced with the asset path
}

var (
	// Ordered list of players to try (highest priority first)
	playerCommands = []PlayerCommand{
		// mpv needs the mpv-mpris plugin; keep-open holds the last frame at the end
		{Name: "mpv", Binary: "mpv", Args: []string{"--keep-open=yes", "--force-window=yes", "--no-terminal", "%s"}},
		// Celluloid (GTK frontend for mpv)
		{Name: "celluloid", Binary: "celluloid", Args: []string{"%s"}},
		// VLC with the D-Bus control interface enabled
		{Name: "vlc", Binary: "vlc", Args: []string{"--control", "dbus", "--play-and-pause", "%s"}},
	}
)

// ProcessLauncher spawns a media player process on Linux
type ProcessLauncher struct {
	logger  *zap.Logger
	command PlayerCommand
	mu      sync.Mutex
	cmd     *exec.Cmd
	done    chan struct{}
}

// NewLauncher detects an installed player, preferring the configured one
func NewLauncher(logger *zap.Logger, cfg domain.Config) (*ProcessLauncher, error) {
	cmd := detectCommand(logger, cfg.GetPlayer(), commandExists)
	if cmd.Binary == "" {
		return nil, fmt.Errorf("no supported media player found on this system")
	}

	logger.Info("Media player detected",
		zap.String("name", cmd.Name),
		zap.String("binary", cmd.Binary))

	return &ProcessLauncher{
		logger:  logger,
		command: cmd,
	}, nil
}

// detectCommand picks the preferred player if installed, otherwise the first
// installed one in priority order
func detectCommand(logger *zap.Logger, preferred string, exists func(string) bool) PlayerCommand {
	logger.Debug("Detecting media player", zap.String("preferred", preferred))

	for _, cmd := range playerCommands {
		if strings.EqualFold(cmd.Name, preferred) && exists(cmd.Binary) {
			return cmd
		}
	}

	// Fallback: try all players in order
	for _, cmd := range playerCommands {
		if exists(cmd.Binary) {
			logger.Info("Using fallback media player", zap.String("name", cmd.Name))
			return cmd
		}
	}

	return PlayerCommand{} // No player found
}

// commandExists checks if a binary exists in PATH
func commandExists(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

// args expands the %s placeholders with the asset path
func (c PlayerCommand) args(source string) []string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = strings.ReplaceAll(arg, "%s", source)
	}
	return args
}

// Launch spawns the player on source and returns once the process is running.
// The process outlives ctx; Close terminates it.
func (l *ProcessLauncher) Launch(ctx context.Context, source string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cmd != nil {
		return nil
	}

	args := l.command.args(source)
	l.logger.Debug("Launching media player",
		zap.String("command", l.command.Binary),
		zap.Strings("args", args))

	cmd := exec.Command(l.command.Binary, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", l.command.Name, err)
	}

	done := make(chan struct{})
	go func() {
		err := cmd.Wait()
		if err != nil {
			l.logger.Debug("Media player exited", zap.Error(err))
		} else {
			l.logger.Info("Media player exited")
		}
		close(done)
	}()

	l.cmd = cmd
	l.done = done

	l.logger.Info("Media player launched",
		zap.String("name", l.command.Name),
		zap.Int("pid", cmd.Process.Pid),
		zap.String("source", source))
	return nil
}

// Close kills the spawned player and waits for it to exit
func (l *ProcessLauncher) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cmd == nil {
		return nil
	}

	select {
	case <-l.done:
		// already gone
	default:
		if err := l.cmd.Process.Kill(); err != nil {
			return fmt.Errorf("failed to stop %s: %w", l.command.Name, err)
		}
		<-l.done
	}

	l.cmd = nil
	l.done = nil
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/genricoloni/cliploop/internal/domain"
	"github.com/genricoloni/cliploop/internal/loop"
	"github.com/genricoloni/cliploop/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cliploop",
		Short: "Pick a range of a video and preview it as a seamless loop",
		Long: `cliploop plays a fixed video through an MPRIS media player (or a simulated
clock player) and confines playback to a chosen range.

Interactive mode lets you move the playhead and both range boundaries, then
previews the range as a loop. The preview command runs the loop headless.

Environment:
  CLIPLOOP_BACKEND        mpris | sim
  CLIPLOOP_PLAYER         MPRIS player name, e.g. mpv
  CLIPLOOP_POLL_INTERVAL  status cadence, e.g. 250ms
  CLIPLOOP_SIM_DURATION   simulated video length, e.g. 60s
  CLIPLOOP_LAUNCH         spawn the player (true/false)
  CLIPLOOP_WATCH          reload when the video file changes (true/false)
  CLIPLOOP_LOG_FILE       interactive mode log file`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context())
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("cliploop %s\nCommit: %s\nDate:   %s\nGo:     %s\nOS:     %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH))

	root.AddCommand(newPreviewCmd())
	return root
}

func newPreviewCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Loop a range headless until interrupted",
		Example: `  cliploop preview --start 5 --end 15
  CLIPLOOP_BACKEND=sim cliploop preview --start 1.5 --end 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]string{}
			if cmd.Flags().Changed("start") {
				params[loop.ParamStartTime] = start
			}
			if cmd.Flags().Changed("end") {
				params[loop.ParamEndTime] = end
			}
			return runHeadless(cmd.Context(), params)
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "loop start in seconds")
	cmd.Flags().StringVar(&end, "end", "", "loop end in seconds")
	return cmd
}

// runHeadless parses the range exactly like a screen hand-off and loops it
// until SIGINT or SIGTERM
func runHeadless(ctx context.Context, params map[string]string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	b, parseErr := loop.ParseParams(params)

	var logger *zap.Logger
	app := fx.New(
		headlessOptions(b),
		fx.Populate(&logger),
	)
	if err := app.Err(); err != nil {
		return err
	}
	if parseErr != nil {
		logger.Warn("Loop parameters defaulted", zap.Error(parseErr))
	}

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return err
	}

	// Wait for interrupt signal
	<-ctx.Done()

	return app.Stop(context.Background())
}

// runInteractive starts the app and hands the terminal to the TUI
func runInteractive(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		logger *zap.Logger
		pb     domain.Playback
	)
	app := fx.New(
		interactiveOptions(),
		fx.Populate(&logger, &pb),
	)
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(ctx); err != nil {
		return err
	}

	_, runErr := tea.NewProgram(ui.NewModel(ctx, logger, pb), tea.WithAltScreen()).Run()

	if err := app.Stop(context.Background()); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
		if runErr == nil {
			return err
		}
	}
	return runErr
}

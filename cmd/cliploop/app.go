package main

import (
	"context"

	"github.com/genricoloni/cliploop/internal/config"
	"github.com/genricoloni/cliploop/internal/domain"
	"github.com/genricoloni/cliploop/internal/engine"
	"github.com/genricoloni/cliploop/internal/launcher"
	"github.com/genricoloni/cliploop/internal/loop"
	"github.com/genricoloni/cliploop/internal/playback"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// AppOptions wires the configuration, the playback capability and the
// helpers around it. The logger is provided per mode.
var AppOptions = fx.Options(
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	fx.Provide(
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		newPlayback,
		newLauncher,
		newWatcher,
	),

	fx.Invoke(registerHooks),
)

// headlessOptions drives a loop previewer with fixed boundaries from the engine
func headlessOptions(b domain.LoopBoundaries) fx.Option {
	return fx.Options(
		AppOptions,
		fx.Provide(newLogger, engine.NewEngine),
		fx.Supply(b),
		fx.Invoke(registerEngine),
	)
}

// interactiveOptions logs to a file; the TUI owns the terminal
func interactiveOptions() fx.Option {
	return fx.Options(
		AppOptions,
		fx.Provide(newFileLogger),
	)
}

// newLogger creates a new zap logger instance
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// newFileLogger creates a production logger writing to the configured log file
func newFileLogger() (*zap.Logger, error) {
	path := config.LogFilePath()
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

// newPlayback selects the playback backend
func newPlayback(logger *zap.Logger, cfg domain.Config) domain.Playback {
	if cfg.GetBackend() == config.BackendSim {
		return playback.NewSimulatedPlayer(logger, cfg)
	}
	return playback.NewMprisPlayer(logger, cfg)
}

// newLauncher detects a player to spawn. Failing to find one is not fatal:
// a player started by hand is picked up from the bus.
func newLauncher(logger *zap.Logger, cfg domain.Config) domain.Launcher {
	if !cfg.ShouldLaunch() || cfg.GetBackend() == config.BackendSim {
		return launcher.Disabled{}
	}
	l, err := launcher.NewLauncher(logger, cfg)
	if err != nil {
		logger.Warn("Player will not be launched", zap.Error(err))
		return launcher.Disabled{}
	}
	return l
}

func newWatcher(logger *zap.Logger, cfg domain.Config, pb domain.Playback) *playback.AssetWatcher {
	return playback.NewAssetWatcher(logger, cfg, pb)
}

// registerHooks sets up application lifecycle hooks
func registerHooks(
	lc fx.Lifecycle,
	logger *zap.Logger,
	cfg domain.Config,
	pb domain.Playback,
	player domain.Launcher,
	watcher *playback.AssetWatcher,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := pb.Start(ctx); err != nil {
				return err
			}
			if err := player.Launch(ctx, cfg.GetSourceAsset()); err != nil {
				logger.Warn("Failed to launch player", zap.Error(err))
			}
			if err := pb.Load(ctx); err != nil {
				// the MPRIS backend reloads once the player shows up on the bus
				logger.Warn("Source asset not loaded yet", zap.Error(err))
			}
			if cfg.ShouldWatch() {
				if err := watcher.Start(ctx); err != nil {
					logger.Warn("Source asset will not be watched", zap.Error(err))
				}
			}
			logger.Info("cliploop started", zap.String("source", cfg.GetSourceAsset()))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			return multierr.Combine(
				watcher.Stop(ctx),
				player.Close(),
				pb.Stop(ctx),
			)
		},
	})
}

// registerEngine attaches a loop previewer to the engine and runs it
func registerEngine(lc fx.Lifecycle, logger *zap.Logger, pb domain.Playback, e *engine.Engine, b domain.LoopBoundaries) {
	e.Attach(loop.NewLoopPreviewer(logger, pb, b))
	lc.Append(fx.Hook{
		OnStart: e.Start,
		OnStop:  e.Stop,
	})
}

package playback

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/genricoloni/cliploop/internal/domain"
	"go.uber.org/zap"
)

const defaultSettle = 500 * time.Millisecond

// AssetWatcher reloads the playback capability when the source asset is
// rewritten on disk. Bursts of writes are debounced into one reload.
type AssetWatcher struct {
	logger *zap.Logger
	path   string
	settle time.Duration
	reload func(ctx context.Context) error
	fs     *fsnotify.Watcher
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewAssetWatcher creates a watcher that calls pb.Load on changes
func NewAssetWatcher(logger *zap.Logger, cfg domain.Config, pb domain.Playback) *AssetWatcher {
	return &AssetWatcher{
		logger: logger,
		path:   filepath.Clean(cfg.GetSourceAsset()),
		settle: defaultSettle,
		reload: pb.Load,
	}
}

// Start begins watching the asset's directory. Editors and encoders often
// replace files instead of writing in place, so the directory is watched.
func (w *AssetWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fs != nil {
		return nil
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(w.path)); err != nil {
		fs.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.fs = fs

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	w.cancel = cancel

	w.wg.Add(1)
	go w.loop(loopCtx)

	w.logger.Info("Watching source asset", zap.String("path", w.path))
	return nil
}

// Stop stops watching
func (w *AssetWatcher) Stop(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fs == nil {
		return nil
	}
	w.cancel()
	err := w.fs.Close()
	w.wg.Wait()
	w.fs = nil
	return err
}

func (w *AssetWatcher) loop(ctx context.Context) {
	defer w.wg.Done()

	timer := time.NewTimer(w.settle)
	timer.Stop() // Start with stopped timer
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != w.path {
				continue
			}
			if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug("Source asset changed, debouncing...", zap.String("op", evt.Op.String()))
			timer.Reset(w.settle)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Watcher error", zap.Error(err))

		case <-timer.C:
			w.logger.Info("Source asset changed, reloading", zap.String("path", w.path))
			if err := w.reload(ctx); err != nil {
				w.logger.Warn("Reload failed", zap.Error(err))
			}
		}
	}
}

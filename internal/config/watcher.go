package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce collapses the bursts of events editors emit on save.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reloads a configuration file whenever it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger
	fs       *fsnotify.Watcher
}

// NewWatcher watches the directory holding path, so that editors which
// replace the file on save are still seen. A debounce <= 0 selects
// DefaultDebounce.
func NewWatcher(path string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err = fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, debounce: debounce, logger: logger, fs: fsw}, nil
}

// Run blocks until ctx is done, calling onChange with every configuration
// that loads and validates after a change. Invalid files are logged and
// skipped. Run closes the watcher before returning.
func (w *Watcher) Run(ctx context.Context, onChange func(*Config)) error {
	defer w.fs.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("configuration file changed",
				zap.String("file", event.Name),
				zap.String("operation", event.Op.String()),
			)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			cfg, err := Load(w.path)
			if err != nil {
				w.logger.Error("could not reload configuration", zap.String("file", w.path), zap.Error(err))
				continue
			}
			w.logger.Info("configuration reloaded", zap.String("file", w.path))
			onChange(cfg)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("file watcher error", zap.Error(err))

		case <-ctx.Done():
			w.logger.Debug("stopping configuration watcher")
			return nil
		}
	}
}

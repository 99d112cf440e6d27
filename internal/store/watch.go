package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tn-election-atlas/internal/metrics"
)

// debounce window for file events: editors and sync tools touch data
// files several times in quick succession.
const watchDebounce = 2 * time.Second

// Watch re-runs the loader whenever a file under one of the given
// directories changes, swapping the store on success. A failed reload
// keeps the previous snapshot serving. Blocks until ctx is cancelled.
func Watch(ctx context.Context, dirs []string, loader *Loader, st *Store, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
		logger.Info("watching data directory", slog.String("dir", dir))
	}

	var timer *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", slog.String("error", err.Error()))

		case <-reload:
			snap, err := loader.Load(ctx)
			if err != nil {
				metrics.ReloadsTotal.WithLabelValues("error").Inc()
				logger.Error("reload failed, keeping previous snapshot",
					slog.String("error", err.Error()))
				continue
			}
			st.Swap(snap)
			metrics.ReloadsTotal.WithLabelValues("ok").Inc()
			metrics.DatasetRecords.Set(float64(len(snap.Records)))
			metrics.DatasetFeatures.Set(float64(len(snap.Features)))
			logger.Info("dataset reloaded", slog.String("snapshot", snap.ID.String()))
		}
	}
}

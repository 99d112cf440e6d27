// The web command serves the election atlas API: filtered records,
// aggregates, reconciliation and the merged GeoJSON map feed.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tn-election-atlas/internal/config"
	"github.com/tn-election-atlas/internal/metrics"
	"github.com/tn-election-atlas/internal/store"
	"github.com/tn-election-atlas/internal/web"
)

func main() {
	configPath := flag.String("config", "atlas.yaml", "path to config file")
	flag.Parse()

	config.LoadEnv()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	st := &store.Store{}
	loader := store.NewLoader(cfg.Data, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load in the background so the server comes up immediately; data
	// endpoints answer 503 until the first snapshot lands.
	go func() {
		snap, err := loader.Load(ctx)
		if err != nil {
			logger.Error("initial load failed", slog.String("error", err.Error()))
			return
		}
		st.Swap(snap)
		metrics.DatasetRecords.Set(float64(len(snap.Records)))
		metrics.DatasetFeatures.Set(float64(len(snap.Features)))

		if cfg.Data.Watch {
			if dirs := watchDirs(cfg.Data); len(dirs) > 0 {
				if err := store.Watch(ctx, dirs, loader, st, logger); err != nil && ctx.Err() == nil {
					logger.Error("watch stopped", slog.String("error", err.Error()))
				}
			}
		}
	}()

	server := web.NewServer(cfg.Server, st, logger)
	if err := server.Start(); err != nil {
		logger.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// watchDirs derives the directories to watch from the file-based
// sources. URL and SQL sources have nothing on disk to watch.
func watchDirs(data config.DataConfig) []string {
	seen := make(map[string]bool)
	var dirs []string
	add := func(dir string) {
		if dir != "" && dir != "." && !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	if data.ResultsGlob != "" {
		// Watch the fixed directory prefix of the glob.
		dir := filepath.Dir(data.ResultsGlob)
		for strings.ContainsAny(dir, "*?[") {
			dir = filepath.Dir(dir)
		}
		add(dir)
	}
	if data.GeoJSONPath != "" {
		add(filepath.Dir(data.GeoJSONPath))
	}
	return dirs
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// Package store owns the in-memory dataset. Both sources load
// concurrently at startup; the outcome is an immutable Snapshot swapped
// in atomically, so every query sees one consistent dataset and a
// failed reload leaves the previous snapshot serving.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tn-election-atlas/internal/aggregate"
	"github.com/tn-election-atlas/internal/config"
	"github.com/tn-election-atlas/internal/enrich"
	"github.com/tn-election-atlas/internal/ingest"
	"github.com/tn-election-atlas/internal/model"
	"github.com/tn-election-atlas/internal/reconcile"
	"github.com/tn-election-atlas/internal/validate"
)

// Snapshot is one fully loaded, enriched and indexed dataset. It is
// never mutated after Build returns it.
type Snapshot struct {
	ID       uuid.UUID
	LoadedAt time.Time

	Records  []model.ElectionRecord
	Features []model.Feature

	// Index joins boundary features to the full record set; Aggregator
	// carries the unfiltered vote totals for the vote-vs-seat-share
	// comparison.
	Index      *reconcile.Index
	Aggregator *aggregate.Aggregator
}

// Store publishes the current snapshot. The zero value has no snapshot;
// data endpoints serve 503 until the first Swap.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// Current returns the published snapshot, or false before the first
// successful load.
func (s *Store) Current() (*Snapshot, bool) {
	snap := s.current.Load()
	return snap, snap != nil
}

// Swap publishes a new snapshot.
func (s *Store) Swap(snap *Snapshot) {
	s.current.Store(snap)
}

// Loader ingests both datasets per the data configuration.
type Loader struct {
	cfg    config.DataConfig
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default.
func NewLoader(cfg config.DataConfig, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{cfg: cfg, logger: logger}
}

// Load ingests results and boundaries concurrently, enriches and
// validates the records, and builds a snapshot. Neither dataset is
// published unless both load; in strict mode validation violations
// also fail the load.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	var (
		records  []model.ElectionRecord
		features []model.Feature
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = l.loadResults(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		features, err = l.loadBoundaries(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	enrich.All(records)

	report := validate.Check(records)
	if !report.OK() {
		if l.cfg.Strict {
			return nil, report.Err()
		}
		l.logger.Warn("dataset has validation violations",
			slog.Int("violations", len(report.Violations)),
			slog.String("first", report.Violations[0].String()))
	}

	snap := &Snapshot{
		ID:         uuid.New(),
		LoadedAt:   time.Now().UTC(),
		Records:    records,
		Features:   features,
		Index:      reconcile.BuildIndex(records),
		Aggregator: aggregate.New(records),
	}

	cov := snap.Index.Resolve(features)
	l.logger.Info("dataset loaded",
		slog.String("snapshot", snap.ID.String()),
		slog.Int("records", len(records)),
		slog.Int("features", len(features)),
		slog.Int("matched", cov.Matched),
		slog.Int("unmatched", cov.Unmatched))

	return snap, nil
}

func (l *Loader) loadResults(ctx context.Context) ([]model.ElectionRecord, error) {
	switch {
	case l.cfg.SQLDSN != "":
		return ingest.ResultsSQL(ctx, l.cfg.SQLDriver, l.cfg.SQLDSN)
	case l.cfg.ResultsURL != "":
		return ingest.ResultsURL(ctx, l.cfg.ResultsURL)
	case l.cfg.ResultsGlob != "":
		return ingest.ResultsGlob(l.cfg.ResultsGlob)
	}
	return nil, fmt.Errorf("no results source configured")
}

func (l *Loader) loadBoundaries(ctx context.Context) ([]model.Feature, error) {
	if l.cfg.GeoJSONURL != "" {
		return ingest.BoundariesURL(ctx, l.cfg.GeoJSONURL)
	}
	if l.cfg.GeoJSONPath != "" {
		return ingest.BoundariesFile(l.cfg.GeoJSONPath)
	}
	return nil, fmt.Errorf("no boundary source configured")
}

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tn-election-atlas/internal/filter"
	"github.com/tn-election-atlas/internal/metrics"
	"github.com/tn-election-atlas/internal/model"
	"github.com/tn-election-atlas/internal/store"
)

// QueryHandler serves the filtered record list and its aggregates.
type QueryHandler struct {
	Store  *store.Store
	Logger *slog.Logger
}

// recordsResponse pages the filtered subset. Total counts the whole
// subset, not the page, so clients can paginate.
type recordsResponse struct {
	Snapshot string                 `json:"snapshot"`
	Total    int                    `json:"total"`
	Offset   int                    `json:"offset"`
	Limit    int                    `json:"limit"`
	Records  []model.ElectionRecord `json:"records"`
}

// ListRecords applies the facet filters from the query string and
// returns one page of the result.
func (h *QueryHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	snap, ok := snapshot(w, h.Store)
	if !ok {
		return
	}

	state := parseFilterState(r.URL.Query())
	limit := intParam(r.URL.Query().Get("limit"), defaultPageSize)
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := intParam(r.URL.Query().Get("offset"), 0)

	start := time.Now()
	subset := filter.Apply(snap.Records, state)
	metrics.QueryDuration.WithLabelValues("filter").Observe(time.Since(start).Seconds())

	page := subset
	if offset >= len(page) {
		page = nil
	} else {
		page = page[offset:]
		if len(page) > limit {
			page = page[:limit]
		}
	}
	if page == nil {
		page = []model.ElectionRecord{}
	}

	writeJSON(w, http.StatusOK, recordsResponse{
		Snapshot: snap.ID.String(),
		Total:    len(subset),
		Offset:   offset,
		Limit:    limit,
		Records:  page,
	})
}

// GetStats aggregates the filtered subset. The same facet parameters
// as ListRecords apply, so the charts always describe the table the
// user is looking at.
func (h *QueryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	snap, ok := snapshot(w, h.Store)
	if !ok {
		return
	}

	state := parseFilterState(r.URL.Query())

	start := time.Now()
	subset := filter.Apply(snap.Records, state)
	stats := snap.Aggregator.Summarize(subset)
	metrics.QueryDuration.WithLabelValues("aggregate").Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, map[string]any{
		"snapshot": snap.ID.String(),
		"stats":    stats,
	})
}

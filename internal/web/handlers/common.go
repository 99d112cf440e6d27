// Package handlers implements the atlas API endpoints over the
// snapshot store. Every data handler follows the same shape: fetch the
// current snapshot (503 while none exists), run the pure query
// pipeline, encode JSON.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tn-election-atlas/internal/model"
	"github.com/tn-election-atlas/internal/store"
)

const (
	defaultPageSize = 100
	maxPageSize     = 5000
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// snapshot fetches the current snapshot or answers 503. Ingestion
// failure degrades the data views, it never kills the shell.
func snapshot(w http.ResponseWriter, st *store.Store) (*store.Snapshot, bool) {
	snap, ok := st.Current()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "dataset not loaded")
		return nil, false
	}
	return snap, true
}

// parseFilterState maps query parameters onto a FilterState. Unknown
// parameters are ignored; absent ones leave the facet unset.
func parseFilterState(q url.Values) model.FilterState {
	state := model.FilterState{
		District:         q.Get("district"),
		Constituency:     q.Get("constituency"),
		Party:            q.Get("party"),
		Alliance:         q.Get("alliance"),
		Position:         q.Get("position"),
		ConstituencyType: q.Get("constituency_type"),
		AgeBucket:        q.Get("age_bucket"),
		Gender:           q.Get("gender"),
		MarginBucket:     q.Get("margin_bucket"),
		VoteShareBucket:  q.Get("vote_share_bucket"),
		VoteCountBucket:  q.Get("vote_count_bucket"),
		Category:         q.Get("category"),
		Education:        q.Get("education"),
		Search:           q.Get("search"),
		SortBy:           q.Get("sort_by"),
	}
	if year, err := strconv.Atoi(q.Get("year")); err == nil {
		state.Year = year
	}
	state.SortDesc = q.Get("sort_dir") == "desc"
	state.WinnersOnly = boolParam(q.Get("winners_only"))
	return state
}

func boolParam(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func intParam(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

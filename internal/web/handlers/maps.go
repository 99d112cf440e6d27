package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tn-election-atlas/internal/filter"
	"github.com/tn-election-atlas/internal/metrics"
	"github.com/tn-election-atlas/internal/model"
	"github.com/tn-election-atlas/internal/reconcile"
	"github.com/tn-election-atlas/internal/store"
)

// MapsHandler serves the reconciliation endpoints: the single-feature
// join and the merged GeoJSON map feed.
type MapsHandler struct {
	Store  *store.Store
	Logger *slog.Logger
}

// Reconcile joins one boundary feature name and identifier to its
// electoral result. A miss is a 200 with matched=false, not an error:
// "no data" is a first-class state the map must render.
func (h *MapsHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	snap, ok := snapshot(w, h.Store)
	if !ok {
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing name parameter")
		return
	}
	id, _ := strconv.Atoi(r.URL.Query().Get("id"))

	start := time.Now()
	match, matched := snap.Index.Lookup(name, id)
	metrics.QueryDuration.WithLabelValues("reconcile").Observe(time.Since(start).Seconds())

	resp := map[string]any{"matched": matched}
	if matched {
		resp["result"] = match
	}
	writeJSON(w, http.StatusOK, resp)
}

// featureOut is one map feature with result properties merged in.
// Geometry passes through untouched.
type featureOut struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

// GetGeoJSON returns the boundary FeatureCollection with the winner and
// runner-up of each constituency merged into the feature properties.
// The same facet parameters as /api/records narrow which results feed
// the join; features without a result carry no_data so the choropleth
// gives them a neutral fill instead of dropping them.
func (h *MapsHandler) GetGeoJSON(w http.ResponseWriter, r *http.Request) {
	snap, ok := snapshot(w, h.Store)
	if !ok {
		return
	}

	state := parseFilterState(r.URL.Query())

	start := time.Now()
	subset := filter.Apply(snap.Records, state)
	ix := reconcile.BuildIndex(subset)

	features := make([]featureOut, 0, len(snap.Features))
	for _, f := range snap.Features {
		props := map[string]any{
			"name":     f.Properties.Name,
			"id":       f.Properties.ID,
			"district": f.Properties.District,
		}
		if match, matched := ix.Lookup(f.Properties.Name, f.Properties.ID); matched {
			props["winner_party"] = match.Winner.Party
			props["winner_party_ta"] = match.Winner.PartyTamil
			props["winner"] = match.Winner.Candidate
			props["winner_votes"] = match.Winner.Votes
			props["alliance"] = model.AllianceOf(match.Winner.Party)
			if match.Winner.Margin != nil {
				props["margin"] = *match.Winner.Margin
				props["margin_bucket"] = model.MarginBucket(*match.Winner.Margin)
			}
			if match.RunnerUp != nil {
				props["runner_up"] = match.RunnerUp.Candidate
				props["runner_up_party"] = match.RunnerUp.Party
			}
		} else {
			props["no_data"] = true
		}
		features = append(features, featureOut{
			Type:       f.Type,
			Properties: props,
			Geometry:   f.Geometry,
		})
	}
	metrics.QueryDuration.WithLabelValues("geojson").Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, map[string]any{
		"type":     "FeatureCollection",
		"features": features,
	})
}

package handlers

import (
	"net/http"
	"sort"

	"github.com/tn-election-atlas/internal/model"
	"github.com/tn-election-atlas/internal/store"
)

// MetaHandler serves the facet catalog and the health endpoint.
type MetaHandler struct {
	Store *store.Store
}

// facetsResponse lists the distinct values per facet for UI dropdowns.
// Bucket facets carry their fixed labels, the rest come from the data.
type facetsResponse struct {
	Years            []int    `json:"years"`
	Districts        []string `json:"districts"`
	Constituencies   []string `json:"constituencies"`
	Parties          []string `json:"parties"`
	Alliances        []string `json:"alliances"`
	ConstituencyType []string `json:"constituency_types"`
	Educations       []string `json:"educations"`
	AgeBuckets       []string `json:"age_buckets"`
	Buckets          []string `json:"buckets"`
	Categories       []string `json:"categories"`
}

// GetFacets returns every facet's value domain for the current
// snapshot.
func (h *MetaHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	snap, ok := snapshot(w, h.Store)
	if !ok {
		return
	}

	years := make(map[int]bool)
	districts := make(map[string]bool)
	constituencies := make(map[string]bool)
	parties := make(map[string]bool)
	educations := make(map[string]bool)
	types := make(map[string]bool)

	for i := range snap.Records {
		rec := &snap.Records[i]
		years[rec.Year] = true
		districts[rec.District] = true
		constituencies[rec.Constituency] = true
		parties[rec.Party] = true
		if rec.Education != "" {
			educations[rec.Education] = true
		}
		if rec.ConstituencyType != "" {
			types[rec.ConstituencyType] = true
		}
	}

	resp := facetsResponse{
		Years:            sortedInts(years),
		Districts:        sortedStrings(districts),
		Constituencies:   sortedStrings(constituencies),
		Parties:          sortedStrings(parties),
		Alliances:        model.Alliances,
		ConstituencyType: sortedStrings(types),
		Educations:       sortedStrings(educations),
		AgeBuckets:       model.AgeBuckets,
		Buckets:          []string{model.BucketHigh, model.BucketMedium, model.BucketLow},
		Categories: []string{
			model.CategoryIncumbent,
			model.CategoryTurncoat,
			model.CategoryRecontest,
		},
	}
	writeJSON(w, http.StatusOK, resp)
}

// Health reports load state. Always 200 once a snapshot exists, 503
// before the first load, so orchestrators can gate traffic on it.
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.Store.Current()
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "loading"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"snapshot":  snap.ID.String(),
		"loaded_at": snap.LoadedAt,
		"records":   len(snap.Records),
		"features":  len(snap.Features),
	})
}

func sortedStrings(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		if v != "" {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func sortedInts(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

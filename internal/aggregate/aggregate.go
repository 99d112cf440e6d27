// Package aggregate derives summary statistics from a record subset:
// seat counts, vote-vs-seat-share comparison, win rates, winner ages,
// bucket and top-N breakdowns. Every reducer is total over the empty
// subset and idempotent; stats are always rebuilt from scratch, never
// patched.
package aggregate

import (
	"sort"

	"github.com/tn-election-atlas/internal/model"
)

// BucketCount is one labelled count in a breakdown table.
type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// WinRate is wins over contests for one candidate category.
type WinRate struct {
	Wins      int     `json:"wins"`
	Contested int     `json:"contested"`
	Rate      float64 `json:"rate"` // percentage, 0 when nothing contested
}

// Stats is the full derived summary for one subset. Never mutated after
// Summarize returns it.
type Stats struct {
	Records           int                `json:"records"`
	Winners           int                `json:"winners"`
	SeatsByParty      map[string]int     `json:"seats_by_party"`
	SeatsByAlliance   map[string]int     `json:"seats_by_alliance"`
	VoteShareByParty  map[string]float64 `json:"vote_share_by_party"`
	WinRateByCategory map[string]WinRate `json:"win_rate_by_category"`
	AvgWinnerAge      map[string]float64 `json:"avg_winner_age_by_party"`
	MarginBuckets     map[string]int     `json:"margin_buckets"`
	GenderCounts      map[string]int     `json:"gender_counts"`
	TopDistricts      []BucketCount      `json:"top_districts"`
	TopProfessions    []BucketCount      `json:"top_professions"`
	Education         []BucketCount      `json:"education_breakdown"`
}

// TopN is how many entries the district and profession frequency tables
// carry.
const TopN = 10

// Aggregator computes stats over arbitrary subsets of one dataset. It
// precomputes the unfiltered per-party vote totals once, because the
// vote-share side of the vote-vs-seat-share comparison uses the full
// dataset as denominator even when seats are counted over a filtered
// subset.
type Aggregator struct {
	partyVotes map[string]int
	totalVotes int
}

// New builds an aggregator over the full dataset.
func New(all []model.ElectionRecord) *Aggregator {
	a := &Aggregator{partyVotes: make(map[string]int)}
	for i := range all {
		a.partyVotes[all[i].Party] += all[i].Votes
		a.totalVotes += all[i].Votes
	}
	return a
}

// Summarize reduces a subset to its Stats. Safe on an empty subset:
// every map comes back empty and every rate zero.
func (a *Aggregator) Summarize(subset []model.ElectionRecord) *Stats {
	st := &Stats{
		Records:           len(subset),
		SeatsByParty:      make(map[string]int),
		SeatsByAlliance:   make(map[string]int),
		VoteShareByParty:  make(map[string]float64),
		WinRateByCategory: make(map[string]WinRate),
		AvgWinnerAge:      make(map[string]float64),
		MarginBuckets:     make(map[string]int),
		GenderCounts:      make(map[string]int),
	}

	ageSum := make(map[string]int)
	ageCount := make(map[string]int)
	districts := make(map[string]int)
	professions := make(map[string]int)
	education := make(map[string]int)

	for i := range subset {
		r := &subset[i]

		if r.Won() {
			st.Winners++
			st.SeatsByParty[r.Party]++
			st.SeatsByAlliance[model.AllianceOf(r.Party)]++
			if r.Margin != nil {
				st.MarginBuckets[model.MarginBucket(*r.Margin)]++
			}
			// Ages at or below 20 are below the statutory candidacy
			// minimum and mark bad source rows.
			if r.Age != nil && *r.Age > 20 {
				ageSum[r.Party] += *r.Age
				ageCount[r.Party]++
			}
		}

		st.GenderCounts[r.Sex]++
		if r.District != "" {
			districts[r.District]++
		}
		if r.Profession != "" {
			professions[r.Profession]++
		}
		if r.Education != "" {
			education[r.Education]++
		}
	}

	for party := range st.SeatsByParty {
		st.VoteShareByParty[party] = a.voteShare(party)
	}
	for party, n := range ageCount {
		st.AvgWinnerAge[party] = float64(ageSum[party]) / float64(n)
	}
	st.WinRateByCategory[model.CategoryIncumbent] = winRate(subset, func(r *model.ElectionRecord) bool { return r.Incumbent.True() })
	st.WinRateByCategory[model.CategoryTurncoat] = winRate(subset, func(r *model.ElectionRecord) bool { return r.Turncoat.True() })
	st.WinRateByCategory[model.CategoryRecontest] = winRate(subset, func(r *model.ElectionRecord) bool { return r.Recontest.True() })

	st.TopDistricts = topCounts(districts, TopN)
	st.TopProfessions = topCounts(professions, TopN)
	st.Education = educationCounts(education)

	return st
}

// voteShare is the party's share of all votes cast in the unfiltered
// dataset, as a percentage.
func (a *Aggregator) voteShare(party string) float64 {
	if a.totalVotes == 0 {
		return 0
	}
	return float64(a.partyVotes[party]) / float64(a.totalVotes) * 100
}

// winRate counts wins over contests for records matching the category
// predicate. Zero contests yields a zero rate, never a division fault.
func winRate(subset []model.ElectionRecord, in func(*model.ElectionRecord) bool) WinRate {
	var wr WinRate
	for i := range subset {
		if !in(&subset[i]) {
			continue
		}
		wr.Contested++
		if subset[i].Won() {
			wr.Wins++
		}
	}
	if wr.Contested > 0 {
		wr.Rate = float64(wr.Wins) / float64(wr.Contested) * 100
	}
	return wr
}

// topCounts orders a frequency map by count descending, label ascending
// on ties, truncated to n. Deterministic for any map iteration order.
func topCounts(counts map[string]int, n int) []BucketCount {
	out := make([]BucketCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, BucketCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

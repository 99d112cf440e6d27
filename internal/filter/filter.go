// Package filter applies a FilterState to a record set: free-text
// search first, then the facet predicates ANDed together, then the
// winners-only collapse, then the stable sort. The composition order is
// fixed; the engine is a pure function of its inputs and always returns
// a freshly allocated slice.
package filter

import (
	"strconv"
	"strings"

	"github.com/tn-election-atlas/internal/model"
)

// Apply narrows records to those matching every set facet in state,
// then sorts. The input is never mutated; the result is always a new
// slice, so calling twice with identical arguments yields identical,
// reference-independent output.
func Apply(records []model.ElectionRecord, state model.FilterState) []model.ElectionRecord {
	out := make([]model.ElectionRecord, 0, len(records))
	for i := range records {
		r := &records[i]
		if !matchSearch(r, state.Search) {
			continue
		}
		if !matchFacets(r, state) {
			continue
		}
		out = append(out, *r)
	}

	if state.WinnersOnly {
		winners := out[:0]
		for i := range out {
			if out[i].Won() {
				winners = append(winners, out[i])
			}
		}
		out = winners
	}

	sortRecords(out, state.SortBy, state.SortDesc)
	return out
}

// matchSearch is the free-text facet: case-insensitive substring over
// constituency, candidate, party and district, in both the base and the
// Tamil variant. A hit on any one field is sufficient.
func matchSearch(r *model.ElectionRecord, term string) bool {
	if !model.IsSet(term) {
		return true
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	for _, field := range []string{
		r.Constituency, r.ConstituencyTamil,
		r.Candidate,
		r.Party, r.PartyTamil,
		r.District, r.DistrictTamil,
	} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchFacets(r *model.ElectionRecord, s model.FilterState) bool {
	if s.Year != 0 && r.Year != s.Year {
		return false
	}
	if model.IsSet(s.District) && !strings.EqualFold(r.District, s.District) {
		return false
	}
	if model.IsSet(s.Constituency) && !strings.EqualFold(r.Constituency, s.Constituency) {
		return false
	}
	if model.IsSet(s.Party) && !strings.EqualFold(r.Party, s.Party) {
		return false
	}
	if model.IsSet(s.Alliance) && model.AllianceOf(r.Party) != s.Alliance {
		return false
	}
	if model.IsSet(s.Position) && !matchPosition(r, s.Position) {
		return false
	}
	if model.IsSet(s.ConstituencyType) && !strings.EqualFold(r.ConstituencyType, s.ConstituencyType) {
		return false
	}
	if model.IsSet(s.AgeBucket) {
		if r.Age == nil || model.AgeBucket(*r.Age) != s.AgeBucket {
			return false
		}
	}
	if model.IsSet(s.Gender) && !strings.EqualFold(r.Sex, s.Gender) {
		return false
	}
	if model.IsSet(s.MarginBucket) {
		if r.Margin == nil || model.MarginBucket(*r.Margin) != s.MarginBucket {
			return false
		}
	}
	if model.IsSet(s.VoteShareBucket) {
		if r.VoteSharePct == nil || model.VoteShareBucket(*r.VoteSharePct) != s.VoteShareBucket {
			return false
		}
	}
	if model.IsSet(s.VoteCountBucket) && model.VoteCountBucket(r.Votes) != s.VoteCountBucket {
		return false
	}
	if model.IsSet(s.Category) && !matchCategory(r, s.Category) {
		return false
	}
	if model.IsSet(s.Education) && !strings.EqualFold(r.Education, s.Education) {
		return false
	}
	return true
}

// matchPosition handles the position facet. "DepositLost" is a derived
// filter evaluated on vote share instead of an exact rank; anything
// non-numeric otherwise never matches.
func matchPosition(r *model.ElectionRecord, want string) bool {
	if want == model.PositionDepositLost {
		return r.DepositLost()
	}
	pos, err := strconv.Atoi(want)
	if err != nil {
		return false
	}
	return r.Position == pos
}

func matchCategory(r *model.ElectionRecord, category string) bool {
	switch category {
	case model.CategoryIncumbent:
		return r.Incumbent.True()
	case model.CategoryTurncoat:
		return r.Turncoat.True()
	case model.CategoryRecontest:
		return r.Recontest.True()
	}
	return false
}

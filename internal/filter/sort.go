package filter

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tn-election-atlas/internal/model"
)

// collator compares display strings. Tamil tailoring also orders the
// Latin-script fields correctly, so one collator serves both variants.
var collator = collate.New(language.Tamil)

// sortRecords sorts in place, stably, on the given key. Numeric keys
// compare numerically, string keys via the collator. Missing values
// (nil optionals, empty strings) sort last regardless of direction so
// that flipping the direction never surfaces the gaps first; ties keep
// their input order for reproducible pagination.
func sortRecords(records []model.ElectionRecord, key string, desc bool) {
	if key == "" {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		c, iMissing, jMissing := compare(&records[i], &records[j], key)
		if iMissing != jMissing {
			return jMissing
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// compare returns the three-way comparison on key plus missing-ness of
// either side. Missing values compare equal among themselves.
func compare(a, b *model.ElectionRecord, key string) (c int, aMissing, bMissing bool) {
	switch key {
	case model.SortByYear:
		return cmpInt(a.Year, b.Year), false, false
	case model.SortByVotes:
		return cmpInt(a.Votes, b.Votes), false, false
	case model.SortByPosition:
		return cmpInt(a.Position, b.Position), false, false
	case model.SortByMargin:
		return cmpIntPtr(a.Margin, b.Margin)
	case model.SortByAge:
		return cmpIntPtr(a.Age, b.Age)
	case model.SortByVoteShare:
		return cmpFloatPtr(a.VoteSharePct, b.VoteSharePct)
	case model.SortByMarginPct:
		return cmpFloatPtr(a.MarginPct, b.MarginPct)
	case model.SortByTurnout:
		return cmpFloatPtr(a.TurnoutPct, b.TurnoutPct)
	case model.SortByConstituency:
		return cmpString(a.Constituency, b.Constituency)
	case model.SortByDistrict:
		return cmpString(a.District, b.District)
	case model.SortByCandidate:
		return cmpString(a.Candidate, b.Candidate)
	case model.SortByParty:
		return cmpString(a.Party, b.Party)
	case model.SortByEducation:
		return cmpString(a.Education, b.Education)
	}
	return 0, false, false
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpIntPtr(a, b *int) (int, bool, bool) {
	if a == nil || b == nil {
		return 0, a == nil, b == nil
	}
	return cmpInt(*a, *b), false, false
}

func cmpFloatPtr(a, b *float64) (int, bool, bool) {
	if a == nil || b == nil {
		return 0, a == nil, b == nil
	}
	switch {
	case *a < *b:
		return -1, false, false
	case *a > *b:
		return 1, false, false
	}
	return 0, false, false
}

func cmpString(a, b string) (int, bool, bool) {
	if a == "" || b == "" {
		return 0, a == "", b == ""
	}
	return collator.CompareString(a, b), false, false
}

// Package reconcile joins boundary features to electoral results via
// canonical constituency keys. The index is rebuilt from scratch on
// every input change rather than maintained incrementally; at the data
// scale involved the rebuild is cheap and there is nothing to go stale.
package reconcile

import (
	"github.com/tn-election-atlas/internal/model"
	"github.com/tn-election-atlas/internal/normalize"
)

// Match is one resolved constituency: its winner and, when the data has
// a rank-2 record for the same constituency and year, the runner-up.
type Match struct {
	Winner   model.ElectionRecord  `json:"winner"`
	RunnerUp *model.ElectionRecord `json:"runner_up,omitempty"`
}

// Index maps canonical constituency keys to match results for O(1)
// lookup per boundary feature at render time.
type Index struct {
	entries map[string]Match
}

// BuildIndex builds one entry per constituency winner in the given
// records, keyed by the winner's own constituency name via SimpleKey.
// When the records span several years, the most recent year wins the
// key. Cost is proportional to the record count; rebuild whenever the
// input subset changes.
func BuildIndex(records []model.ElectionRecord) *Index {
	type slot struct {
		winner   *model.ElectionRecord
		runnerUp *model.ElectionRecord
		year     int
	}
	slots := make(map[string]*slot)

	for i := range records {
		r := &records[i]
		if r.Position != 1 && r.Position != 2 {
			continue
		}
		key := normalize.SimpleKey(r.Constituency)
		s := slots[key]
		if s == nil || r.Year > s.year {
			s = &slot{year: r.Year}
			slots[key] = s
		}
		if r.Year != s.year {
			continue
		}
		if r.Position == 1 {
			s.winner = r
		} else {
			s.runnerUp = r
		}
	}

	entries := make(map[string]Match, len(slots))
	for key, s := range slots {
		if s.winner == nil {
			// A rank-2 record without its winner in the subset is not
			// a resolvable constituency.
			continue
		}
		m := Match{Winner: *s.winner}
		if s.runnerUp != nil {
			ru := *s.runnerUp
			m.RunnerUp = &ru
		}
		entries[key] = m
	}
	return &Index{entries: entries}
}

// Lookup resolves a boundary feature to its match. A false ok is the
// first-class "no data" state: the feature renders with a neutral fill,
// it is never dropped and never an error.
func (ix *Index) Lookup(featureName string, featureID int) (Match, bool) {
	m, ok := ix.entries[normalize.Key(featureName, featureID)]
	return m, ok
}

// Len returns the number of resolvable constituencies in the index.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Coverage reports how much of a boundary dataset the index resolves.
// Unmatched names feed the alias-suggestion workflow.
type Coverage struct {
	Matched   int      `json:"matched"`
	Unmatched int      `json:"unmatched"`
	Misses    []string `json:"misses,omitempty"`
}

// Resolve checks every feature against the index and reports coverage.
func (ix *Index) Resolve(features []model.Feature) Coverage {
	var cov Coverage
	for _, f := range features {
		if _, ok := ix.Lookup(f.Properties.Name, f.Properties.ID); ok {
			cov.Matched++
		} else {
			cov.Unmatched++
			cov.Misses = append(cov.Misses, f.Properties.Name)
		}
	}
	return cov
}

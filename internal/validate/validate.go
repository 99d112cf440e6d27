// Package validate checks ingested records against the dataset's
// structural invariants. Violations are warnings by default — the data
// still loads — and only fail the load in strict mode.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tn-election-atlas/internal/model"
)

// Violation kinds.
const (
	KindDuplicateRow    = "duplicate_row"
	KindMultipleWinners = "multiple_winners"
	KindMissingWinner   = "missing_winner"
	KindPositionGap     = "position_gap"
	KindVoteShareRange  = "vote_share_range"
)

// Violation is one invariant breach, located by constituency and year.
type Violation struct {
	Kind         string `json:"kind"`
	Constituency string `json:"constituency"`
	Year         int    `json:"year"`
	Detail       string `json:"detail"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s [%s %d]: %s", v.Kind, v.Constituency, v.Year, v.Detail)
}

// Report collects every violation found in one record set.
type Report struct {
	Violations []Violation
}

// OK reports whether the record set passed every check.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Err converts the report to an error for strict-mode loads.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("validation: %d violations, first: %s", len(r.Violations), r.Violations[0])
}

// Check runs every invariant over the records:
// exactly one row per (constituency, year, candidate), exactly one
// position-1 row per (constituency, year), contiguous positions, and
// vote shares within [0, 100].
func Check(records []model.ElectionRecord) *Report {
	report := &Report{}

	type contest struct {
		constituency string
		year         int
	}
	seen := make(map[string]bool)
	winners := make(map[contest]int)
	positions := make(map[contest][]int)

	for i := range records {
		r := &records[i]
		c := contest{constituency: r.Constituency, year: r.Year}

		rowKey := strings.ToLower(fmt.Sprintf("%s|%d|%s", r.Constituency, r.Year, r.Candidate))
		if seen[rowKey] {
			report.add(KindDuplicateRow, r.Constituency, r.Year,
				fmt.Sprintf("candidate %q appears more than once", r.Candidate))
		}
		seen[rowKey] = true

		if r.Position == 1 {
			winners[c]++
		}
		positions[c] = append(positions[c], r.Position)

		if r.VoteSharePct != nil && (*r.VoteSharePct < 0 || *r.VoteSharePct > 100) {
			report.add(KindVoteShareRange, r.Constituency, r.Year,
				fmt.Sprintf("candidate %q vote share %.2f outside [0, 100]", r.Candidate, *r.VoteSharePct))
		}
	}

	// Deterministic report order regardless of map iteration.
	contests := make([]contest, 0, len(positions))
	for c := range positions {
		contests = append(contests, c)
	}
	sort.Slice(contests, func(i, j int) bool {
		if contests[i].year != contests[j].year {
			return contests[i].year < contests[j].year
		}
		return contests[i].constituency < contests[j].constituency
	})

	for _, c := range contests {
		switch n := winners[c]; {
		case n == 0:
			report.add(KindMissingWinner, c.constituency, c.year, "no position-1 record")
		case n > 1:
			report.add(KindMultipleWinners, c.constituency, c.year,
				fmt.Sprintf("%d position-1 records", n))
		}

		pos := positions[c]
		sort.Ints(pos)
		for i, p := range pos {
			if p != i+1 {
				report.add(KindPositionGap, c.constituency, c.year,
					fmt.Sprintf("positions %v are not contiguous from 1", pos))
				break
			}
		}
	}

	return report
}

func (r *Report) add(kind, constituency string, year int, detail string) {
	r.Violations = append(r.Violations, Violation{
		Kind:         kind,
		Constituency: constituency,
		Year:         year,
		Detail:       detail,
	})
}

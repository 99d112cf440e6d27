// Package model holds the canonical typed representations shared by the
// filter, aggregation and reconciliation layers: one ElectionRecord per
// candidate-constituency-year, the boundary features they join against,
// and the FilterState driving queries.
package model

import "strings"

// Constituency reservation types.
const (
	TypeGeneral   = "GEN"
	TypeScheduled = "SC"
	TypeTribal    = "ST"
)

// Flag is a boolean-like field as it appears in the source data.
// The result files are inconsistent about encoding: "true", "TRUE",
// "1" and "yes" all occur for the same column.
type Flag string

// True reports whether the flag holds a truthy source value.
func (f Flag) True() bool {
	switch strings.ToLower(strings.TrimSpace(string(f))) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// ElectionRecord is one candidate's result in one constituency and year.
// Optional numeric fields are pointers so that a value absent from the
// source row is distinguishable from zero; absent values never match
// range or bucket filters.
type ElectionRecord struct {
	// Identity
	Constituency     string `json:"constituency"`
	ConstituencyType string `json:"constituency_type"` // GEN, SC or ST
	District         string `json:"district"`
	Year             int    `json:"year"`

	// Candidate
	Candidate  string `json:"candidate"`
	Sex        string `json:"sex"`
	Age        *int   `json:"age,omitempty"`
	Party      string `json:"party"`
	Education  string `json:"education"`
	Profession string `json:"profession"`

	// Outcome
	Votes        int      `json:"votes"`
	ValidVotes   int      `json:"valid_votes"`
	Electors     int      `json:"electors"`
	TurnoutPct   *float64 `json:"turnout_pct,omitempty"`
	VoteSharePct *float64 `json:"vote_share_pct,omitempty"`
	Position     int      `json:"position"`
	Margin       *int     `json:"margin,omitempty"`
	MarginPct    *float64 `json:"margin_pct,omitempty"`

	// History
	TermsWon          int    `json:"terms_won"`
	Incumbent         Flag   `json:"incumbent"`
	Turncoat          Flag   `json:"turncoat"`
	Recontest         Flag   `json:"recontest"`
	PriorParty        string `json:"prior_party,omitempty"`
	PriorConstituency string `json:"prior_constituency,omitempty"`

	// Localized labels, attached once by the enrichment step and never
	// recomputed afterwards.
	ConstituencyTamil string `json:"constituency_ta,omitempty"`
	DistrictTamil     string `json:"district_ta,omitempty"`
	PartyTamil        string `json:"party_ta,omitempty"`
	EducationTamil    string `json:"education_ta,omitempty"`
	ProfessionTamil   string `json:"profession_ta,omitempty"`
	SexTamil          string `json:"sex_ta,omitempty"`
}

// Won reports whether this record is the constituency winner.
func (r *ElectionRecord) Won() bool {
	return r.Position == 1
}

// DepositLost reports whether the candidate forfeited the deposit: vote
// share strictly below one sixth of valid votes (16.66%). Records with
// no vote share never qualify.
func (r *ElectionRecord) DepositLost() bool {
	return r.VoteSharePct != nil && *r.VoteSharePct < DepositThreshold
}

// DepositThreshold is the statutory one-sixth vote-share floor, expressed
// as a percentage, below which a candidate's deposit is forfeited.
const DepositThreshold = 16.66

package model

// Facet values left empty (or FacetAll) leave that dimension unfiltered.
const FacetAll = "All"

// PositionDepositLost selects candidates below the deposit threshold
// instead of an exact finishing position.
const PositionDepositLost = "DepositLost"

// Candidate category facet values.
const (
	CategoryIncumbent = "Incumbent"
	CategoryTurncoat  = "Turncoat"
	CategoryRecontest = "Recontest"
)

// Sort keys accepted by FilterState.SortBy. Numeric keys compare
// numerically, the rest by locale-aware collation.
const (
	SortByYear         = "year"
	SortByConstituency = "constituency"
	SortByDistrict     = "district"
	SortByCandidate    = "candidate"
	SortByParty        = "party"
	SortByVotes        = "votes"
	SortByVoteShare    = "vote_share"
	SortByMargin       = "margin"
	SortByMarginPct    = "margin_pct"
	SortByTurnout      = "turnout"
	SortByAge          = "age"
	SortByPosition     = "position"
	SortByEducation    = "education"
)

// FilterState is the immutable facet configuration for one query. The
// zero value selects everything. Facets combine with logical AND;
// WinnersOnly is applied after every facet, and SortBy last.
type FilterState struct {
	Year             int    `json:"year,omitempty"`
	District         string `json:"district,omitempty"`
	Constituency     string `json:"constituency,omitempty"`
	Party            string `json:"party,omitempty"`
	Alliance         string `json:"alliance,omitempty"`
	Position         string `json:"position,omitempty"` // "1", "2", ... or PositionDepositLost
	ConstituencyType string `json:"constituency_type,omitempty"`
	AgeBucket        string `json:"age_bucket,omitempty"`
	Gender           string `json:"gender,omitempty"`
	MarginBucket     string `json:"margin_bucket,omitempty"`
	VoteShareBucket  string `json:"vote_share_bucket,omitempty"`
	VoteCountBucket  string `json:"vote_count_bucket,omitempty"`
	Category         string `json:"category,omitempty"`
	Education        string `json:"education,omitempty"`
	Search           string `json:"search,omitempty"`

	SortBy      string `json:"sort_by,omitempty"`
	SortDesc    bool   `json:"sort_desc,omitempty"`
	WinnersOnly bool   `json:"winners_only,omitempty"`
}

// IsSet reports whether a facet value narrows the result set.
func IsSet(v string) bool {
	return v != "" && v != FacetAll
}

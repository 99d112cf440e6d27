package filter

import (
	"reflect"
	"testing"

	"github.com/tn-election-atlas/internal/model"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

// fixture is a small two-constituency, mixed-party record set.
func fixture() []model.ElectionRecord {
	return []model.ElectionRecord{
		{
			Constituency: "Chennai", District: "Chennai", Year: 2021,
			Candidate: "Anbazhagan", Party: "DMK", Sex: "M", Age: intp(54),
			Votes: 50000, Position: 1, Margin: intp(12000),
			VoteSharePct: floatp(52.3), Incumbent: "true",
		},
		{
			Constituency: "Chennai", District: "Chennai", Year: 2021,
			Candidate: "Balan", Party: "ADMK", Sex: "M", Age: intp(61),
			Votes: 38000, Position: 2, VoteSharePct: floatp(39.7),
		},
		{
			Constituency: "Mylapore", District: "Chennai", Year: 2021,
			Candidate: "Chitra", Party: "BJP", Sex: "F", Age: intp(45),
			Votes: 61000, Position: 1, Margin: intp(52000),
			VoteSharePct: floatp(55.0), Turncoat: "1",
		},
		{
			Constituency: "Mylapore", District: "Chennai", Year: 2021,
			Candidate: "Devi", Party: "NTK", Sex: "F", Age: intp(33),
			Votes: 9000, Position: 3, VoteSharePct: floatp(8.1),
			Recontest: "yes",
		},
	}
}

func TestApplyIsSubsetAndPure(t *testing.T) {
	records := fixture()
	state := model.FilterState{Party: "DMK"}

	got := Apply(records, state)
	if len(got) != 1 || got[0].Candidate != "Anbazhagan" {
		t.Fatalf("Apply party=DMK = %v", got)
	}

	// Identical inputs yield identical, reference-independent output.
	again := Apply(records, state)
	if !reflect.DeepEqual(got, again) {
		t.Error("Apply not deterministic")
	}
	if len(records) != 4 {
		t.Error("Apply mutated its input")
	}
}

func TestIndependentFacetsCommute(t *testing.T) {
	records := fixture()

	both := Apply(records, model.FilterState{District: "Chennai", Gender: "F"})
	viaGender := Apply(Apply(records, model.FilterState{Gender: "F"}), model.FilterState{District: "Chennai"})
	viaDistrict := Apply(Apply(records, model.FilterState{District: "Chennai"}), model.FilterState{Gender: "F"})

	if !reflect.DeepEqual(both, viaGender) || !reflect.DeepEqual(both, viaDistrict) {
		t.Error("independent facets are not order-independent")
	}
}

func TestMarginBucketBoundaries(t *testing.T) {
	tests := []struct {
		margin int
		bucket string
	}{
		{50001, model.BucketHigh},
		{50000, model.BucketMedium},
		{10000, model.BucketMedium},
		{9999, model.BucketLow},
	}
	for _, tt := range tests {
		records := []model.ElectionRecord{{Constituency: "X", Position: 1, Margin: intp(tt.margin)}}
		got := Apply(records, model.FilterState{MarginBucket: tt.bucket})
		if len(got) != 1 {
			t.Errorf("margin %d should fall in %s", tt.margin, tt.bucket)
		}
	}
}

func TestMissingMarginNeverMatches(t *testing.T) {
	records := []model.ElectionRecord{{Constituency: "X", Position: 2}}
	for _, bucket := range []string{model.BucketHigh, model.BucketMedium, model.BucketLow} {
		if got := Apply(records, model.FilterState{MarginBucket: bucket}); len(got) != 0 {
			t.Errorf("nil margin matched bucket %s", bucket)
		}
	}
	// "All" leaves the record in.
	if got := Apply(records, model.FilterState{MarginBucket: model.FacetAll}); len(got) != 1 {
		t.Error("bucket All must not filter")
	}
}

func TestDepositLostThreshold(t *testing.T) {
	lost := model.ElectionRecord{Constituency: "X", Position: 5, VoteSharePct: floatp(16.65)}
	kept := model.ElectionRecord{Constituency: "Y", Position: 5, VoteSharePct: floatp(16.66)}
	noShare := model.ElectionRecord{Constituency: "Z", Position: 5}

	got := Apply([]model.ElectionRecord{lost, kept, noShare}, model.FilterState{Position: model.PositionDepositLost})
	if len(got) != 1 || got[0].Constituency != "X" {
		t.Errorf("deposit-lost filter = %v, want only X", got)
	}
}

func TestPositionExactMatch(t *testing.T) {
	got := Apply(fixture(), model.FilterState{Position: "2"})
	if len(got) != 1 || got[0].Candidate != "Balan" {
		t.Errorf("position=2 = %v", got)
	}
}

func TestCategoryTruthiness(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{model.CategoryIncumbent, "Anbazhagan"}, // "true"
		{model.CategoryTurncoat, "Chitra"},      // "1"
		{model.CategoryRecontest, "Devi"},       // "yes"
	}
	for _, tt := range tests {
		got := Apply(fixture(), model.FilterState{Category: tt.category})
		if len(got) != 1 || got[0].Candidate != tt.want {
			t.Errorf("category %s = %v, want %s", tt.category, got, tt.want)
		}
	}
}

func TestWinnersOnlyAppliesAfterFacets(t *testing.T) {
	got := Apply(fixture(), model.FilterState{Gender: "F", WinnersOnly: true})
	if len(got) != 1 || got[0].Candidate != "Chitra" {
		t.Errorf("gender=F winners-only = %v", got)
	}
}

func TestSearchMatchesAnyField(t *testing.T) {
	records := fixture()
	records[0].ConstituencyTamil = "சென்னை"

	tests := []struct {
		term string
		want int
	}{
		{"myla", 2},    // constituency substring
		{"dmk", 2},     // party: DMK and ADMK both contain "dmk"
		{"chitra", 1},  // candidate
		{"சென்", 1},    // localized constituency
		{"nowhere", 0},
	}
	for _, tt := range tests {
		if got := Apply(records, model.FilterState{Search: tt.term}); len(got) != tt.want {
			t.Errorf("search %q matched %d records, want %d", tt.term, len(got), tt.want)
		}
	}
}

func TestAllianceFacet(t *testing.T) {
	got := Apply(fixture(), model.FilterState{Alliance: model.AllianceADMK})
	if len(got) != 2 {
		t.Fatalf("ADMK alliance = %v, want ADMK and BJP rows", got)
	}
	others := Apply(fixture(), model.FilterState{Alliance: model.AllianceOthers})
	if len(others) != 1 || others[0].Party != "NTK" {
		t.Errorf("Others alliance = %v, want NTK row", others)
	}
}

func BenchmarkApply(b *testing.B) {
	records := make([]model.ElectionRecord, 0, 4000)
	for i := 0; i < 1000; i++ {
		records = append(records, fixture()...)
	}
	state := model.FilterState{District: "Chennai", Gender: "F", SortBy: model.SortByVotes}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Apply(records, state)
	}
}

package reconcile

import (
	"testing"

	"github.com/tn-election-atlas/internal/model"
)

func intp(v int) *int { return &v }

func chennaiRecords() []model.ElectionRecord {
	return []model.ElectionRecord{
		{
			Constituency: "Chennai", Year: 2021, Candidate: "Anbazhagan",
			Party: "DMK", Position: 1, Votes: 50000, Margin: intp(12000),
		},
		{
			Constituency: "Chennai", Year: 2021, Candidate: "Balan",
			Party: "ADMK", Position: 2, Votes: 38000,
		},
	}
}

func TestLookupWinnerAndRunnerUp(t *testing.T) {
	ix := BuildIndex(chennaiRecords())

	match, ok := ix.Lookup("Chennai (SC)", 7)
	if !ok {
		t.Fatal("Chennai (SC) must reconcile against the Chennai records")
	}
	if match.Winner.Party != "DMK" || match.Winner.Candidate != "Anbazhagan" {
		t.Errorf("winner = %+v, want the DMK record", match.Winner)
	}
	if match.RunnerUp == nil || match.RunnerUp.Party != "ADMK" {
		t.Errorf("runner-up = %+v, want the ADMK record", match.RunnerUp)
	}
}

func TestLookupMissIsNoData(t *testing.T) {
	ix := BuildIndex(chennaiRecords())

	if _, ok := ix.Lookup("Ambattur", 12); ok {
		t.Error("unknown feature must report no data, not a match")
	}
}

func TestWinnerWithoutRunnerUp(t *testing.T) {
	records := chennaiRecords()[:1]
	ix := BuildIndex(records)

	match, ok := ix.Lookup("Chennai", 0)
	if !ok {
		t.Fatal("single-winner constituency must still reconcile")
	}
	if match.RunnerUp != nil {
		t.Errorf("runner-up = %+v, want nil when no rank-2 record exists", match.RunnerUp)
	}
}

func TestRunnerUpWithoutWinnerIsNotIndexed(t *testing.T) {
	records := chennaiRecords()[1:]
	ix := BuildIndex(records)

	if _, ok := ix.Lookup("Chennai", 0); ok {
		t.Error("a rank-2 record alone must not produce an index entry")
	}
	if ix.Len() != 0 {
		t.Errorf("index length = %d, want 0", ix.Len())
	}
}

func TestMultiYearKeepsLatest(t *testing.T) {
	records := append(chennaiRecords(), model.ElectionRecord{
		Constituency: "Chennai", Year: 2016, Candidate: "Old Winner",
		Party: "ADMK", Position: 1, Votes: 42000,
	})
	ix := BuildIndex(records)

	match, ok := ix.Lookup("Chennai", 0)
	if !ok {
		t.Fatal("Chennai must reconcile")
	}
	if match.Winner.Year != 2021 {
		t.Errorf("winner year = %d, want the 2021 result", match.Winner.Year)
	}
}

func TestResolveCoverage(t *testing.T) {
	ix := BuildIndex(chennaiRecords())
	features := []model.Feature{
		{Properties: model.FeatureProperties{Name: "Chennai (SC)", ID: 7}},
		{Properties: model.FeatureProperties{Name: "Ambattur", ID: 12}},
		{Properties: model.FeatureProperties{Name: "Avadi", ID: 13}},
	}

	cov := ix.Resolve(features)
	if cov.Matched != 1 || cov.Unmatched != 2 {
		t.Errorf("coverage = %+v, want 1 matched, 2 unmatched", cov)
	}
	if len(cov.Misses) != 2 || cov.Misses[0] != "Ambattur" {
		t.Errorf("misses = %v", cov.Misses)
	}
}

func TestRebuildReflectsSubset(t *testing.T) {
	all := chennaiRecords()
	ix := BuildIndex(all)
	if _, ok := ix.Lookup("Chennai", 0); !ok {
		t.Fatal("full index must resolve Chennai")
	}

	// Rebuilding over an emptied subset forgets the constituency:
	// the index carries no state between builds.
	empty := BuildIndex(nil)
	if _, ok := empty.Lookup("Chennai", 0); ok {
		t.Error("empty rebuild must not resolve anything")
	}
}

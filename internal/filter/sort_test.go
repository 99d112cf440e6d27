package filter

import (
	"testing"

	"github.com/tn-election-atlas/internal/model"
)

func TestSortNumericAscendingAndDescending(t *testing.T) {
	records := []model.ElectionRecord{
		{Candidate: "B", Votes: 200},
		{Candidate: "A", Votes: 100},
		{Candidate: "C", Votes: 300},
	}

	asc := Apply(records, model.FilterState{SortBy: model.SortByVotes})
	if asc[0].Votes != 100 || asc[2].Votes != 300 {
		t.Errorf("ascending votes order = %v", votesOf(asc))
	}

	desc := Apply(records, model.FilterState{SortBy: model.SortByVotes, SortDesc: true})
	if desc[0].Votes != 300 || desc[2].Votes != 100 {
		t.Errorf("descending votes order = %v", votesOf(desc))
	}
}

func TestSortMissingValuesLastBothDirections(t *testing.T) {
	records := []model.ElectionRecord{
		{Candidate: "NoMargin"},
		{Candidate: "Big", Margin: intp(40000)},
		{Candidate: "Small", Margin: intp(500)},
	}

	for _, desc := range []bool{false, true} {
		got := Apply(records, model.FilterState{SortBy: model.SortByMargin, SortDesc: desc})
		if got[2].Candidate != "NoMargin" {
			t.Errorf("desc=%v: missing margin must sort last, got %v", desc, namesOf(got))
		}
	}
}

func TestSortStableOnTies(t *testing.T) {
	records := []model.ElectionRecord{
		{Candidate: "first", Votes: 100},
		{Candidate: "second", Votes: 100},
		{Candidate: "third", Votes: 100},
	}
	got := Apply(records, model.FilterState{SortBy: model.SortByVotes})
	if got[0].Candidate != "first" || got[1].Candidate != "second" || got[2].Candidate != "third" {
		t.Errorf("ties must keep input order, got %v", namesOf(got))
	}
}

func TestSortStringCollation(t *testing.T) {
	records := []model.ElectionRecord{
		{Candidate: "c", Constituency: "Vellore"},
		{Candidate: "a", Constituency: "Chennai"},
		{Candidate: "b", Constituency: "Madurai"},
	}
	got := Apply(records, model.FilterState{SortBy: model.SortByConstituency})
	if got[0].Constituency != "Chennai" || got[1].Constituency != "Madurai" || got[2].Constituency != "Vellore" {
		t.Errorf("collated order wrong: %v", namesOf(got))
	}
}

func TestNoSortKeyKeepsInputOrder(t *testing.T) {
	records := fixture()
	got := Apply(records, model.FilterState{})
	for i := range records {
		if got[i].Candidate != records[i].Candidate {
			t.Fatalf("unsorted apply reordered records: %v", namesOf(got))
		}
	}
}

func votesOf(records []model.ElectionRecord) []int {
	out := make([]int, len(records))
	for i := range records {
		out[i] = records[i].Votes
	}
	return out
}

func namesOf(records []model.ElectionRecord) []string {
	out := make([]string, len(records))
	for i := range records {
		out[i] = records[i].Candidate
	}
	return out
}

package suggest

import (
	"testing"

	"github.com/tn-election-atlas/internal/model"
	"github.com/tn-election-atlas/internal/reconcile"
)

func buildTestDictionary() *SymSpell {
	dict := NewSymSpell()
	for _, key := range []string{
		"tiruvarur", "thoothukudi", "mylapore", "egmore",
		"madurai east", "madurai west", "kanyakumari",
	} {
		dict.AddTerm(key)
	}
	return dict
}

func TestLookup(t *testing.T) {
	dict := buildTestDictionary()

	tests := []struct {
		name         string
		input        string
		wantTerm     string
		wantDistance int
	}{
		{
			name:         "exact match",
			input:        "mylapore",
			wantTerm:     "mylapore",
			wantDistance: 0,
		},
		{
			name:         "one insertion",
			input:        "thiruvarur",
			wantTerm:     "tiruvarur",
			wantDistance: 1,
		},
		{
			name:         "transposition",
			input:        "egmoer",
			wantTerm:     "egmore",
			wantDistance: 1,
		},
		{
			name:         "two edits",
			input:        "kanniyakumari",
			wantTerm:     "kanyakumari",
			wantDistance: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dict.Lookup(tt.input, 2)
			if len(got) == 0 {
				t.Fatalf("Lookup(%q) found nothing", tt.input)
			}
			if got[0].Term != tt.wantTerm || got[0].Distance != tt.wantDistance {
				t.Errorf("Lookup(%q)[0] = %+v, want %q at distance %d",
					tt.input, got[0], tt.wantTerm, tt.wantDistance)
			}
		})
	}
}

func TestLookupBeyondDistanceFindsNothing(t *testing.T) {
	dict := buildTestDictionary()
	if got := dict.Lookup("completely different", 2); len(got) != 0 {
		t.Errorf("unrelated input matched %v", got)
	}
}

func TestAliases(t *testing.T) {
	records := []model.ElectionRecord{
		{Constituency: "Tiruvarur", Year: 2021, Candidate: "A", Position: 1},
		{Constituency: "Mylapore", Year: 2021, Candidate: "B", Position: 1},
	}
	ix := reconcile.BuildIndex(records)
	dict := BuildDictionary(records)

	features := []model.Feature{
		// Resolves against the index; not a candidate.
		{Properties: model.FeatureProperties{Name: "Mylapore", ID: 1}},
		// Unknown spelling with a near neighbour.
		{Properties: model.FeatureProperties{Name: "Thiruvaruur", ID: 2}},
		// Unknown spelling with no neighbour in range.
		{Properties: model.FeatureProperties{Name: "Ambattur", ID: 3}},
	}

	got := Aliases(features, ix, dict)
	if len(got) != 2 {
		t.Fatalf("Aliases = %+v, want two unresolved features", got)
	}

	near := got[0]
	if near.FeatureName != "Thiruvaruur" || len(near.Suggestions) == 0 {
		t.Fatalf("near miss = %+v, want a suggestion", near)
	}
	if near.Suggestions[0].Term != "tiruvarur" {
		t.Errorf("suggestion = %+v, want tiruvarur", near.Suggestions[0])
	}

	far := got[1]
	if far.FeatureName != "Ambattur" || len(far.Suggestions) != 0 {
		t.Errorf("far miss = %+v, want no suggestions", far)
	}
}

package suggest

import (
	"github.com/tn-election-atlas/internal/model"
	"github.com/tn-election-atlas/internal/normalize"
	"github.com/tn-election-atlas/internal/reconcile"
)

// AliasCandidate pairs one unresolved boundary feature with its nearest
// canonical constituency keys. The map key to add to the alias table is
// CleanedName -> Suggestions[0].Term, once a human confirms it.
type AliasCandidate struct {
	FeatureName string       `json:"feature_name"`
	FeatureID   int          `json:"feature_id"`
	CleanedName string       `json:"cleaned_name"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// BuildDictionary indexes the canonical keys of every constituency in
// the record set.
func BuildDictionary(records []model.ElectionRecord) *SymSpell {
	dict := NewSymSpell()
	for i := range records {
		dict.AddTerm(normalize.SimpleKey(records[i].Constituency))
	}
	return dict
}

// Aliases resolves every feature against the index and, for the
// misses, looks up nearby canonical keys in the dictionary. Features
// with no suggestion within distance still appear, so the report shows
// the full unreconciled surface.
func Aliases(features []model.Feature, ix *reconcile.Index, dict *SymSpell) []AliasCandidate {
	var out []AliasCandidate
	for _, f := range features {
		name, id := f.Properties.Name, f.Properties.ID
		if _, ok := ix.Lookup(name, id); ok {
			continue
		}
		out = append(out, AliasCandidate{
			FeatureName: name,
			FeatureID:   id,
			CleanedName: normalize.Key(name, id),
			Suggestions: dict.Lookup(normalize.Key(name, id), maxEditDistance),
		})
	}
	return out
}

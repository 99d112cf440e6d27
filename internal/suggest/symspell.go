// Package suggest proposes alias-table entries for boundary feature
// names that the reconciliation index cannot resolve. It keeps a
// symmetric-delete spelling dictionary over the canonical constituency
// keys; the normalizer itself never consults it — suggestions are a
// diagnostic for whoever maintains the alias table.
package suggest

import (
	"sort"
	"strings"
)

// maxEditDistance is the Damerau-Levenshtein radius for suggestions.
// Two covers the transliteration drift actually seen between the
// boundary and result datasets (thiruvarur/tiruvarur and friends).
const maxEditDistance = 2

// minTermLength excludes keys too short to correct meaningfully.
const minTermLength = 3

// Suggestion is one candidate canonical key for a misspelled name.
type Suggestion struct {
	Term     string `json:"term"`
	Distance int    `json:"distance"`
}

// SymSpell is a symmetric-delete spelling dictionary: every delete
// variant within maxEditDistance of every term is pre-indexed, so
// lookup does no dictionary scan.
type SymSpell struct {
	terms   map[string]bool
	deletes map[string][]string
}

// NewSymSpell creates an empty dictionary.
func NewSymSpell() *SymSpell {
	return &SymSpell{
		terms:   make(map[string]bool),
		deletes: make(map[string][]string),
	}
}

// AddTerm indexes one canonical key and its delete variants.
func (s *SymSpell) AddTerm(term string) {
	term = strings.ToLower(strings.TrimSpace(term))
	if len(term) < minTermLength || s.terms[term] {
		return
	}
	s.terms[term] = true
	for _, del := range generateDeletes(term, maxEditDistance) {
		s.deletes[del] = append(s.deletes[del], term)
	}
}

// Contains checks for an exact dictionary hit.
func (s *SymSpell) Contains(term string) bool {
	return s.terms[strings.ToLower(strings.TrimSpace(term))]
}

// Lookup finds canonical keys within maxDistance of the input, sorted
// by edit distance then alphabetically.
func (s *SymSpell) Lookup(input string, maxDistance int) []Suggestion {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil
	}
	if maxDistance > maxEditDistance {
		maxDistance = maxEditDistance
	}

	if s.terms[input] {
		return []Suggestion{{Term: input, Distance: 0}}
	}

	seen := make(map[string]bool)
	var out []Suggestion

	inputDeletes := append(generateDeletes(input, maxDistance), input)
	for _, del := range inputDeletes {
		for _, term := range s.deletes[del] {
			if seen[term] {
				continue
			}
			seen[term] = true
			if dist := editDistance(input, term, maxDistance); dist >= 0 {
				out = append(out, Suggestion{Term: term, Distance: dist})
			}
		}
		// The delete itself may be a dictionary term (input has extra
		// characters).
		if s.terms[del] && !seen[del] {
			seen[del] = true
			if dist := editDistance(input, del, maxDistance); dist >= 0 {
				out = append(out, Suggestion{Term: del, Distance: dist})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Term < out[j].Term
	})
	return out
}

func generateDeletes(term string, maxDistance int) []string {
	if maxDistance <= 0 || len(term) == 0 {
		return nil
	}
	deletes := make(map[string]bool)
	generateDeletesRecursive(term, maxDistance, deletes)

	out := make([]string, 0, len(deletes))
	for del := range deletes {
		out = append(out, del)
	}
	return out
}

func generateDeletesRecursive(term string, distance int, deletes map[string]bool) {
	if distance <= 0 || len(term) <= 1 {
		return
	}
	for i := 0; i < len(term); i++ {
		del := term[:i] + term[i+1:]
		if !deletes[del] {
			deletes[del] = true
			generateDeletesRecursive(del, distance-1, deletes)
		}
	}
}

// editDistance is the Damerau-Levenshtein distance between a and b,
// or -1 once it provably exceeds maxDistance.
func editDistance(a, b string, maxDistance int) int {
	lenA, lenB := len(a), len(b)

	if abs(lenA-lenB) > maxDistance {
		return -1
	}
	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	if lenA > lenB {
		a, b = b, a
		lenA, lenB = lenB, lenA
	}

	prev := make([]int, lenA+1)
	curr := make([]int, lenA+1)
	prevPrev := make([]int, lenA+1)

	for i := 0; i <= lenA; i++ {
		prev[i] = i
	}

	for j := 1; j <= lenB; j++ {
		curr[0] = j
		minDist := j

		for i := 1; i <= lenA; i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)

			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if t := prevPrev[i-2] + cost; t < curr[i] {
					curr[i] = t
				}
			}

			if curr[i] < minDist {
				minDist = curr[i]
			}
		}

		if minDist > maxDistance {
			return -1
		}

		prevPrev, prev, curr = prev, curr, prevPrev
	}

	if prev[lenA] > maxDistance {
		return -1
	}
	return prev[lenA]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

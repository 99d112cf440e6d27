package aggregate

import "sort"

// educationOrder is the fixed domain ordering for education-level
// breakdowns, lowest attainment first.
var educationOrder = []string{
	"Illiterate",
	"Literate",
	"5th Pass",
	"8th Pass",
	"10th Pass",
	"12th Pass",
	"Graduate",
	"Graduate Professional",
	"Post Graduate",
	"Doctorate",
	"Others",
}

var educationRank = func() map[string]int {
	m := make(map[string]int, len(educationOrder))
	for i, level := range educationOrder {
		m[level] = i
	}
	return m
}()

// educationCounts orders an education frequency map by the fixed domain
// ranking. Levels outside the ranking sort last, keeping their relative
// order among themselves.
func educationCounts(counts map[string]int) []BucketCount {
	out := make([]BucketCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, BucketCount{Label: label, Count: count})
	}
	// Labels first so that unranked entries have a deterministic
	// relative order to preserve.
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	sort.SliceStable(out, func(i, j int) bool {
		ri, iRanked := educationRank[out[i].Label]
		rj, jRanked := educationRank[out[j].Label]
		if iRanked != jRanked {
			return iRanked
		}
		return iRanked && ri < rj
	})
	return out
}

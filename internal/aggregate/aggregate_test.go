package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tn-election-atlas/internal/model"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func dataset() []model.ElectionRecord {
	return []model.ElectionRecord{
		{
			Constituency: "Chennai", District: "Chennai", Year: 2021,
			Candidate: "Anbazhagan", Party: "DMK", Sex: "M", Age: intp(54),
			Votes: 50000, Position: 1, Margin: intp(12000),
			VoteSharePct: floatp(52.3), Incumbent: "true", Profession: "Advocate",
			Education: "Graduate",
		},
		{
			Constituency: "Chennai", District: "Chennai", Year: 2021,
			Candidate: "Balan", Party: "ADMK", Sex: "M", Age: intp(61),
			Votes: 38000, Position: 2, VoteSharePct: floatp(39.7),
			Incumbent: "false", Profession: "Business", Education: "12th Pass",
		},
		{
			Constituency: "Mylapore", District: "Chennai", Year: 2021,
			Candidate: "Chitra", Party: "DMK", Sex: "F", Age: intp(45),
			Votes: 61000, Position: 1, Margin: intp(52000),
			VoteSharePct: floatp(55.0), Profession: "Advocate", Education: "Post Graduate",
		},
		{
			Constituency: "Madurai East", District: "Madurai", Year: 2021,
			Candidate: "Devi", Party: "ADMK", Sex: "F", Age: intp(18), // invalid age
			Votes: 51000, Position: 1, Margin: intp(9000),
			VoteSharePct: floatp(48.0), Incumbent: "1", Education: "Graduate",
		},
	}
}

func TestSummarizeSeats(t *testing.T) {
	all := dataset()
	stats := New(all).Summarize(all)

	assert.Equal(t, 4, stats.Records)
	assert.Equal(t, 3, stats.Winners)
	assert.Equal(t, map[string]int{"DMK": 2, "ADMK": 1}, stats.SeatsByParty)
	assert.Equal(t, 2, stats.SeatsByAlliance[model.AllianceDMK])
	assert.Equal(t, 1, stats.SeatsByAlliance[model.AllianceADMK])
}

func TestVoteShareUsesUnfilteredDenominator(t *testing.T) {
	all := dataset()
	agg := New(all)

	// Subset drops every ADMK row, but DMK's vote share must still be
	// measured against all 200000 votes cast, not the subset's total.
	subset := []model.ElectionRecord{all[0], all[2]}
	stats := agg.Summarize(subset)

	require.Contains(t, stats.VoteShareByParty, "DMK")
	assert.InDelta(t, float64(50000+61000)/200000*100, stats.VoteShareByParty["DMK"], 1e-9)
	// No ADMK seats in the subset, so no ADMK entry either.
	assert.NotContains(t, stats.VoteShareByParty, "ADMK")
}

func TestWinRateByCategory(t *testing.T) {
	all := dataset()
	stats := New(all).Summarize(all)

	incumbent := stats.WinRateByCategory[model.CategoryIncumbent]
	assert.Equal(t, 2, incumbent.Contested) // "true" and "1"
	assert.Equal(t, 2, incumbent.Wins)
	assert.InDelta(t, 100.0, incumbent.Rate, 1e-9)

	// Nothing recontested: zero rate, no division fault.
	recontest := stats.WinRateByCategory[model.CategoryRecontest]
	assert.Equal(t, 0, recontest.Contested)
	assert.Equal(t, 0.0, recontest.Rate)
}

func TestAvgWinnerAgeExcludesInvalid(t *testing.T) {
	all := dataset()
	stats := New(all).Summarize(all)

	assert.InDelta(t, (54.0+45.0)/2, stats.AvgWinnerAge["DMK"], 1e-9)
	// The only ADMK winner is 18, below the validity floor.
	assert.NotContains(t, stats.AvgWinnerAge, "ADMK")
}

func TestMarginBucketCounts(t *testing.T) {
	all := dataset()
	stats := New(all).Summarize(all)

	assert.Equal(t, 1, stats.MarginBuckets[model.BucketHigh])   // 52000
	assert.Equal(t, 1, stats.MarginBuckets[model.BucketMedium]) // 12000
	assert.Equal(t, 1, stats.MarginBuckets[model.BucketLow])    // 9000
}

func TestTopCountsDeterministicOrdering(t *testing.T) {
	all := dataset()
	stats := New(all).Summarize(all)

	require.NotEmpty(t, stats.TopDistricts)
	assert.Equal(t, BucketCount{Label: "Chennai", Count: 3}, stats.TopDistricts[0])
	assert.Equal(t, BucketCount{Label: "Madurai", Count: 1}, stats.TopDistricts[1])

	// Equal counts break ties alphabetically.
	counts := map[string]int{"b": 2, "a": 2, "c": 5}
	top := topCounts(counts, 10)
	assert.Equal(t, []BucketCount{{"c", 5}, {"a", 2}, {"b", 2}}, top)

	// Truncation to n.
	assert.Len(t, topCounts(counts, 2), 2)
}

func TestEducationFixedOrdering(t *testing.T) {
	counts := map[string]int{
		"Graduate":   3,
		"Illiterate": 1,
		"Zz Custom":  2, // unranked
		"10th Pass":  4,
		"Aa Custom":  1, // unranked
	}
	got := educationCounts(counts)

	labels := make([]string, len(got))
	for i, bc := range got {
		labels[i] = bc.Label
	}
	// Ranked levels in domain order first, unranked last in their own
	// stable order.
	assert.Equal(t, []string{"Illiterate", "10th Pass", "Graduate", "Aa Custom", "Zz Custom"}, labels)
}

func TestSummarizeEmptySubset(t *testing.T) {
	agg := New(nil)
	stats := agg.Summarize(nil)

	require.NotNil(t, stats)
	assert.Equal(t, 0, stats.Records)
	assert.Equal(t, 0, stats.Winners)
	assert.Empty(t, stats.SeatsByParty)
	assert.Empty(t, stats.TopDistricts)
	assert.Equal(t, 0.0, stats.WinRateByCategory[model.CategoryIncumbent].Rate)
}

func TestSummarizeIdempotent(t *testing.T) {
	all := dataset()
	agg := New(all)

	first := agg.Summarize(all)
	second := agg.Summarize(all)
	assert.Equal(t, first, second)
}

package model

// Bucket labels shared by the margin, vote-share and vote-count facets.
const (
	BucketHigh   = "High"
	BucketMedium = "Medium"
	BucketLow    = "Low"
)

// MarginBucket classifies a winning margin: High above 50000, Medium
// from 10000 to 50000 inclusive, Low below 10000.
func MarginBucket(margin int) string {
	switch {
	case margin > 50000:
		return BucketHigh
	case margin >= 10000:
		return BucketMedium
	default:
		return BucketLow
	}
}

// VoteShareBucket classifies a vote-share percentage: High above 50,
// Medium from 30 to 50 inclusive, Low below 30.
func VoteShareBucket(share float64) string {
	switch {
	case share > 50:
		return BucketHigh
	case share >= 30:
		return BucketMedium
	default:
		return BucketLow
	}
}

// VoteCountBucket classifies an absolute vote count: High above 100000,
// Medium from 50000 to 100000 inclusive, Low below 50000.
func VoteCountBucket(votes int) string {
	switch {
	case votes > 100000:
		return BucketHigh
	case votes >= 50000:
		return BucketMedium
	default:
		return BucketLow
	}
}

// Age bucket labels in ascending order.
var AgeBuckets = []string{"Below 30", "30-40", "41-50", "51-60", "61-70", "Above 70"}

// AgeBucket classifies a candidate age into the fixed buckets.
func AgeBucket(age int) string {
	switch {
	case age < 30:
		return "Below 30"
	case age <= 40:
		return "30-40"
	case age <= 50:
		return "41-50"
	case age <= 60:
		return "51-60"
	case age <= 70:
		return "61-70"
	default:
		return "Above 70"
	}
}

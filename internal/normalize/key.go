// Package normalize derives canonical lookup keys from constituency
// names. The boundary dataset and the result tables disagree on
// spelling, reservation annotations and a handful of split
// constituencies; Key resolves the boundary side onto the result side's
// canonical form, SimpleKey cleans the result side itself.
package normalize

import (
	"regexp"
	"strings"
)

// reReservation strips reservation-category annotations: "(SC)", "(ST)",
// with or without surrounding space, including unterminated forms like
// "Chennai(SC" that occur in the boundary data.
var reReservation = regexp.MustCompile(`\s*\(\s*s[ct]\s*\)?\s*`)

// clean lowercases, strips reservation annotations and collapses
// whitespace. Shared by Key and SimpleKey.
func clean(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = reReservation.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// Key maps a boundary-feature name plus its numeric constituency
// identifier to the canonical key used by the result data. It is pure
// and total: unmapped names pass through cleaned, and reconciliation
// reports them as misses rather than erroring.
//
// Order matters: identifier-based disambiguation of split
// constituencies runs first, because both halves share one base name
// in the boundary dataset and only the number tells them apart.
func Key(raw string, id int) string {
	if base, ok := splitConstituencies[id]; ok && strings.HasPrefix(clean(raw), base.base) {
		return base.canonical
	}

	s := clean(raw)

	if canonical, ok := aliases[s]; ok {
		return canonical
	}
	return s
}

// SimpleKey derives the result-side key from a constituency name as it
// appears in the tabular data. The tabular side has no spelling-variant
// problem, only a formatting one, so this is deliberately simpler than
// Key: casefold, strip the reservation annotation, collapse whitespace.
func SimpleKey(raw string) string {
	return clean(raw)
}

// splitConstituencies disambiguates constituencies that the boundary
// dataset carries under one base name but the delimitation split into
// separate seats, keyed by the boundary feature's numeric identifier.
type splitEntry struct {
	base      string
	canonical string
}

var splitConstituencies = map[int]splitEntry{
	140: {base: "tiruchirappalli", canonical: "tiruchirappalli west"},
	141: {base: "tiruchirappalli", canonical: "tiruchirappalli east"},
}

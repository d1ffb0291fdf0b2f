package subscription

import "strings"

// DayMaskLength is the number of positions in a day mask, one per
// weekday. "0011000" marks the 3rd and 4th positions active.
const DayMaskLength = 7

// MatchDay reports whether a day selector matches a stored mask.
// Matching is substring containment, not positional comparison: the
// selector "11" matches the mask "0011000", and so does "00110", while
// "111" does not. The store-side equivalent is `days LIKE '%<day>%'`.
func MatchDay(mask, day string) bool {
	return strings.Contains(mask, day)
}

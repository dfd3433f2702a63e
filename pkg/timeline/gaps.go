package timeline

import "sort"

// Span is a half-open interval [Start, End) in minutes since midnight.
type Span struct {
	Start int
	End   int
}

// Minutes returns the length of the span.
func (s Span) Minutes() int {
	return s.End - s.Start
}

// FreeSpans computes the free intervals of the day window [dayStart, dayEnd)
// that are not covered by any of the placed spans. The placed spans may
// arrive in any order but must not overlap each other; overlapping input is
// a caller error and the result is undefined.
//
// The result is recomputed from scratch on every call and comes back as
// disjoint spans in ascending start order.
func FreeSpans(dayStart, dayEnd int, placed []Span) []Span {
	sorted := make([]Span, len(placed))
	copy(sorted, placed)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var free []Span
	lastEnd := dayStart

	for _, span := range sorted {
		if span.Start > lastEnd {
			free = append(free, Span{Start: lastEnd, End: span.Start})
		}
		if span.End > lastEnd {
			lastEnd = span.End
		}
	}

	if dayEnd > lastEnd {
		free = append(free, Span{Start: lastEnd, End: dayEnd})
	}

	return free
}

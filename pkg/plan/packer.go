package plan

import (
	"sort"

	"pairplan/pkg/timeline"
)

// Placement is an item annotated with the clock position it actually got
// on the packed timeline, in minutes since midnight.
type Placement struct {
	Item  Item
	Start int
	End   int
}

// Pack lays fixed and approved items onto a single ordered timeline. It is
// a pure projection: the item collection is never modified.
//
// Fixed items keep their declared clock time, even when that leaves an
// idle gap before them. Approved items float: each one starts wherever the
// schedule currently ends and keeps only its duration. Approved items are
// consumed in creation order and never reordered relative to each other.
func Pack(fixed, approved []Item, dayStart int) []Placement {
	fq := make([]Item, len(fixed))
	copy(fq, fixed)
	sort.SliceStable(fq, func(i, j int) bool {
		return startMinutes(fq[i]) < startMinutes(fq[j])
	})

	aq := make([]Item, len(approved))
	copy(aq, approved)
	sort.SliceStable(aq, func(i, j int) bool {
		return aq[i].CreatedAt < aq[j].CreatedAt
	})

	var schedule []Placement
	current := dayStart

	for len(fq) > 0 || len(aq) > 0 {
		switch {
		case len(fq) > 0 && startMinutes(fq[0]) <= current:
			// The next fixed item is due (or overdue): it goes at its own
			// declared time no matter what.
			start := startMinutes(fq[0])
			end := start + fq[0].DurationMinutes()
			schedule = append(schedule, Placement{Item: fq[0], Start: start, End: end})
			if end > current {
				current = end
			}
			fq = fq[1:]

		case len(aq) > 0 && (len(fq) == 0 || current+aq[0].DurationMinutes() <= startMinutes(fq[0])):
			// The next approved item fits before the next fixed one.
			dur := aq[0].DurationMinutes()
			schedule = append(schedule, Placement{Item: aq[0], Start: current, End: current + dur})
			current += dur
			aq = aq[1:]

		case len(fq) > 0:
			// Nothing fits before the next fixed item: fast-forward across
			// the idle gap.
			current = startMinutes(fq[0])

		default:
			// Both queues stuck; bail out rather than loop forever.
			return schedule
		}
	}

	return schedule
}

// PackState projects the state's fixed and approved items onto the day
// timeline starting at the state's day start.
func PackState(s State) []Placement {
	var fixed, approved []Item
	for _, it := range s.Items {
		switch it.Status {
		case StatusFixed:
			fixed = append(fixed, it)
		case StatusApproved:
			approved = append(approved, it)
		}
	}
	start, err := timeline.TimeToMinutes(s.DayStart)
	if err != nil {
		start = 0
	}
	return Pack(fixed, approved, start)
}

func startMinutes(it Item) int {
	m, err := timeline.TimeToMinutes(it.StartTime)
	if err != nil {
		return 0
	}
	return m
}

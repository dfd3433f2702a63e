package plan

import (
	"sort"

	"pairplan/pkg/timeline"
)

// Budget factors for the frictionless-sync policy, as fractions of the
// day window.
const (
	busySharedFactor  = 0.8
	lightSharedFactor = 0.4
	lightSoloFactor   = 0.4
)

// Allocate runs a frictionless sync: it fills the day's free time with
// backlog items according to the state's energy mode and auto-approves
// whatever it places.
//
// Every run starts from a clean slate: all currently approved items are
// demoted back to the backlog with their approvals cleared, then shared
// candidates (and, in Light mode, solo candidates) are greedily first-fit
// into the gaps left by fixed items and earlier placements. Shared items
// get both approvals; a solo item only needs the acting participant's.
// A candidate that fits no remaining gap stays in the backlog.
//
// The completion event is emitted once per run, even when nothing fits.
func Allocate(s State, pair Pair) (State, []Event) {
	done := []Event{{Kind: EventSyncComplete}}

	dayStart, err := timeline.TimeToMinutes(s.DayStart)
	if err != nil {
		return s, done
	}
	dayEnd, err := timeline.TimeToMinutes(s.DayEnd)
	if err != nil || dayEnd <= dayStart {
		return s, done
	}
	window := dayEnd - dayStart

	targetShared := int(float64(window) * busySharedFactor)
	targetSolo := 0
	if s.EnergyMode == ModeLight {
		targetShared = int(float64(window) * lightSharedFactor)
		targetSolo = int(float64(window) * lightSoloFactor)
	}

	out := s.clone()

	// Full reset: re-running replaces the prior auto-placement entirely.
	for i := range out.Items {
		if out.Items[i].Status == StatusApproved {
			out.Items[i].Status = StatusBacklog
			out.Items[i].ApprovedBy = nil
		}
	}

	var shared, solo []int
	for i := range out.Items {
		if out.Items[i].Status != StatusBacklog {
			continue
		}
		if out.Items[i].Solo {
			solo = append(solo, i)
		} else {
			shared = append(shared, i)
		}
	}

	switch s.EnergyMode {
	case ModeLight:
		// A light day never schedules high-energy shared activities.
		kept := shared[:0]
		for _, i := range shared {
			if out.Items[i].Energy != EnergyHigh {
				kept = append(kept, i)
			}
		}
		shared = kept
	default:
		// Busy days front-load the high-energy items; ties keep their
		// original relative order.
		sort.SliceStable(shared, func(a, b int) bool {
			return out.Items[shared[a]].Energy == EnergyHigh &&
				out.Items[shared[b]].Energy != EnergyHigh
		})
	}

	placed := fixedSpans(out.Items)

	bothApprovals := []Participant{pair.A, pair.B}
	placed = placeCandidates(&out, shared, placed, dayStart, dayEnd, targetShared, bothApprovals)

	if s.EnergyMode == ModeLight {
		soloApprovals := []Participant{s.CurrentUser}
		placeCandidates(&out, solo, placed, dayStart, dayEnd, targetSolo, soloApprovals)
	}

	return out, done
}

// placeCandidates greedily drops candidates into the first gap that holds
// them, stopping once the minute budget is met. It returns the placed-span
// set grown by whatever it managed to fit.
func placeCandidates(s *State, candidates []int, placed []timeline.Span, dayStart, dayEnd, budget int, approvals []Participant) []timeline.Span {
	total := 0
	for _, i := range candidates {
		if total >= budget {
			break
		}
		dur := s.Items[i].DurationMinutes()
		if dur <= 0 {
			continue
		}

		gaps := timeline.FreeSpans(dayStart, dayEnd, placed)
		for _, gap := range gaps {
			if gap.Minutes() < dur {
				continue
			}
			it := &s.Items[i]
			it.StartTime = timeline.MinutesToTime(gap.Start)
			it.EndTime = timeline.MinutesToTime(gap.Start + dur)
			it.Status = StatusApproved
			it.ApprovedBy = append([]Participant(nil), approvals...)

			placed = append(placed, timeline.Span{Start: gap.Start, End: gap.Start + dur})
			total += dur
			break
		}
	}
	return placed
}

func fixedSpans(items []Item) []timeline.Span {
	var spans []timeline.Span
	for _, it := range items {
		if it.Status != StatusFixed {
			continue
		}
		start := startMinutes(it)
		spans = append(spans, timeline.Span{Start: start, End: start + it.DurationMinutes()})
	}
	return spans
}

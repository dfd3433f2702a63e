package timeline

import (
	"sort"
	"testing"
)

func TestFreeSpans_EmptyDayIsOneGap(t *testing.T) {
	free := FreeSpans(480, 1200, nil)
	if len(free) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(free))
	}
	if free[0] != (Span{Start: 480, End: 1200}) {
		t.Fatalf("unexpected gap %+v", free[0])
	}
}

func TestFreeSpans_UnsortedInputStillSweepsLeftToRight(t *testing.T) {
	placed := []Span{
		{Start: 900, End: 960},
		{Start: 480, End: 540},
	}
	free := FreeSpans(480, 1200, placed)
	want := []Span{
		{Start: 540, End: 900},
		{Start: 960, End: 1200},
	}
	if len(free) != len(want) {
		t.Fatalf("expected %d gaps, got %d: %+v", len(want), len(free), free)
	}
	for i := range want {
		if free[i] != want[i] {
			t.Fatalf("gap %d = %+v, want %+v", i, free[i], want[i])
		}
	}
}

func TestFreeSpans_FullyCoveredDayHasNoGaps(t *testing.T) {
	free := FreeSpans(480, 720, []Span{{Start: 480, End: 720}})
	if len(free) != 0 {
		t.Fatalf("expected no gaps, got %+v", free)
	}
}

func TestFreeSpans_GapsAndPlacementsExactlyTileTheWindow(t *testing.T) {
	dayStart, dayEnd := 480, 1320
	placed := []Span{
		{Start: 600, End: 660},
		{Start: 480, End: 500},
		{Start: 1000, End: 1320},
	}
	free := FreeSpans(dayStart, dayEnd, placed)

	// Gaps must be disjoint, ascending, and together with the placed spans
	// cover the whole window with no overlap.
	for i := 1; i < len(free); i++ {
		if free[i].Start < free[i-1].End {
			t.Fatalf("gaps overlap or out of order: %+v", free)
		}
	}

	all := append(append([]Span{}, placed...), free...)
	sort.Slice(all, func(i, j int) bool { return all[i].Start < all[j].Start })

	cursor := dayStart
	for _, s := range all {
		if s.Start != cursor {
			t.Fatalf("hole or overlap at %d: %+v", cursor, all)
		}
		cursor = s.End
	}
	if cursor != dayEnd {
		t.Fatalf("window not fully covered: ended at %d, want %d", cursor, dayEnd)
	}
}

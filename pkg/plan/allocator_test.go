package plan

import "testing"

func backlogTimed(id int64, name string, start, end string, energy Energy, solo bool) Item {
	return Item{
		ID:        id,
		Name:      name,
		StartTime: start,
		EndTime:   end,
		Status:    StatusBacklog,
		Energy:    energy,
		Solo:      solo,
		CreatedAt: id,
	}
}

func TestAllocate_BusyModePlacesHighEnergyFirst(t *testing.T) {
	// Day 08:00-20:00 (720 min), Busy: shared budget 576 min. One fixed
	// item at 12:00-13:00. X (High) must land before Y (Low) in the first
	// gap, at 08:00-09:00.
	s := State{
		DayStart:    "08:00",
		DayEnd:      "20:00",
		EnergyMode:  ModeBusy,
		CurrentUser: testPair.A,
		Items: []Item{
			{ID: 1, Name: "lunch", StartTime: "12:00", EndTime: "13:00", Status: StatusFixed, CreatedAt: 1},
			backlogTimed(2, "Y", "10:00", "11:00", EnergyLow, false),
			backlogTimed(3, "X", "14:00", "15:00", EnergyHigh, false),
		},
	}

	out, events := Allocate(s, testPair)

	if len(events) != 1 || events[0].Kind != EventSyncComplete {
		t.Fatalf("expected exactly one completion event, got %+v", events)
	}

	x, _ := out.Lookup(3)
	if x.Status != StatusApproved {
		t.Fatalf("X not placed: %+v", x)
	}
	if x.StartTime != "08:00" || x.EndTime != "09:00" {
		t.Fatalf("X must land at 08:00-09:00, got %s-%s", x.StartTime, x.EndTime)
	}
	if len(x.ApprovedBy) != 2 {
		t.Fatalf("auto-sync must approve for both participants: %v", x.ApprovedBy)
	}

	y, _ := out.Lookup(2)
	if y.Status != StatusApproved || y.StartTime != "09:00" {
		t.Fatalf("Y must follow X at 09:00, got %s %s", y.Status, y.StartTime)
	}
}

func TestAllocate_LightModeSkipsHighEnergySharedEntirely(t *testing.T) {
	s := State{
		DayStart:    "08:00",
		DayEnd:      "20:00",
		EnergyMode:  ModeLight,
		CurrentUser: testPair.A,
		Items: []Item{
			backlogTimed(1, "hike", "08:00", "10:00", EnergyHigh, false),
			backlogTimed(2, "coffee", "10:00", "11:00", EnergyLow, false),
		},
	}

	out, _ := Allocate(s, testPair)

	hike, _ := out.Lookup(1)
	if hike.Status != StatusBacklog {
		t.Fatalf("high-energy shared item must never be placed on a light day: %s", hike.Status)
	}
	coffee, _ := out.Lookup(2)
	if coffee.Status != StatusApproved {
		t.Fatalf("low-energy item must be placed: %s", coffee.Status)
	}
}

func TestAllocate_LightModePlacesSoloWithSingleApproval(t *testing.T) {
	s := State{
		DayStart:    "08:00",
		DayEnd:      "20:00",
		EnergyMode:  ModeLight,
		CurrentUser: testPair.B,
		Items: []Item{
			backlogTimed(1, "reading", "08:00", "09:00", EnergyLow, true),
		},
	}

	out, _ := Allocate(s, testPair)

	reading, _ := out.Lookup(1)
	if reading.Status != StatusApproved {
		t.Fatalf("solo item must be placed in light mode: %s", reading.Status)
	}
	if len(reading.ApprovedBy) != 1 || reading.ApprovedBy[0] != testPair.B {
		t.Fatalf("solo items only need the acting participant: %v", reading.ApprovedBy)
	}
}

func TestAllocate_BusyModeBudgetsNoSoloTime(t *testing.T) {
	s := State{
		DayStart:    "08:00",
		DayEnd:      "20:00",
		EnergyMode:  ModeBusy,
		CurrentUser: testPair.A,
		Items: []Item{
			backlogTimed(1, "reading", "08:00", "09:00", EnergyLow, true),
		},
	}

	out, _ := Allocate(s, testPair)

	reading, _ := out.Lookup(1)
	if reading.Status != StatusBacklog {
		t.Fatalf("solo time is only budgeted in light mode: %s", reading.Status)
	}
}

func TestAllocate_DemotesPreviouslyApprovedBeforeReallocating(t *testing.T) {
	s := State{
		DayStart:    "08:00",
		DayEnd:      "09:00", // tiny window: budget 48 min
		EnergyMode:  ModeBusy,
		CurrentUser: testPair.A,
		Items: []Item{
			{
				ID: 1, Name: "old", StartTime: "08:00", EndTime: "09:30",
				Status: StatusApproved, Energy: EnergyLow,
				ApprovedBy: []Participant{testPair.A, testPair.B}, CreatedAt: 1,
			},
		},
	}

	out, _ := Allocate(s, testPair)

	// 90 min does not fit the 60 min window, so after the full reset the
	// item ends up demoted with its approvals cleared.
	old, _ := out.Lookup(1)
	if old.Status != StatusBacklog || len(old.ApprovedBy) != 0 {
		t.Fatalf("approved items must be demoted and cleared first: %+v", old)
	}
}

func TestAllocate_StopsAtSharedBudget(t *testing.T) {
	// Light mode on a 10h day: shared budget 240 min. Three 2h items: the
	// first two reach the budget, the third stays in the backlog.
	s := State{
		DayStart:    "08:00",
		DayEnd:      "18:00",
		EnergyMode:  ModeLight,
		CurrentUser: testPair.A,
		Items: []Item{
			backlogTimed(1, "a", "08:00", "10:00", EnergyLow, false),
			backlogTimed(2, "b", "08:00", "10:00", EnergyLow, false),
			backlogTimed(3, "c", "08:00", "10:00", EnergyLow, false),
		},
	}

	out, _ := Allocate(s, testPair)

	placed := 0
	for _, it := range out.Items {
		if it.Status == StatusApproved {
			placed++
		}
	}
	if placed != 2 {
		t.Fatalf("expected the budget to cut off after 2 items, got %d", placed)
	}
	c, _ := out.Lookup(3)
	if c.Status != StatusBacklog {
		t.Fatalf("item beyond the budget must stay in the backlog: %s", c.Status)
	}
}

func TestAllocate_RunningTwiceYieldsSameTotals(t *testing.T) {
	s := State{
		DayStart:    "08:00",
		DayEnd:      "20:00",
		EnergyMode:  ModeBusy,
		CurrentUser: testPair.A,
		Items: []Item{
			{ID: 1, Name: "lunch", StartTime: "12:00", EndTime: "13:00", Status: StatusFixed, CreatedAt: 1},
			backlogTimed(2, "a", "10:00", "11:00", EnergyHigh, false),
			backlogTimed(3, "b", "15:00", "16:30", EnergyLow, false),
		},
	}

	once, _ := Allocate(s, testPair)
	twice, _ := Allocate(once, testPair)

	if got, want := approvedMinutes(twice), approvedMinutes(once); got != want {
		t.Fatalf("re-running the allocator changed the placed total: %d != %d", got, want)
	}
	for _, it := range twice.Items {
		if it.Status == StatusFixed {
			orig, _ := s.Lookup(it.ID)
			if it.StartTime != orig.StartTime || it.EndTime != orig.EndTime {
				t.Fatalf("fixed item moved by the allocator: %+v", it)
			}
		}
	}
}

func TestAllocate_CompletionEventFiresEvenWhenNothingFits(t *testing.T) {
	s := State{
		DayStart:    "08:00",
		DayEnd:      "09:00",
		EnergyMode:  ModeBusy,
		CurrentUser: testPair.A,
		Items: []Item{
			backlogTimed(1, "marathon", "08:00", "14:00", EnergyHigh, false),
		},
	}

	out, events := Allocate(s, testPair)
	if len(events) != 1 || events[0].Kind != EventSyncComplete {
		t.Fatalf("completion must fire regardless of placements: %+v", events)
	}
	m, _ := out.Lookup(1)
	if m.Status != StatusBacklog {
		t.Fatalf("unplaceable candidate stays in the backlog: %s", m.Status)
	}
}

func approvedMinutes(s State) int {
	total := 0
	for _, it := range s.Items {
		if it.Status == StatusApproved {
			total += it.DurationMinutes()
		}
	}
	return total
}

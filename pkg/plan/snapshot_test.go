package plan

import "testing"

func TestSnapshot_RoundTripsTheWholePlan(t *testing.T) {
	s := State{
		DayStart:    "08:00",
		DayEnd:      "20:00",
		EnergyMode:  ModeLight,
		CurrentUser: "ben",
		Items: []Item{
			{
				ID: 1, Name: "museum", Location: "downtown",
				StartTime: "10:00", EndTime: "12:00",
				Status: StatusApproved, Energy: EnergyHigh,
				ApprovedBy: []Participant{"ana", "ben"}, CreatedAt: 1,
			},
			{
				ID: 2, Name: "reading", StartTime: "13:00", EndTime: "14:00",
				Status: StatusBacklog, Energy: EnergyLow, Solo: true, CreatedAt: 2,
			},
		},
	}

	data, err := MarshalSnapshot(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, ok := UnmarshalSnapshot(data, State{DayStart: "09:00", DayEnd: "17:00"})
	if !ok {
		t.Fatalf("round trip rejected its own output")
	}
	if got.DayStart != "08:00" || got.DayEnd != "20:00" || got.EnergyMode != ModeLight || got.CurrentUser != "ben" {
		t.Fatalf("day config lost in round trip: %+v", got)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	if got.Items[0].Name != "museum" || len(got.Items[0].ApprovedBy) != 2 {
		t.Fatalf("item fields lost: %+v", got.Items[0])
	}
	if !got.Items[1].Solo || got.Items[1].Energy != EnergyLow {
		t.Fatalf("item flags lost: %+v", got.Items[1])
	}
}

func TestUnmarshalSnapshot_IncompatibleShapeFallsBackToDefaults(t *testing.T) {
	defaults := State{DayStart: "08:00", DayEnd: "22:00", EnergyMode: ModeBusy, CurrentUser: "ana"}

	for _, data := range []string{
		"not json at all",
		`{"somethingElse": true}`,
		`[1, 2, 3]`,
	} {
		got, ok := UnmarshalSnapshot([]byte(data), defaults)
		if ok {
			t.Fatalf("input %q must be rejected", data)
		}
		if got.DayStart != defaults.DayStart || len(got.Items) != 0 {
			t.Fatalf("fallback must be the untouched defaults, got %+v", got)
		}
	}
}

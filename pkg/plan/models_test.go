package plan

import (
	"errors"
	"testing"

	"pairplan/pkg/timeline"
)

func TestCreate_AssignsStableIncreasingIdsAndStamps(t *testing.T) {
	var s State

	s, first, err := s.Create(Candidate{Name: "a", StartTime: "09:00", EndTime: "10:00"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	s, second, err := s.Create(Candidate{Name: "b", StartTime: "10:00", EndTime: "11:00"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if second.ID <= first.ID || second.CreatedAt <= first.CreatedAt {
		t.Fatalf("ids and creation stamps must increase: %+v then %+v", first, second)
	}
	if first.Status != StatusBacklog || first.Energy != EnergyLow {
		t.Fatalf("defaults wrong: %+v", first)
	}
}

func TestCreate_PriorityEntersAsFixed(t *testing.T) {
	var s State
	s, item, err := s.Create(Candidate{Name: "dentist", StartTime: "14:00", EndTime: "15:00", Priority: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Status != StatusFixed {
		t.Fatalf("priority candidate must enter as fixed, got %s", item.Status)
	}
	_ = s
}

func TestCreate_RejectsBadTimesAndLeavesStateUntouched(t *testing.T) {
	s := State{Items: []Item{backlogItem(1, "existing")}}

	out, _, err := s.Create(Candidate{Name: "x", StartTime: "10:00", EndTime: "09:00"})
	if !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
	if len(out.Items) != 1 {
		t.Fatalf("state must be unchanged on invalid input: %+v", out.Items)
	}

	out, _, err = s.Create(Candidate{Name: "x", StartTime: "morning", EndTime: "10:00"})
	if !errors.Is(err, timeline.ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}
	if len(out.Items) != 1 {
		t.Fatalf("state must be unchanged on invalid input: %+v", out.Items)
	}

	// Zero-length intervals are invalid too.
	if _, _, err := s.Create(Candidate{Name: "x", StartTime: "10:00", EndTime: "10:00"}); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("zero-length interval must be rejected, got %v", err)
	}
}

func TestRemove_KeepsDiscardedItemsAndIgnoresUnknownIds(t *testing.T) {
	discarded := backlogItem(2, "rejected")
	discarded.Status = StatusDiscarded
	s := State{Items: []Item{backlogItem(1, "keepable"), discarded}}

	out := s.Remove(1)
	if _, ok := out.Lookup(1); ok {
		t.Fatalf("non-discarded item must be removable")
	}

	out = out.Remove(2)
	if _, ok := out.Lookup(2); !ok {
		t.Fatalf("discarded items are retained for audit")
	}

	if got := out.Remove(99); len(got.Items) != len(out.Items) {
		t.Fatalf("unknown id must be a no-op")
	}
}

func TestEdit_ValidatesTimesAndSkipsDiscarded(t *testing.T) {
	discarded := backlogItem(2, "rejected")
	discarded.Status = StatusDiscarded
	s := State{Items: []Item{backlogItem(1, "walk"), discarded}}

	out, err := s.Edit(1, Candidate{Name: "long walk", StartTime: "09:00", EndTime: "11:00"})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	it, _ := out.Lookup(1)
	if it.Name != "long walk" || it.EndTime != "11:00" {
		t.Fatalf("edit did not apply: %+v", it)
	}

	if _, err := s.Edit(1, Candidate{Name: "x", StartTime: "11:00", EndTime: "09:00"}); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}

	out, err = s.Edit(2, Candidate{Name: "resurrected", StartTime: "09:00", EndTime: "10:00"})
	if err != nil {
		t.Fatalf("edit discarded: %v", err)
	}
	it, _ = out.Lookup(2)
	if it.Name != "rejected" {
		t.Fatalf("discarded items must not be editable: %+v", it)
	}
}

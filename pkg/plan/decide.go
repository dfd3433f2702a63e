package plan

import "sort"

// Direction is a discrete swipe decision delivered by the input layer.
type Direction string

const (
	DirectionAccept Direction = "accept"
	DirectionReject Direction = "reject"
)

// EventKind tags the outward signals a core operation can emit. They carry
// no behavior here; the presentation layer decides how to celebrate.
type EventKind string

const (
	// EventMatch fires exactly once per item, at the moment the second
	// distinct participant accepts it.
	EventMatch EventKind = "match"
	// EventSyncComplete fires once per allocator run, whether or not
	// anything was placed.
	EventSyncComplete EventKind = "sync_complete"
)

// Event is an outward notification emitted alongside a state change.
type Event struct {
	Kind   EventKind
	ItemID int64
}

// Decide applies one participant's swipe to an item and returns the new
// state plus any emitted events.
//
// Reject discards the item unconditionally, regardless of approvals, and
// discarding is terminal. Accept adds the participant to the approval set
// (idempotently); the item is approved once both participants are present,
// and the match event fires on the accept that completes the pair.
//
// Unknown ids, discarded items and fixed items leave the state unchanged:
// fixed items are never subject to approval.
func Decide(s State, pair Pair, itemID int64, p Participant, dir Direction) (State, []Event) {
	if !pair.Contains(p) {
		return s, nil
	}
	i := s.find(itemID)
	if i < 0 {
		return s, nil
	}
	switch s.Items[i].Status {
	case StatusDiscarded, StatusFixed:
		return s, nil
	}

	out := s.clone()
	it := &out.Items[i]

	if dir == DirectionReject {
		it.Status = StatusDiscarded
		return out, nil
	}

	hadOtherApproval := false
	for _, a := range it.ApprovedBy {
		if a != p {
			hadOtherApproval = true
		}
	}
	wasApproved := it.Status == StatusApproved

	if !it.ApprovedByParticipant(p) {
		it.ApprovedBy = append(it.ApprovedBy, p)
	}

	if it.ApprovedByParticipant(pair.A) && it.ApprovedByParticipant(pair.B) {
		it.Status = StatusApproved
	} else {
		it.Status = StatusBacklog
	}

	var events []Event
	if hadOtherApproval && !wasApproved && it.Status == StatusApproved {
		events = append(events, Event{Kind: EventMatch, ItemID: it.ID})
	}
	return out, events
}

// DecisionQueue lists the items participant p still has to swipe on: the
// backlog items p has not accepted yet, in creation order. An item p has
// already accepted never comes back around, even while it waits on the
// other participant.
func DecisionQueue(s State, p Participant) []Item {
	var queue []Item
	for _, it := range s.Items {
		if it.Status == StatusBacklog && !it.ApprovedByParticipant(p) {
			queue = append(queue, it)
		}
	}
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].CreatedAt < queue[j].CreatedAt
	})
	return queue
}

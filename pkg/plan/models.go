package plan

import (
	"errors"
	"fmt"

	"pairplan/pkg/timeline"
)

// ErrInvalidInterval is returned when an item's end time does not come
// strictly after its start time.
var ErrInvalidInterval = errors.New("end time must be after start time")

// Participant identifies one of the two people sharing a plan. The two
// identifiers in play come from configuration, never from this package.
type Participant string

// Pair is the fixed two-participant set a plan belongs to.
type Pair struct {
	A Participant
	B Participant
}

// Other returns the participant opposite to p. A participant outside the
// pair gets A back, which keeps callers total over arbitrary input.
func (pr Pair) Other(p Participant) Participant {
	if p == pr.A {
		return pr.B
	}
	return pr.A
}

// Contains reports whether p is one of the pair.
func (pr Pair) Contains(p Participant) bool {
	return p == pr.A || p == pr.B
}

// Status is the lifecycle state of an item.
type Status string

const (
	StatusBacklog   Status = "backlog"
	StatusApproved  Status = "approved"
	StatusDiscarded Status = "discarded"
	StatusFixed     Status = "fixed"
)

// Energy classifies how intense an activity is.
type Energy string

const (
	EnergyHigh Energy = "High"
	EnergyLow  Energy = "Low"
)

// Mode is the day-level policy controlling how much shared vs. solo time
// the frictionless-sync allocator targets.
type Mode string

const (
	ModeBusy  Mode = "Busy"
	ModeLight Mode = "Light"
)

// Item is a single sync event: a timed activity proposed by one of the
// participants.
type Item struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Location   string        `json:"location,omitempty"`
	StartTime  string        `json:"startTime"`
	EndTime    string        `json:"endTime"`
	Status     Status        `json:"status"`
	Energy     Energy        `json:"energyLevel,omitempty"`
	Solo       bool          `json:"isSolo,omitempty"`
	ApprovedBy []Participant `json:"approvedBy,omitempty"`
	CreatedAt  int64         `json:"createdAt"`
}

// ApprovedByParticipant reports whether p has already accepted the item.
func (it Item) ApprovedByParticipant(p Participant) bool {
	for _, a := range it.ApprovedBy {
		if a == p {
			return true
		}
	}
	return false
}

// DurationMinutes returns the item's length in minutes, or 0 when the
// stored clock strings are unusable. Items are validated at creation, so
// 0 only shows up for state produced outside this package.
func (it Item) DurationMinutes() int {
	d, err := timeline.Duration(it.StartTime, it.EndTime)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// State is the whole shared plan: the item collection plus the day
// configuration. Operations never mutate a State in place; they return a
// fresh one and the caller sequences updates.
type State struct {
	Items       []Item
	DayStart    string
	DayEnd      string
	EnergyMode  Mode
	CurrentUser Participant
}

// clone copies the state with its own items slice so that operations can
// edit freely without aliasing the caller's value.
func (s State) clone() State {
	out := s
	out.Items = make([]Item, len(s.Items))
	copy(out.Items, s.Items)
	return out
}

// find returns the index of the item with the given id, or -1.
func (s State) find(id int64) int {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Lookup returns the item with the given id, if present.
func (s State) Lookup(id int64) (Item, bool) {
	if i := s.find(id); i >= 0 {
		return s.Items[i], true
	}
	return Item{}, false
}

// Candidate is a validated-by-the-caller creation request. Create still
// re-checks the times so that a malformed candidate leaves the state
// untouched.
type Candidate struct {
	Name      string
	Location  string
	StartTime string
	EndTime   string
	Energy    Energy
	Solo      bool
	Priority  bool
}

// ValidateTimes checks the candidate's clock strings and interval.
func (c Candidate) ValidateTimes() error {
	d, err := timeline.Duration(c.StartTime, c.EndTime)
	if err != nil {
		return err
	}
	if d <= 0 {
		return fmt.Errorf("%w: %s-%s", ErrInvalidInterval, c.StartTime, c.EndTime)
	}
	return nil
}

// Create adds a new item to the plan. Priority candidates enter as fixed
// items with an immovable declared time; everything else starts in the
// backlog. IDs and creation stamps are assigned from strictly increasing
// sequences so creation order stays a stable sort key.
func (s State) Create(c Candidate) (State, Item, error) {
	if err := c.ValidateTimes(); err != nil {
		return s, Item{}, err
	}

	out := s.clone()

	energy := c.Energy
	if energy == "" {
		energy = EnergyLow
	}
	status := StatusBacklog
	if c.Priority {
		status = StatusFixed
	}

	item := Item{
		ID:        out.nextID(),
		Name:      c.Name,
		Location:  c.Location,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		Status:    status,
		Energy:    energy,
		Solo:      c.Solo,
		CreatedAt: out.nextCreatedAt(),
	}
	out.Items = append(out.Items, item)
	return out, item, nil
}

// Edit replaces the editable fields of a non-discarded item. Unknown ids
// and discarded items leave the state unchanged.
func (s State) Edit(id int64, c Candidate) (State, error) {
	i := s.find(id)
	if i < 0 || s.Items[i].Status == StatusDiscarded {
		return s, nil
	}
	if err := c.ValidateTimes(); err != nil {
		return s, err
	}

	out := s.clone()
	it := &out.Items[i]
	it.Name = c.Name
	it.Location = c.Location
	it.StartTime = c.StartTime
	it.EndTime = c.EndTime
	it.Solo = c.Solo
	if c.Energy != "" {
		it.Energy = c.Energy
	}
	return out, nil
}

// Remove deletes a non-discarded item outright. Discarded items are kept
// for audit and cannot be removed; unknown ids are a no-op.
func (s State) Remove(id int64) State {
	i := s.find(id)
	if i < 0 || s.Items[i].Status == StatusDiscarded {
		return s
	}
	out := s.clone()
	out.Items = append(out.Items[:i], out.Items[i+1:]...)
	return out
}

func (s State) nextID() int64 {
	var max int64
	for _, it := range s.Items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

func (s State) nextCreatedAt() int64 {
	var max int64
	for _, it := range s.Items {
		if it.CreatedAt > max {
			max = it.CreatedAt
		}
	}
	return max + 1
}

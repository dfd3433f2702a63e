package plan

import "encoding/json"

// Snapshot is the single JSON record the plan is exchanged as: the item
// collection plus the day configuration. The storage and import/export
// layers pass it around verbatim.
type Snapshot struct {
	Events       []Item      `json:"events"`
	DayStartTime string      `json:"dayStartTime"`
	DayEndTime   string      `json:"dayEndTime,omitempty"`
	EnergyMode   Mode        `json:"energyMode,omitempty"`
	CurrentUser  Participant `json:"currentUser"`
}

// Snapshot converts the state into its wire record.
func (s State) Snapshot() Snapshot {
	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	return Snapshot{
		Events:       items,
		DayStartTime: s.DayStart,
		DayEndTime:   s.DayEnd,
		EnergyMode:   s.EnergyMode,
		CurrentUser:  s.CurrentUser,
	}
}

// MarshalSnapshot serializes the state as an indented JSON record.
func MarshalSnapshot(s State) ([]byte, error) {
	return json.MarshalIndent(s.Snapshot(), "", "  ")
}

// UnmarshalSnapshot decodes a persisted record back into a state. Anything
// that does not parse as the expected shape is treated as no saved state:
// the provided defaults come back untouched and no error surfaces.
func UnmarshalSnapshot(data []byte, defaults State) (State, bool) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return defaults, false
	}
	if snap.Events == nil || snap.DayStartTime == "" {
		return defaults, false
	}

	out := defaults
	out.Items = snap.Events
	out.DayStart = snap.DayStartTime
	if snap.DayEndTime != "" {
		out.DayEnd = snap.DayEndTime
	}
	if snap.EnergyMode != "" {
		out.EnergyMode = snap.EnergyMode
	}
	if snap.CurrentUser != "" {
		out.CurrentUser = snap.CurrentUser
	}
	return out, true
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"pairplan/pkg/plan"
	"pairplan/pkg/store"
	"pairplan/pkg/timeline"
	"pairplan/pkg/utils"
)

// refresh rebuilds the derived projections (decision queue, packed
// timeline, table rows) from the current state.
func (m *Model) refresh() {
	m.queue = plan.DecisionQueue(m.state, m.state.CurrentUser)
	m.placements = plan.PackState(m.state)

	switch m.viewMode {
	case BacklogViewMode:
		m.loadBacklogRows()
	default:
		m.loadScheduleRows()
	}
}

// persist writes the state through to the store; the core already
// sequenced the update, so a failed save only surfaces as an error line.
func (m *Model) persist() {
	if err := store.Save(m.db, m.cfg.StoreDriver, m.state); err != nil {
		m.err = err
		return
	}
	m.err = nil
}

// applyEvents turns core events into celebration flashes.
func (m *Model) applyEvents(events []plan.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case plan.EventMatch:
			name := ""
			if it, ok := m.state.Lookup(ev.ItemID); ok {
				name = it.Name
			}
			m.flash = fmt.Sprintf("It's a match! %q is on the plan.", name)
		case plan.EventSyncComplete:
			m.flash = "Frictionless sync complete."
		}
		utils.Log("Event: %s (item %d)", ev.Kind, ev.ItemID)
	}
}

// loadScheduleRows renders the packed timeline, gaps included, into the
// table.
func (m *Model) loadScheduleRows() {
	dayStart, err := timeline.TimeToMinutes(m.state.DayStart)
	if err != nil {
		dayStart = 0
	}
	dayEnd, err := timeline.TimeToMinutes(m.state.DayEnd)
	if err != nil {
		dayEnd = dayStart
	}

	var rows []table.Row
	var rowIDs []int64

	gapStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.GapColor))

	cursor := dayStart
	for _, p := range m.placements {
		if p.Start > cursor {
			rows = append(rows, table.Row{gapStyle.Render(fmt.Sprintf("        %s-%s  · free ·",
				timeline.MinutesToTime(cursor), timeline.MinutesToTime(p.Start)))})
			rowIDs = append(rowIDs, 0)
		}
		rows = append(rows, table.Row{m.renderPlacement(p)})
		rowIDs = append(rowIDs, p.Item.ID)
		if p.End > cursor {
			cursor = p.End
		}
	}
	if dayEnd > cursor {
		rows = append(rows, table.Row{gapStyle.Render(fmt.Sprintf("        %s-%s  · free ·",
			timeline.MinutesToTime(cursor), timeline.MinutesToTime(dayEnd)))})
		rowIDs = append(rowIDs, 0)
	}

	m.rowIDs = rowIDs
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// loadBacklogRows lists every non-discarded item grouped by status.
func (m *Model) loadBacklogRows() {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.AccentColor))

	var rows []table.Row
	var rowIDs []int64

	for _, group := range groupByStatus(m.state.Items) {
		rows = append(rows, table.Row{headerStyle.Render(fmt.Sprintf("== %s ==", group.Status))})
		rowIDs = append(rowIDs, 0)
		for _, it := range group.Items {
			rows = append(rows, table.Row{m.renderItemLine(it)})
			rowIDs = append(rowIDs, it.ID)
		}
	}

	m.rowIDs = rowIDs
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// selectedItem resolves the table cursor to an item, skipping header and
// gap rows.
func (m *Model) selectedItem() (plan.Item, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rowIDs) || m.rowIDs[idx] == 0 {
		return plan.Item{}, false
	}
	return m.state.Lookup(m.rowIDs[idx])
}

func (m *Model) renderPlacement(p plan.Placement) string {
	marker := " "
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor))
	if p.Item.Status == plan.StatusFixed {
		marker = "*"
		style = style.Foreground(lipgloss.Color(m.styles.FixedColor))
	}
	line := fmt.Sprintf("[%s] %s-%s  %s", marker,
		timeline.MinutesToTime(p.Start), timeline.MinutesToTime(p.End), p.Item.Name)
	if p.Item.Location != "" {
		line += " @ " + p.Item.Location
	}
	if p.Item.Solo {
		line += lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.SoloColor)).Render(" (solo)")
	}
	return style.Render(line)
}

func (m *Model) renderItemLine(it plan.Item) string {
	line := fmt.Sprintf("%s-%s  %s", it.StartTime, it.EndTime, it.Name)
	if it.Energy == plan.EnergyHigh {
		line += " ↑"
	}
	if it.Solo {
		line += " (solo)"
	}
	if len(it.ApprovedBy) == 1 {
		line += fmt.Sprintf("  [waiting on %s]", m.pair.Other(it.ApprovedBy[0]))
	}
	return line
}

// submitForm processes the form data based on the current mode
func (m *Model) submitForm() {
	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		m.err = fmt.Errorf("activity name is required")
		return
	}

	energy, solo, priority := parseOptions(m.optsInput.Value())

	candidate := plan.Candidate{
		Name:      name,
		Location:  strings.TrimSpace(m.locationInput.Value()),
		StartTime: strings.TrimSpace(m.startInput.Value()),
		EndTime:   strings.TrimSpace(m.endInput.Value()),
		Energy:    energy,
		Solo:      solo,
		Priority:  priority,
	}

	var err error
	switch m.mode {
	case AddMode:
		var state plan.State
		state, _, err = m.state.Create(candidate)
		if err == nil {
			m.state = state
		}
	case EditMode:
		var state plan.State
		state, err = m.state.Edit(m.editingID, candidate)
		if err == nil {
			m.state = state
		}
	}
	if err != nil {
		// Keep the form open so the times can be corrected.
		m.err = err
		return
	}

	m.persist()
	m.refresh()

	m.mode = NormalMode
	m.resetInputs()
	m.editingID = 0
}

// parseOptions reads the comma-separated tag field of the form.
func parseOptions(value string) (energy plan.Energy, solo, priority bool) {
	energy = plan.EnergyLow
	for _, tag := range strings.Split(value, ",") {
		switch strings.ToLower(strings.TrimSpace(tag)) {
		case "high":
			energy = plan.EnergyHigh
		case "solo":
			solo = true
		case "priority", "fixed":
			priority = true
		}
	}
	return energy, solo, priority
}

// optionTags is the inverse of parseOptions, used to prefill the edit form.
func optionTags(it plan.Item) string {
	var tags []string
	if it.Energy == plan.EnergyHigh {
		tags = append(tags, "high")
	}
	if it.Solo {
		tags = append(tags, "solo")
	}
	if it.Status == plan.StatusFixed {
		tags = append(tags, "priority")
	}
	return strings.Join(tags, ", ")
}

type statusGroup struct {
	Status plan.Status
	Items  []plan.Item
}

// groupByStatus buckets the non-discarded items in a stable display order.
func groupByStatus(items []plan.Item) []statusGroup {
	order := []plan.Status{plan.StatusBacklog, plan.StatusApproved, plan.StatusFixed}
	var groups []statusGroup
	for _, status := range order {
		var bucket []plan.Item
		for _, it := range items {
			if it.Status == status {
				bucket = append(bucket, it)
			}
		}
		if len(bucket) > 0 {
			groups = append(groups, statusGroup{Status: status, Items: bucket})
		}
	}
	return groups
}

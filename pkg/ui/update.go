package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pairplan/pkg/plan"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.ViewSchedule):
				m.viewMode = ScheduleViewMode
				m.flash = ""
				m.refresh()

			case key.Matches(msg, m.keyMap.ViewDecide):
				m.viewMode = DecideViewMode
				m.flash = ""
				m.refresh()

			case key.Matches(msg, m.keyMap.ViewBacklog):
				m.viewMode = BacklogViewMode
				m.flash = ""
				m.refresh()

			case key.Matches(msg, m.keyMap.AcceptItem):
				m.decideTop(plan.DirectionAccept)

			case key.Matches(msg, m.keyMap.RejectItem):
				m.decideTop(plan.DirectionReject)

			case key.Matches(msg, m.keyMap.RunSync):
				var events []plan.Event
				m.state, events = plan.Allocate(m.state, m.pair)
				m.persist()
				m.applyEvents(events)
				m.refresh()

			case key.Matches(msg, m.keyMap.SwitchUser):
				m.state.CurrentUser = m.pair.Other(m.state.CurrentUser)
				m.persist()
				m.flash = ""
				m.refresh()

			case key.Matches(msg, m.keyMap.ToggleEnergyMode):
				if m.state.EnergyMode == plan.ModeBusy {
					m.state.EnergyMode = plan.ModeLight
				} else {
					m.state.EnergyMode = plan.ModeBusy
				}
				m.persist()
				m.refresh()

			case key.Matches(msg, m.keyMap.AddItem):
				m.mode = AddMode
				m.resetInputs()

			case key.Matches(msg, m.keyMap.EditItem):
				if item, ok := m.selectedItem(); ok {
					m.mode = EditMode
					m.editingID = item.ID
					m.resetInputs()

					// Populate form with existing values
					m.nameInput.SetValue(item.Name)
					m.locationInput.SetValue(item.Location)
					m.startInput.SetValue(item.StartTime)
					m.endInput.SetValue(item.EndTime)
					m.optsInput.SetValue(optionTags(item))
				}

			case key.Matches(msg, m.keyMap.DeleteItem):
				if item, ok := m.selectedItem(); ok {
					m.mode = DeleteConfirmMode
					m.editingID = item.ID
				}
			}

		case AddMode, EditMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.resetInputs()
				m.editingID = 0
				m.err = nil

			case "tab", "shift+tab":
				m.focusNextInput()

			case "enter":
				if m.activeInput == 4 { // Submit on enter from the last field
					m.submitForm()
				} else {
					m.focusNextInput()
				}
			}

			// Handle input updates
			switch m.activeInput {
			case 0:
				m.nameInput, cmd = m.nameInput.Update(msg)
				cmds = append(cmds, cmd)
			case 1:
				m.locationInput, cmd = m.locationInput.Update(msg)
				cmds = append(cmds, cmd)
			case 2:
				m.startInput, cmd = m.startInput.Update(msg)
				cmds = append(cmds, cmd)
			case 3:
				m.endInput, cmd = m.endInput.Update(msg)
				cmds = append(cmds, cmd)
			case 4:
				m.optsInput, cmd = m.optsInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case DeleteConfirmMode:
			switch msg.String() {
			case "y", "Y":
				m.state = m.state.Remove(m.editingID)
				m.persist()
				m.refresh()
				m.mode = NormalMode
				m.editingID = 0

			case "n", "N", "esc":
				m.mode = NormalMode
				m.editingID = 0
			}

		case HelpViewMode:
			// Any key leaves the help screen.
			m.mode = NormalMode
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		if m.mode == NormalMode {
			m.table.SetHeight(msg.Height - 8)
		} else {
			m.table.SetHeight(msg.Height - 12)
		}
	}

	// The table only scrolls in the list views.
	if m.mode == NormalMode && m.viewMode != DecideViewMode {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// decideTop applies the current user's swipe to the front of the decision
// queue. Outside the decide view the swipe keys do nothing.
func (m *Model) decideTop(dir plan.Direction) {
	if m.viewMode != DecideViewMode || len(m.queue) == 0 {
		return
	}

	var events []plan.Event
	m.state, events = plan.Decide(m.state, m.pair, m.queue[0].ID, m.state.CurrentUser, dir)
	m.persist()
	m.flash = ""
	m.applyEvents(events)
	m.refresh()
}

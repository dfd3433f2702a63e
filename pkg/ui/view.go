package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pairplan/pkg/plan"
	"pairplan/pkg/timeline"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		sb.WriteString(m.renderTitleBar())
		sb.WriteString("\n\n")

		switch m.viewMode {
		case DecideViewMode:
			sb.WriteString(m.renderDecideView())
		default:
			sb.WriteString(m.table.View())
		}

		sb.WriteString("\n")
		sb.WriteString(m.renderStatusBar())

		if m.flash != "" {
			flashStyle := lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(m.styles.MatchColor))
			sb.WriteString("\n\n")
			sb.WriteString(flashStyle.Render(m.flash))
		}

	case AddMode:
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Add Activity"))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())
		sb.WriteString("\n\n")
		sb.WriteString(m.statusBarStyle().Render("Tab: next field • Enter: submit • Esc: cancel"))

	case EditMode:
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Edit Activity"))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())
		sb.WriteString("\n\n")
		sb.WriteString(m.statusBarStyle().Render("Tab: next field • Enter: submit • Esc: cancel"))

	case DeleteConfirmMode:
		sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.styles.ErrorColor)).Render("Delete Activity"))
		sb.WriteString("\n\n")

		if item, ok := m.state.Lookup(m.editingID); ok {
			sb.WriteString("Are you sure you want to delete this activity?\n\n")
			sb.WriteString(fmt.Sprintf("Name: %s\n", item.Name))
			sb.WriteString(fmt.Sprintf("Time: %s-%s\n", item.StartTime, item.EndTime))
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case HelpViewMode:
		sb.WriteString(m.renderHelp())
	}

	// Error message if any
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.ErrorColor))
		sb.WriteString(errStyle.Render(fmt.Sprintf("\n\nError: %v", m.err)))
	}

	return sb.String()
}

func (m Model) renderTitleBar() string {
	var label string
	switch m.viewMode {
	case DecideViewMode:
		label = fmt.Sprintf(" pairplan · deciding as %s ", m.state.CurrentUser)
	case BacklogViewMode:
		label = " pairplan · backlog "
	default:
		label = fmt.Sprintf(" pairplan · %s-%s ", m.state.DayStart, m.state.DayEnd)
	}

	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.AccentColor)).
		Padding(0, 1).
		Render(label)
}

// renderDecideView shows the front of the current user's decision queue as
// a single card.
func (m Model) renderDecideView() string {
	if len(m.queue) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.GapColor)).
			Render("Nothing left to decide. Waiting on " + string(m.pair.Other(m.state.CurrentUser)) + ".")
	}

	it := m.queue[0]

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.styles.AccentColor)).
		Padding(1, 3)

	var card strings.Builder
	card.WriteString(lipgloss.NewStyle().Bold(true).Render(it.Name))
	card.WriteString("\n\n")
	card.WriteString(fmt.Sprintf("%s-%s (%d min)\n", it.StartTime, it.EndTime, it.DurationMinutes()))
	if it.Location != "" {
		card.WriteString("@ " + it.Location + "\n")
	}
	card.WriteString(fmt.Sprintf("Energy: %s", it.Energy))
	if it.Solo {
		card.WriteString(" · solo")
	}
	if len(it.ApprovedBy) > 0 {
		card.WriteString(fmt.Sprintf("\nAlready accepted by %s", it.ApprovedBy[0]))
	}

	footer := fmt.Sprintf("\n\n← reject · accept →   (%d in queue)", len(m.queue))
	return cardStyle.Render(card.String()) + footer
}

func (m Model) renderStatusBar() string {
	mode := string(m.state.EnergyMode)
	if mode == "" {
		mode = string(plan.ModeBusy)
	}
	window := "?"
	if d, err := timeline.Duration(m.state.DayStart, m.state.DayEnd); err == nil {
		window = fmt.Sprintf("%d min", d)
	}

	parts := []string{
		fmt.Sprintf("user: %s", m.state.CurrentUser),
		fmt.Sprintf("mode: %s", mode),
		fmt.Sprintf("day: %s", window),
		fmt.Sprintf("to decide: %d", len(m.queue)),
	}
	return m.statusBarStyle().Render(strings.Join(parts, " | "))
}

func (m Model) statusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Background(lipgloss.Color("237")).
		Padding(0, 1)
}

// renderForm renders the input form for adding/editing activities
func (m Model) renderForm() string {
	var sb strings.Builder

	formStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.styles.BorderColor)).
		Padding(1, 2)

	sb.WriteString("Name:\n")
	sb.WriteString(m.nameInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Location:\n")
	sb.WriteString(m.locationInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Start (HH:MM):\n")
	sb.WriteString(m.startInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("End (HH:MM):\n")
	sb.WriteString(m.endInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Tags (high, solo, priority):\n")
	sb.WriteString(m.optsInput.View())

	return formStyle.Render(sb.String())
}

func (m Model) renderHelp() string {
	lines := []string{
		"pairplan keys",
		"",
		"  1 / 2 / 3      timeline, decide, backlog views",
		"  ← / →          reject / accept (decide view)",
		"  a / e / d      add, edit, delete activity",
		"  f              frictionless sync",
		"  u              switch participant",
		"  m              toggle busy/light mode",
		"  q              quit",
		"",
		"Press any key to go back.",
	}
	return strings.Join(lines, "\n")
}

package ui

import (
	"database/sql"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pairplan/pkg/config"
	"pairplan/pkg/keymaps"
	"pairplan/pkg/plan"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	EditMode
	DeleteConfirmMode
	HelpViewMode
)

// ViewMode selects which projection of the plan fills the screen.
type ViewMode int

const (
	ScheduleViewMode ViewMode = iota // The packed day timeline
	DecideViewMode                   // One card at a time, swipe left/right
	BacklogViewMode                  // Everything not yet on the timeline
)

// Model represents the application state
type Model struct {
	table         table.Model
	db            *sql.DB
	width, height int
	err           error

	// The shared plan aggregate. Every action goes through a core
	// operation that returns a fresh state, which then replaces this one
	// and gets saved.
	state plan.State
	pair  plan.Pair

	// Configuration
	cfg    config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	// View state
	viewMode ViewMode
	flash    string // one-line celebration / status message

	// Derived projections, rebuilt after every state change
	queue      []plan.Item
	placements []plan.Placement
	rowIDs     []int64 // item id per table row, 0 for headers and gaps

	// Form state
	mode          InputMode
	nameInput     textinput.Model
	locationInput textinput.Model
	startInput    textinput.Model
	endInput      textinput.Model
	optsInput     textinput.Model
	activeInput   int

	// Edit/delete state
	editingID int64
}

// NewModel creates a new UI model with the provided configuration
func NewModel(db *sql.DB, cfg config.Config, styles config.Styles, state plan.State) Model {
	columns := []table.Column{
		{Title: "", Width: 70},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	// Single-column list: hide the header entirely.
	s.Header = s.Header.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderBottom(false).
		Bold(false).
		Foreground(lipgloss.NoColor{})
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	nameInput := textinput.New()
	nameInput.Placeholder = "Activity name"
	nameInput.Focus()
	nameInput.Width = 40

	locationInput := textinput.New()
	locationInput.Placeholder = "Location (optional)"
	locationInput.Width = 40

	startInput := textinput.New()
	startInput.Placeholder = "Start (HH:MM)"
	startInput.Width = 40

	endInput := textinput.New()
	endInput.Placeholder = "End (HH:MM)"
	endInput.Width = 40

	optsInput := textinput.New()
	optsInput.Placeholder = "Tags: high, solo, priority (comma separated)"
	optsInput.Width = 40

	m := Model{
		table: t,
		db:    db,
		state: state,
		pair: plan.Pair{
			A: plan.Participant(cfg.ParticipantA),
			B: plan.Participant(cfg.ParticipantB),
		},
		cfg:           cfg,
		styles:        styles,
		keyMap:        keymaps.BuildKeyMap(cfg.KeyMap),
		mode:          NormalMode,
		viewMode:      ScheduleViewMode,
		nameInput:     nameInput,
		locationInput: locationInput,
		startInput:    startInput,
		endInput:      endInput,
		optsInput:     optsInput,
		activeInput:   0,
	}

	m.refresh()

	return m
}

// Init initializes the model (required by Bubble Tea Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// resetInputs clears all form inputs
func (m *Model) resetInputs() {
	m.nameInput.Reset()
	m.locationInput.Reset()
	m.startInput.Reset()
	m.endInput.Reset()
	m.optsInput.Reset()

	m.activeInput = 0
	m.nameInput.Focus()
	m.locationInput.Blur()
	m.startInput.Blur()
	m.endInput.Blur()
	m.optsInput.Blur()
}

// focusNextInput cycles through the form inputs
func (m *Model) focusNextInput() {
	m.activeInput = (m.activeInput + 1) % 5

	inputs := []*textinput.Model{
		&m.nameInput, &m.locationInput, &m.startInput, &m.endInput, &m.optsInput,
	}
	for i, in := range inputs {
		if i == m.activeInput {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

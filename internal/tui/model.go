package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/trex/internal/api"
	"github.com/mobil-koeln/trex/internal/explorer"
)

// Model is the root Bubble Tea model for the TUI.
type Model struct {
	client *api.Client
	nav    *explorer.Navigator
	keys   keyMap

	spinner spinner.Model
	width   int
	height  int

	// Last load failure, shown in the status bar until the next key press
	err error
}

// New creates a new TUI model showing an empty picker.
func New(client *api.Client) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleLoading

	return Model{
		client:  client,
		nav:     explorer.New(),
		keys:    defaultKeyMap(),
		spinner: sp,
	}
}

// Init requests the infrastructure index.
func (m Model) Init() tea.Cmd {
	return m.perform(m.nav.Start())
}

// busy reports whether a load is in flight.
func (m Model) busy() bool {
	_, ok := m.nav.Pending()
	return ok
}

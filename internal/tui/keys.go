package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/trex/internal/explorer"
)

// keyMap binds raw keys to explorer actions.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Confirm  key.Binding
	Reload   key.Binding // help only; same key as Confirm
	Back     key.Binding
	Stations key.Binding
	Segments key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Reload:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "reload")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Stations: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "betriebsstellen")),
		Segments: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "segmente")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// action maps a key press to an explorer action. Unbound keys map to
// ActionOther.
func (k keyMap) action(msg tea.KeyMsg) explorer.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return explorer.ActionQuit
	case key.Matches(msg, k.Up):
		return explorer.ActionUp
	case key.Matches(msg, k.Down):
		return explorer.ActionDown
	case key.Matches(msg, k.Confirm):
		return explorer.ActionConfirm
	case key.Matches(msg, k.Back):
		return explorer.ActionBack
	case key.Matches(msg, k.Stations):
		return explorer.ActionStations
	case key.Matches(msg, k.Segments):
		return explorer.ActionSegments
	}
	return explorer.ActionOther
}

// bindingsFor returns the bindings that do something in view v.
func (k keyMap) bindingsFor(v explorer.View) []key.Binding {
	switch v := v.(type) {
	case *explorer.MapView:
		return []key.Binding{k.Up, k.Down, k.Stations, k.Segments, k.Back, k.Quit}
	case *explorer.PickerView:
		if v.List().Len() == 0 {
			return []key.Binding{k.Up, k.Down, k.Reload, k.Quit}
		}
	}
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Quit}
}

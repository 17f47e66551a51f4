package tui

import (
	"errors"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/trex/internal/explorer"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case summariesResultMsg:
		return m.handleSummariesResult(msg)

	case infrastructureResultMsg:
		return m.handleInfrastructureResult(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleSummariesResult(msg summariesResultMsg) (tea.Model, tea.Cmd) {
	err := m.nav.SummariesLoaded(msg.summaries, msg.err)
	switch {
	case errors.Is(err, explorer.ErrUnexpectedResult):
		log.Printf("dropping stale infrastructure index")
	case err != nil:
		log.Printf("infrastructure index failed after %s: %v", msg.elapsed, err)
		m.err = err
	default:
		log.Printf("infrastructure index loaded in %s: %d entries", msg.elapsed, len(msg.summaries))
	}
	return m, nil
}

func (m Model) handleInfrastructureResult(msg infrastructureResultMsg) (tea.Model, tea.Cmd) {
	err := m.nav.InfrastructureLoaded(msg.id, msg.graph, msg.err)
	switch {
	case errors.Is(err, explorer.ErrUnexpectedResult):
		log.Printf("dropping stale infrastructure %d", msg.id)
	case err != nil:
		log.Printf("infrastructure %d failed after %s: %v", msg.id, msg.elapsed, err)
		m.err = err
	default:
		log.Printf("infrastructure %d loaded in %s: %d stations, %d segments",
			msg.id, msg.elapsed, len(msg.graph.Stations), len(msg.graph.Segments))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.keys.action(msg)
	if a == explorer.ActionQuit {
		return m, tea.Quit
	}
	if m.busy() {
		return m, nil
	}

	// Unbound keys leave the last error on screen
	if a != explorer.ActionOther {
		m.err = nil
	}
	return m, m.perform(m.nav.Handle(a))
}

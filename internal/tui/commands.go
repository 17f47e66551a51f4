package tui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/trex/internal/api"
	"github.com/mobil-koeln/trex/internal/explorer"
)

// apiTimeout bounds a whole load, body download and decoding included.
const apiTimeout = 60 * time.Second

// fetchInfrastructures returns a tea.Cmd that loads the infrastructure index.
func fetchInfrastructures(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		start := time.Now()
		summaries, err := client.ListInfrastructures(ctx)
		return summariesResultMsg{
			summaries: summaries,
			err:       err,
			elapsed:   time.Since(start),
		}
	}
}

// fetchInfrastructure returns a tea.Cmd that loads and resolves one
// infrastructure.
func fetchInfrastructure(client *api.Client, id uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		start := time.Now()
		graph, err := client.GetInfrastructure(ctx, id)
		return infrastructureResultMsg{
			id:      id,
			graph:   graph,
			err:     err,
			elapsed: time.Since(start),
		}
	}
}

// perform turns a navigator request into the command that carries it out.
func (m Model) perform(req explorer.Request) tea.Cmd {
	switch req.Kind {
	case explorer.RequestLoadInfrastructure:
		log.Printf("loading infrastructure %d", req.ID)
		return tea.Batch(fetchInfrastructure(m.client, req.ID), m.spinner.Tick)
	case explorer.RequestReloadPicker:
		log.Printf("loading infrastructure index")
		return tea.Batch(fetchInfrastructures(m.client), m.spinner.Tick)
	}
	return nil
}

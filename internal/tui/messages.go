package tui

import (
	"time"

	"github.com/mobil-koeln/trex/internal/models"
)

// summariesResultMsg carries the infrastructure index back to the model.
type summariesResultMsg struct {
	summaries []models.InfrastructureSummary
	err       error
	elapsed   time.Duration
}

// infrastructureResultMsg carries one resolved infrastructure.
// id is used to match the result to the pending request.
type infrastructureResultMsg struct {
	id      uint64
	graph   *models.StationGraph
	err     error
	elapsed time.Duration
}

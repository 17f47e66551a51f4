// Package explorer holds the navigation state of the infrastructure
// explorer: a picker of infrastructures and a map view of one of them.
package explorer

import (
	"errors"

	"github.com/mobil-koeln/trex/internal/models"
)

// ErrUnexpectedResult is returned when a load result arrives for a request
// that is not pending.
var ErrUnexpectedResult = errors.New("no matching request pending")

// Navigator is the top-level state machine. It is not safe for concurrent
// use; feed it one action or result at a time.
type Navigator struct {
	view      View
	summaries []models.InfrastructureSummary
	pending   Request
}

// New returns a navigator showing an empty picker.
func New() *Navigator {
	return &Navigator{view: newPickerView(nil)}
}

// Start requests the initial infrastructure index.
func (n *Navigator) Start() Request {
	n.pending = Request{Kind: RequestReloadPicker}
	return n.pending
}

// View returns the live view.
func (n *Navigator) View() View {
	return n.view
}

// Pending returns the request currently in flight.
func (n *Navigator) Pending() (Request, bool) {
	return n.pending, !n.pending.IsNone()
}

// Handle applies one action to the live view and returns the side effect
// the caller has to perform. Input is ignored while a request is pending.
// Confirm on an empty picker reloads the index. ActionQuit is left to the
// caller.
func (n *Navigator) Handle(a Action) Request {
	if !n.pending.IsNone() {
		return Request{}
	}

	switch v := n.view.(type) {
	case *PickerView:
		switch a {
		case ActionUp:
			v.list.MoveUp()
		case ActionDown:
			v.list.MoveDown()
		case ActionConfirm:
			if s, ok := v.list.SelectedItem(); ok {
				n.pending = Request{Kind: RequestLoadInfrastructure, ID: s.ID}
				return n.pending
			}
			// Nothing to open, so fetch the index again.
			n.pending = Request{Kind: RequestReloadPicker}
			return n.pending
		}

	case *MapView:
		if a == ActionBack {
			picker := newPickerView(n.summaries)
			picker.selectID(v.graph.ID)
			n.view = picker
			n.pending = Request{Kind: RequestReloadPicker}
			return n.pending
		}
		v.handle(a)
	}

	return Request{}
}

// InfrastructureLoaded completes a RequestLoadInfrastructure. On success the
// picker is replaced by a map view of graph; on failure the picker stays and
// err is returned.
func (n *Navigator) InfrastructureLoaded(id uint64, graph *models.StationGraph, err error) error {
	if n.pending.Kind != RequestLoadInfrastructure || n.pending.ID != id {
		return ErrUnexpectedResult
	}
	n.pending = Request{}

	if err != nil {
		return err
	}
	n.view = NewMapView(graph)
	return nil
}

// SummariesLoaded completes a RequestReloadPicker. On success the picker
// list is rebuilt, keeping the selected infrastructure if it is still
// listed. On failure the previous list stays and err is returned.
func (n *Navigator) SummariesLoaded(summaries []models.InfrastructureSummary, err error) error {
	if n.pending.Kind != RequestReloadPicker {
		return ErrUnexpectedResult
	}
	n.pending = Request{}

	if err != nil {
		return err
	}

	sorted := make([]models.InfrastructureSummary, len(summaries))
	copy(sorted, summaries)
	models.SortSummaries(sorted)
	n.summaries = sorted

	if p, ok := n.view.(*PickerView); ok {
		picker := newPickerView(sorted)
		if s, ok := p.list.SelectedItem(); ok {
			picker.selectID(s.ID)
		}
		n.view = picker
	}
	return nil
}

package explorer

import (
	"github.com/mobil-koeln/trex/internal/models"
	"github.com/mobil-koeln/trex/internal/selection"
)

// View is the live screen. It is either a *PickerView or a *MapView.
type View interface {
	isView()
}

// PickerView lists the available infrastructures.
type PickerView struct {
	list *selection.List[models.InfrastructureSummary]
}

func newPickerView(summaries []models.InfrastructureSummary) *PickerView {
	return &PickerView{list: selection.New(summaries)}
}

func (*PickerView) isView() {}

// List returns the infrastructure list.
func (p *PickerView) List() *selection.List[models.InfrastructureSummary] {
	return p.list
}

func (p *PickerView) selectID(id uint64) {
	for i, s := range p.list.Items() {
		if s.ID == id {
			p.list.Select(i)
			return
		}
	}
}

// Pane names the list of a MapView that receives navigation keys.
type Pane int

const (
	PaneStations Pane = iota
	PaneSegments
)

func (p Pane) String() string {
	if p == PaneSegments {
		return "segments"
	}
	return "stations"
}

// MapView shows one StationGraph as two lists and a map.
type MapView struct {
	graph     *models.StationGraph
	coords    []models.Point
	extent    models.Extent
	hasExtent bool

	stations *selection.List[models.Station]
	segments *selection.List[models.Segment]
	active   Pane
}

// NewMapView seeds a map view from a validated graph. The coordinate list
// and extent are computed once here.
func NewMapView(graph *models.StationGraph) *MapView {
	v := &MapView{
		graph:    graph,
		coords:   graph.Coordinates(),
		stations: selection.New(graph.Stations),
		segments: selection.New(graph.Segments),
		active:   PaneStations,
	}
	if len(v.coords) > 0 {
		v.extent = models.CalcExtent(v.coords)
		v.hasExtent = true
	}
	return v
}

func (*MapView) isView() {}

// Graph returns the displayed graph.
func (v *MapView) Graph() *models.StationGraph {
	return v.graph
}

// Coordinates returns all station coordinates in station order.
func (v *MapView) Coordinates() []models.Point {
	return v.coords
}

// Extent returns the bounding box of all stations. It is unset for a graph
// without stations.
func (v *MapView) Extent() (models.Extent, bool) {
	return v.extent, v.hasExtent
}

// Stations returns the station list.
func (v *MapView) Stations() *selection.List[models.Station] {
	return v.stations
}

// Segments returns the segment list.
func (v *MapView) Segments() *selection.List[models.Segment] {
	return v.segments
}

// Active returns the pane that receives Up/Down.
func (v *MapView) Active() Pane {
	return v.active
}

// SelectedStation returns the highlighted station.
func (v *MapView) SelectedStation() (models.Station, bool) {
	return v.stations.SelectedItem()
}

// SelectedSegment returns the highlighted segment.
func (v *MapView) SelectedSegment() (models.Segment, bool) {
	return v.segments.SelectedItem()
}

func (v *MapView) handle(a Action) {
	switch a {
	case ActionStations:
		v.active = PaneStations
	case ActionSegments:
		v.active = PaneSegments
	case ActionUp:
		if v.active == PaneSegments {
			v.segments.MoveUp()
		} else {
			v.stations.MoveUp()
		}
	case ActionDown:
		if v.active == PaneSegments {
			v.segments.MoveDown()
		} else {
			v.stations.MoveDown()
		}
	}
}

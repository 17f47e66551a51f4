package models

import "fmt"

// Point is a planar coordinate as delivered by the API
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Station is an operating point identified by its DS100 code
type Station struct {
	Code  string `json:"code" yaml:"code"`
	Name  string `json:"name" yaml:"name"`
	Coord Point  `json:"coord" yaml:"coord"`
}

// Label returns the list label, e.g. "KK (Köln Hbf)"
func (s Station) Label() string {
	return fmt.Sprintf("%s (%s)", s.Code, s.Name)
}

// Segment connects two stations on a route. From and To are copies of the
// station records, not references into the graph.
type Segment struct {
	From        Station `json:"from" yaml:"from"`
	To          Station `json:"to" yaml:"to"`
	RouteNumber uint32  `json:"routeNumber" yaml:"route_number"`
}

// Label returns the list label, e.g. "2600 (KK -> KD)"
func (s Segment) Label() string {
	return fmt.Sprintf("%d (%s -> %s)", s.RouteNumber, s.From.Code, s.To.Code)
}

// StationGraph is a validated infrastructure: every segment endpoint is a
// station of the same document.
type StationGraph struct {
	ID       uint64    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Stations []Station `json:"stations" yaml:"stations"`
	Segments []Segment `json:"segments" yaml:"segments"`
}

// Label returns the title label, e.g. "17: Netz 2024"
func (g *StationGraph) Label() string {
	return fmt.Sprintf("%d: %s", g.ID, g.Name)
}

// Coordinates returns the station coordinates in station order
func (g *StationGraph) Coordinates() []Point {
	coords := make([]Point, 0, len(g.Stations))
	for _, st := range g.Stations {
		coords = append(coords, st.Coord)
	}
	return coords
}

// ReferenceError reports a segment whose endpoint code has no station
type ReferenceError struct {
	Code    string // missing station code
	Segment string // FROM-ROUTE-TO
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("station '%s' for segment '%s' not found", e.Code, e.Segment)
}

// BuildGraph resolves the segments of a raw infrastructure document against
// its stations. Codes are matched case-sensitively. If two stations share a
// code the later one wins the lookup; both still appear in Stations.
//
// On a dangling reference no graph is returned.
func BuildGraph(doc *InfrastructureResponse) (*StationGraph, error) {
	raw := doc.Ordnungsrahmen

	stations := make([]Station, 0, len(raw.Betriebsstellen))
	byCode := make(map[string]Station, len(raw.Betriebsstellen))
	for _, bst := range raw.Betriebsstellen {
		st := Station{
			Code:  bst.DS100,
			Name:  bst.Langname,
			Coord: Point{X: bst.X, Y: bst.Y},
		}
		stations = append(stations, st)
		byCode[st.Code] = st
	}

	segments := make([]Segment, 0, len(raw.Streckensegmente))
	for _, seg := range raw.Streckensegmente {
		from, ok := byCode[seg.Von]
		if !ok {
			return nil, &ReferenceError{Code: seg.Von, Segment: seg.Label()}
		}
		to, ok := byCode[seg.Bis]
		if !ok {
			return nil, &ReferenceError{Code: seg.Bis, Segment: seg.Label()}
		}
		segments = append(segments, Segment{
			From:        from,
			To:          to,
			RouteNumber: seg.Streckennummer,
		})
	}

	return &StationGraph{
		ID:       doc.ID,
		Name:     doc.Anzeigename,
		Stations: stations,
		Segments: segments,
	}, nil
}

package output

import (
	"fmt"
	"io"

	"github.com/mobil-koeln/trex/internal/models"
)

// TableOptions configures the table output
type TableOptions struct {
	Colors *Colors
}

func (o TableOptions) colors() *Colors {
	if o.Colors == nil {
		return NewColors(ColorNever)
	}
	return o.Colors
}

// RenderInfrastructures renders the infrastructure index, one line per entry
func RenderInfrastructures(w io.Writer, summaries []models.InfrastructureSummary, opts TableOptions) {
	if len(summaries) == 0 {
		_, _ = fmt.Fprintln(w, "No infrastructures found.")
		return
	}

	c := opts.colors()
	for _, s := range summaries {
		validity := ""
		if s.ValidFrom != "" || s.ValidTo != "" {
			validity = c.Muted("%s..%s", s.ValidFrom, s.ValidTo)
		}
		year := "    "
		if s.TimetableYear != 0 {
			year = fmt.Sprintf("%4d", s.TimetableYear)
		}
		_, _ = fmt.Fprintf(w, "%s  %s  %s %s\n",
			c.ID("%6d", s.ID),
			c.Muted(year),
			c.Name("%s", s.Name),
			validity,
		)
	}
}

// RenderStations renders the operating points of a graph
func RenderStations(w io.Writer, graph *models.StationGraph, opts TableOptions) {
	if graph == nil || len(graph.Stations) == 0 {
		_, _ = fmt.Fprintln(w, "No stations found.")
		return
	}

	c := opts.colors()
	_, _ = fmt.Fprintf(w, "%s %s\n\n", c.Header("Betriebsstellen:"), graph.Name)

	width := 0
	for _, st := range graph.Stations {
		width = max(width, len(st.Code))
	}
	for _, st := range graph.Stations {
		_, _ = fmt.Fprintf(w, "  %s  %s  %s\n",
			c.Code("%-*s", width, st.Code),
			c.Coord("%11.5f %11.5f", st.Coord.X, st.Coord.Y),
			c.Name("%s", st.Name),
		)
	}
}

// RenderSegments renders the track segments of a graph
func RenderSegments(w io.Writer, graph *models.StationGraph, opts TableOptions) {
	if graph == nil || len(graph.Segments) == 0 {
		_, _ = fmt.Fprintln(w, "No segments found.")
		return
	}

	c := opts.colors()
	_, _ = fmt.Fprintf(w, "%s %s\n\n", c.Header("Streckensegmente:"), graph.Name)

	for _, seg := range graph.Segments {
		_, _ = fmt.Fprintf(w, "  %s  %s %s %s\n",
			c.Route("%5d", seg.RouteNumber),
			c.Code("%s", seg.From.Code),
			c.Muted("->"),
			c.Code("%s", seg.To.Code),
		)
	}
}

// RenderGraphSummary renders the headline counts and extent of a graph
func RenderGraphSummary(w io.Writer, graph *models.StationGraph, opts TableOptions) {
	c := opts.colors()
	_, _ = fmt.Fprintf(w, "%s %s\n", c.Header("Infrastructure:"), c.Name("%d: %s", graph.ID, graph.Name))
	_, _ = fmt.Fprintf(w, "%s %d\n", c.Muted("Stations:"), len(graph.Stations))
	_, _ = fmt.Fprintf(w, "%s %d\n", c.Muted("Segments:"), len(graph.Segments))

	if len(graph.Stations) == 0 {
		return
	}
	e := models.CalcExtent(graph.Coordinates())
	_, _ = fmt.Fprintf(w, "%s %s\n", c.Muted("Extent:"),
		c.Coord("x %.5f..%.5f  y %.5f..%.5f", e.MinX, e.MaxX, e.MinY, e.MaxY))
}

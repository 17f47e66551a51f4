package tui

import (
	"math"
	"strings"

	"github.com/mobil-koeln/trex/internal/explorer"
	"github.com/mobil-koeln/trex/internal/models"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellStation
	cellSelectedStation
	cellSegment
)

type mapCell struct {
	ch   rune
	kind cellKind
}

// projection maps world coordinates onto a width x height character grid.
// North is up.
type projection struct {
	extent models.Extent
	width  int
	height int
}

// newProjection fits e into the grid. A zero span is widened by one unit
// around its center so a lone station or a straight line still lands
// mid-canvas.
func newProjection(e models.Extent, width, height int) projection {
	if e.Width() == 0 {
		e.MinX -= 0.5
		e.MaxX += 0.5
	}
	if e.Height() == 0 {
		e.MinY -= 0.5
		e.MaxY += 0.5
	}
	return projection{extent: e, width: width, height: height}
}

// cell returns the grid column and row of p, clamped to the grid.
func (p projection) cell(pt models.Point) (col, row int) {
	col = int(math.Round((pt.X - p.extent.MinX) / p.extent.Width() * float64(p.width-1)))
	row = int(math.Round((p.extent.MaxY - pt.Y) / p.extent.Height() * float64(p.height-1)))
	return min(max(col, 0), p.width-1), min(max(row, 0), p.height-1)
}

// renderMapCanvas draws every station of v as a point, the highlighted
// station in red and the highlighted segment as a yellow line on top.
func renderMapCanvas(v *explorer.MapView, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	extent, ok := v.Extent()
	if !ok {
		return styleMuted.Render("Keine Betriebsstellen")
	}
	proj := newProjection(extent, width, height)

	grid := make([][]mapCell, height)
	for r := range grid {
		grid[r] = make([]mapCell, width)
		for c := range grid[r] {
			grid[r][c] = mapCell{ch: ' ', kind: cellEmpty}
		}
	}

	for _, pt := range v.Coordinates() {
		col, row := proj.cell(pt)
		grid[row][col] = mapCell{ch: '•', kind: cellStation}
	}

	if st, ok := v.SelectedStation(); ok {
		col, row := proj.cell(st.Coord)
		grid[row][col] = mapCell{ch: '●', kind: cellSelectedStation}
	}

	if seg, ok := v.SelectedSegment(); ok {
		x0, y0 := proj.cell(seg.From.Coord)
		x1, y1 := proj.cell(seg.To.Coord)
		bresenhamLine(grid, x0, y0, x1, y1)
	}

	var b strings.Builder
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			ch := string(grid[r][c].ch)
			switch grid[r][c].kind {
			case cellStation:
				b.WriteString(styleStation.Render(ch))
			case cellSelectedStation:
				b.WriteString(styleSelectedStation.Render(ch))
			case cellSegment:
				b.WriteString(styleSegment.Render(ch))
			default:
				b.WriteString(ch)
			}
		}
		if r < height-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// bresenhamLine draws a segment line between two grid points, endpoints
// included, over whatever is there.
func bresenhamLine(grid [][]mapCell, x0, y0, x1, y1 int) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		if y0 >= 0 && y0 < len(grid) && x0 >= 0 && x0 < len(grid[y0]) {
			grid[y0][x0] = mapCell{ch: '•', kind: cellSegment}
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

package models

import "math"

// Extent is the bounding box of a non-empty coordinate set
type Extent struct {
	MinX float64 `json:"minX" yaml:"min_x"`
	MaxX float64 `json:"maxX" yaml:"max_x"`
	MinY float64 `json:"minY" yaml:"min_y"`
	MaxY float64 `json:"maxY" yaml:"max_y"`
}

// CalcExtent computes the bounding box of coords.
// It panics on an empty slice or a NaN coordinate.
func CalcExtent(coords []Point) Extent {
	if len(coords) == 0 {
		panic("models: extent of empty coordinate set")
	}

	e := Extent{
		MinX: math.Inf(1),
		MaxX: math.Inf(-1),
		MinY: math.Inf(1),
		MaxY: math.Inf(-1),
	}
	for _, p := range coords {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			panic("models: NaN coordinate in extent")
		}
		e.MinX = math.Min(e.MinX, p.X)
		e.MaxX = math.Max(e.MaxX, p.X)
		e.MinY = math.Min(e.MinY, p.Y)
		e.MaxY = math.Max(e.MaxY, p.Y)
	}
	return e
}

// Width returns the horizontal span
func (e Extent) Width() float64 {
	return e.MaxX - e.MinX
}

// Height returns the vertical span
func (e Extent) Height() float64 {
	return e.MaxY - e.MinY
}

// Contains reports whether p lies inside the box, edges included
func (e Extent) Contains(p Point) bool {
	return p.X >= e.MinX && p.X <= e.MaxX && p.Y >= e.MinY && p.Y <= e.MaxY
}

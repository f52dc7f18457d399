// Package layout places catalog samples in the unit canvas. Each visualisation
// is a Policy: an angle rule plus a radius rule bounded by a density.Limit.
package layout

import (
	"encoding/json"

	"github.com/colorsful/colorsful/internal/boundary"
	"github.com/colorsful/colorsful/internal/catalog"
)

// Point is a sample placed on the canvas. X and Y are in percent of the
// canvas, with the wheel centred at (50, 50) and angle zero pointing up.
type Point struct {
	Sample   catalog.Sample
	AngleDeg float64
	Radius   float64
	X        float64
	Y        float64
}

// NewPoint places s at the given polar position.
func NewPoint(s catalog.Sample, angleDeg, radius float64) Point {
	x, y := boundary.Point(angleDeg, radius)
	return Point{Sample: s, AngleDeg: angleDeg, Radius: radius, X: x, Y: y}
}

type pointJSON struct {
	URL      string  `json:"url"`
	Title    string  `json:"title"`
	Hex      string  `json:"hex"`
	AngleDeg float64 `json:"angleDeg"`
	Radius   float64 `json:"radius"`
	WheelX   float64 `json:"wheelX"`
	WheelY   float64 `json:"wheelY"`
}

// MarshalJSON emits the flat point shape consumed by the front end.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(pointJSON{
		URL:      p.Sample.Record.URL,
		Title:    p.Sample.Record.Title,
		Hex:      p.Sample.Hex,
		AngleDeg: p.AngleDeg,
		Radius:   p.Radius,
		WheelX:   p.X,
		WheelY:   p.Y,
	})
}

// Policy maps samples to points. Place never returns nil and never mutates
// its input.
type Policy interface {
	Name() string
	Place(samples []catalog.Sample) []Point
}

// Build prepares records for ctx and places them with policy.
func Build(records []catalog.Record, ctx catalog.Context, policy Policy) []Point {
	return policy.Place(catalog.Prepare(records, ctx))
}

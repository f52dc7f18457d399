package nebula

import (
	"encoding/json"
	"math"

	"github.com/colorsful/colorsful/internal/colour"
)

// Cell is one splat of the nebula field, positioned in canvas percent.
type Cell struct {
	X     float64
	Y     float64
	Color colour.RGB
	Size  float64
}

type cellJSON struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
	Size  float64 `json:"size"`
}

// MarshalJSON encodes the colour as a hex string.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(cellJSON{X: c.X, Y: c.Y, Color: c.Color.Hex(), Size: c.Size})
}

// rgbSum accumulates weighted colours.
type rgbSum struct {
	r, g, b float64
	w       float64
}

func (s *rgbSum) add(c colour.RGB, weight float64) {
	s.r += float64(c.R) * weight
	s.g += float64(c.G) * weight
	s.b += float64(c.B) * weight
	s.w += weight
}

func (s *rgbSum) addSum(o rgbSum, weight float64) {
	if o.w == 0 {
		return
	}
	s.add(o.mean(), weight)
}

func (s rgbSum) empty() bool {
	return s.w == 0
}

func (s rgbSum) mean() colour.RGB {
	if s.w == 0 {
		return colour.RGB{}
	}
	return colour.RGB{R: channel(s.r / s.w), G: channel(s.g / s.w), B: channel(s.b / s.w)}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

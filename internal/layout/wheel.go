package layout

import (
	"github.com/colorsful/colorsful/internal/catalog"
	"github.com/colorsful/colorsful/internal/colour"
	"github.com/colorsful/colorsful/internal/density"
)

// WheelOptions configure the hue wheel.
type WheelOptions struct {
	// Warp equalises the wheel when set.
	Warp *density.WarpTable
}

// Wheel places each sample at its hue with radius Vibrancy/2, so the most
// vibrant colours sit on the rim.
type Wheel struct {
	opts WheelOptions
}

// NewWheel returns a wheel policy.
func NewWheel(opts WheelOptions) *Wheel {
	return &Wheel{opts: opts}
}

// NewEqualizedWheel returns a wheel warped by the hue density of samples.
func NewEqualizedWheel(samples []catalog.Sample, bins int) *Wheel {
	table := density.NewWarpTable(density.NewHistogram(catalog.Hues(samples), bins))
	return NewWheel(WheelOptions{Warp: &table})
}

// Name implements Policy.
func (w *Wheel) Name() string {
	if w.opts.Warp != nil {
		return "wheel-equalized"
	}
	return "wheel"
}

// Place implements Policy.
func (w *Wheel) Place(samples []catalog.Sample) []Point {
	points := make([]Point, 0, len(samples))
	for _, s := range samples {
		angle := s.BaseAngle()
		if w.opts.Warp != nil {
			angle = w.opts.Warp.Warp(angle)
		}
		points = append(points, NewPoint(s, colour.NormalizeDegrees(angle), colour.Vibrancy(s.HSL)/2))
	}
	return points
}

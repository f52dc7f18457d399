package nebula

import (
	"fmt"
)

// Options configure the nebula field.
type Options struct {
	// Coarse polar grid.
	Sectors  int
	Rings    int
	FillSpan float64 // degrees searched either side of an empty cell

	// Neighbour smoothing weights, renormalised per cell.
	SelfWeight      float64
	NeighbourWeight float64

	// Colour transform applied after smoothing.
	SaturationBoost  float64
	LightnessFloor   float64
	LightnessCeiling float64

	// Cell sizing. Size grows from MinSize to MaxSize as local density
	// reaches DensityCap times the mean, and fades to zero past EdgeFade of
	// the limit radius.
	MinSize    float64
	MaxSize    float64
	DensityCap float64
	EdgeFade   float64
	Jitter     float64 // positional dither in canvas percent

	// Area of the region under the limit, in square percent units. Zero
	// means integrate the limit numerically.
	Area float64

	// Fine inverse-distance pass.
	FineResolution int
	IDWNeighbours  int
	IDWEpsilon     float64
}

// DefaultOptions returns the standard nebula settings.
func DefaultOptions() Options {
	return Options{
		Sectors:          72,
		Rings:            12,
		FillSpan:         45,
		SelfWeight:       0.6,
		NeighbourWeight:  0.1,
		SaturationBoost:  1.8,
		LightnessFloor:   18,
		LightnessCeiling: 88,
		MinSize:          2,
		MaxSize:          7,
		DensityCap:       3,
		EdgeFade:         0.85,
		Jitter:           0.6,
		FineResolution:   96,
		IDWNeighbours:    20,
		IDWEpsilon:       0.5,
	}
}

// Validate checks that the options describe a usable field.
func (o Options) Validate() error {
	if o.Sectors < 1 || o.Rings < 1 {
		return fmt.Errorf("grid must have at least one sector and ring, got %dx%d", o.Sectors, o.Rings)
	}
	if o.FillSpan < 0 || o.FillSpan > 180 {
		return fmt.Errorf("fill span must be in [0, 180], got %v", o.FillSpan)
	}
	if o.SelfWeight < 0 || o.NeighbourWeight < 0 || o.SelfWeight+o.NeighbourWeight == 0 {
		return fmt.Errorf("smoothing weights must be non-negative and not both zero")
	}
	if o.SaturationBoost < 0 {
		return fmt.Errorf("saturation boost must be non-negative, got %v", o.SaturationBoost)
	}
	if o.LightnessFloor < 0 || o.LightnessCeiling > 100 || o.LightnessFloor > o.LightnessCeiling {
		return fmt.Errorf("invalid lightness range [%v, %v]", o.LightnessFloor, o.LightnessCeiling)
	}
	if o.MinSize < 0 || o.MaxSize < o.MinSize {
		return fmt.Errorf("invalid size range [%v, %v]", o.MinSize, o.MaxSize)
	}
	if o.DensityCap <= 0 {
		return fmt.Errorf("density cap must be positive, got %v", o.DensityCap)
	}
	if o.EdgeFade <= 0 || o.EdgeFade > 1 {
		return fmt.Errorf("edge fade must be in (0, 1], got %v", o.EdgeFade)
	}
	if o.Jitter < 0 || o.Area < 0 {
		return fmt.Errorf("jitter and area must be non-negative")
	}
	if o.FineResolution < 0 {
		return fmt.Errorf("fine resolution must be non-negative, got %d", o.FineResolution)
	}
	if o.FineResolution > 0 && (o.IDWNeighbours < 1 || o.IDWEpsilon <= 0) {
		return fmt.Errorf("fine pass needs at least one neighbour and a positive epsilon")
	}
	return nil
}

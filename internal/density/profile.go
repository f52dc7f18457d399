package density

import (
	"fmt"
	"math"

	"github.com/colorsful/colorsful/internal/colour"
)

// Limit bounds the radius available at an angle.
type Limit interface {
	MaxRadius(angleDeg float64) float64
}

// LimitFunc adapts a function to Limit.
type LimitFunc func(angleDeg float64) float64

// MaxRadius calls f.
func (f LimitFunc) MaxRadius(angleDeg float64) float64 {
	return f(angleDeg)
}

// Constant is a Limit with the same radius at every angle.
type Constant float64

// MaxRadius returns c.
func (c Constant) MaxRadius(float64) float64 {
	return float64(c)
}

// MinLimit returns the pointwise minimum of a and b. A nil argument is ignored.
func MinLimit(a, b Limit) Limit {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return LimitFunc(func(angle float64) float64 {
		return math.Min(a.MaxRadius(angle), b.MaxRadius(angle))
	})
}

// ProfileOptions shape a RadiusProfile.
type ProfileOptions struct {
	Smooth      int     // moving-average half window, in bins
	BaseMin     float64 // radius given to every angle
	ScaleFactor float64 // extra radius per unit of relative density
	RangeCap    float64 // upper bound on the extra radius
}

// DefaultProfileOptions returns the options used by the gradient layout.
func DefaultProfileOptions() ProfileOptions {
	return ProfileOptions{
		Smooth:      2,
		BaseMin:     22,
		ScaleFactor: 14,
		RangeCap:    26,
	}
}

// Validate checks the options.
func (o ProfileOptions) Validate() error {
	if o.Smooth < 0 {
		return fmt.Errorf("smooth window must be non-negative, got %d", o.Smooth)
	}
	if o.BaseMin < 0 || o.ScaleFactor < 0 || o.RangeCap < 0 {
		return fmt.Errorf("radius profile values must be non-negative")
	}
	if o.BaseMin+o.RangeCap > 50 {
		return fmt.Errorf("base min plus range cap must not exceed 50, got %.1f", o.BaseMin+o.RangeCap)
	}
	return nil
}

// RadiusProfile grows the available radius where the catalog is dense.
type RadiusProfile struct {
	Radii []float64
	width float64
}

// NewRadiusProfile derives per-bin radii from the raw counts of h. The
// smoothed counts are taken relative to their mean, so an even catalog gives
// every bin BaseMin + min(ScaleFactor, RangeCap) and an empty bin far from
// any sample gets BaseMin. An empty catalog is treated as even.
func NewRadiusProfile(h Histogram, opts ProfileOptions) RadiusProfile {
	smoothed := Smooth(h.Counts, opts.Smooth)
	n := len(smoothed)

	var mean float64
	for _, v := range smoothed {
		mean += v
	}
	if n > 0 {
		mean /= float64(n)
	}

	radii := make([]float64, n)
	for i, v := range smoothed {
		relative := 1.0
		if mean > 0 {
			relative = v / mean
		}
		radii[i] = opts.BaseMin + math.Min(relative*opts.ScaleFactor, opts.RangeCap)
	}
	return RadiusProfile{Radii: radii, width: h.BinWidth()}
}

// MaxRadius interpolates between bin centres, wrapping around 360.
func (p RadiusProfile) MaxRadius(angleDeg float64) float64 {
	n := len(p.Radii)
	if n == 0 {
		return 0
	}
	pos := colour.NormalizeDegrees(angleDeg)/p.width - 0.5
	lo := int(math.Floor(pos))
	frac := pos - float64(lo)
	a := p.Radii[(lo%n+n)%n]
	b := p.Radii[((lo+1)%n+n)%n]
	return a + frac*(b-a)
}

package layout

import (
	"fmt"
	"math"

	"github.com/colorsful/colorsful/internal/boundary"
	"github.com/colorsful/colorsful/internal/catalog"
	"github.com/colorsful/colorsful/internal/colour"
	"github.com/colorsful/colorsful/internal/density"
)

const (
	// jitterStep spreads samples sharing a hue over ten fixed offsets.
	jitterStep  = 0.4
	jitterSlots = 10
)

// RankOptions configure lightness-rank placement.
type RankOptions struct {
	Window   float64 // neighbourhood half width in degrees
	Exponent float64 // applied to the normalised rank
}

// DefaultRankOptions returns the standard neighbourhood settings.
func DefaultRankOptions() RankOptions {
	return RankOptions{Window: 6, Exponent: 0.6}
}

// Validate checks the options.
func (o RankOptions) Validate() error {
	if o.Window <= 0 || o.Window > 180 {
		return fmt.Errorf("rank window must be in (0, 180], got %v", o.Window)
	}
	if o.Exponent <= 0 {
		return fmt.Errorf("rank exponent must be positive, got %v", o.Exponent)
	}
	return nil
}

// LightnessRank places each sample at its jittered base angle, at a radius
// given by its lightness rank among hue neighbours: the lightest neighbour
// sits at the centre and the darkest at the limit.
type LightnessRank struct {
	name  string
	limit density.Limit
	opts  RankOptions
}

// NewLightnessRank returns a lightness-rank policy bounded by limit. Zero
// options use DefaultRankOptions.
func NewLightnessRank(limit density.Limit, opts RankOptions) *LightnessRank {
	if opts == (RankOptions{}) {
		opts = DefaultRankOptions()
	}
	return &LightnessRank{name: "lightness-rank", limit: limit, opts: opts}
}

// NewLogo returns a lightness-rank policy bounded by the silhouette table.
// A nil table uses boundary.Default.
func NewLogo(table *boundary.Table, opts RankOptions) *LightnessRank {
	if table == nil {
		table = boundary.Default()
	}
	p := NewLightnessRank(table, opts)
	p.name = "logo"
	return p
}

// GradientOptions configure the density gradient layout.
type GradientOptions struct {
	Bins    int
	Rank    RankOptions
	Profile density.ProfileOptions
}

// DefaultGradientOptions returns the standard gradient settings.
func DefaultGradientOptions() GradientOptions {
	return GradientOptions{
		Bins:    density.DefaultBins,
		Rank:    DefaultRankOptions(),
		Profile: density.DefaultProfileOptions(),
	}
}

// NewGradient returns a lightness-rank policy whose limit grows with the hue
// density of samples, clamped by the silhouette table. A nil table uses
// boundary.Default.
func NewGradient(samples []catalog.Sample, table *boundary.Table, opts GradientOptions) *LightnessRank {
	if table == nil {
		table = boundary.Default()
	}
	profile := density.NewRadiusProfile(density.NewHistogram(catalog.Hues(samples), opts.Bins), opts.Profile)
	p := NewLightnessRank(density.MinLimit(profile, table), opts.Rank)
	p.name = "gradient"
	return p
}

// Name implements Policy.
func (p *LightnessRank) Name() string {
	return p.name
}

// Place implements Policy.
func (p *LightnessRank) Place(samples []catalog.Sample) []Point {
	points := make([]Point, 0, len(samples))
	if len(samples) == 0 {
		return points
	}

	base := make([]float64, len(samples))
	buckets := make([][]int, 360)
	for i, s := range samples {
		base[i] = s.BaseAngle()
		deg := int(base[i]) % 360
		buckets[deg] = append(buckets[deg], i)
	}

	// Scan whole-degree buckets around each sample; a window wide enough to
	// wrap onto itself scans every bucket exactly once.
	reach := int(math.Ceil(p.opts.Window)) + 1
	lo, hi := -reach, reach
	if 2*reach+1 >= 360 {
		lo, hi = 0, 359
	}

	for i, s := range samples {
		var size, brighter int
		deg := int(base[i]) % 360
		for d := lo; d <= hi; d++ {
			for _, j := range buckets[((deg+d)%360+360)%360] {
				if colour.HueDistance(base[i], base[j]) > p.opts.Window {
					continue
				}
				size++
				if ranksBefore(samples[j], s) {
					brighter++
				}
			}
		}

		rank := 0.0
		if size > 1 {
			rank = float64(brighter) / float64(size-1)
		}

		angle := colour.NormalizeDegrees(base[i] + (float64(s.Index%jitterSlots)-4.5)*jitterStep)
		radius := 0.0
		if rank > 0 {
			radius = math.Pow(rank, p.opts.Exponent) * p.limit.MaxRadius(angle)
		}
		points = append(points, NewPoint(s, angle, radius))
	}
	return points
}

// ranksBefore orders by lightness descending, then by input index.
func ranksBefore(a, b catalog.Sample) bool {
	if a.HSL.L != b.HSL.L {
		return a.HSL.L > b.HSL.L
	}
	return a.Index < b.Index
}

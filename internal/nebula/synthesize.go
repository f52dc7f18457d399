// Package nebula synthesises a smoothed colour field from a point layout: a
// coarse polar grid of colour cells, then a fine inverse-distance raster.
package nebula

import (
	"math"
	"math/rand"

	"github.com/colorsful/colorsful/internal/boundary"
	"github.com/colorsful/colorsful/internal/colour"
	"github.com/colorsful/colorsful/internal/density"
	"github.com/colorsful/colorsful/internal/layout"
)

// polarGrid is a sectors x rings grid whose rings are fractions of the limit
// radius at each angle.
type polarGrid struct {
	sectors int
	rings   int
	width   float64
}

func newPolarGrid(opts Options) polarGrid {
	return polarGrid{sectors: opts.Sectors, rings: opts.Rings, width: 360 / float64(opts.Sectors)}
}

func (g polarGrid) size() int {
	return g.sectors * g.rings
}

func (g polarGrid) index(sector, ring int) int {
	sector = ((sector % g.sectors) + g.sectors) % g.sectors
	return ring*g.sectors + sector
}

func (g polarGrid) locate(p layout.Point, limit density.Limit) int {
	sector := int(colour.NormalizeDegrees(p.AngleDeg)/g.width) % g.sectors

	ring := 0
	if lim := limit.MaxRadius(p.AngleDeg); lim > 0 {
		ring = int(math.Floor(p.Radius / lim * float64(g.rings)))
	}
	ring = max(0, min(ring, g.rings-1))
	return g.index(sector, ring)
}

// Synthesize builds the coarse colour field for points. Points are binned on a
// polar grid normalised to limit, empty cells borrow colour from the nearest
// filled cells on their ring, and the result is smoothed and given the
// nebula's saturated look. Cells that stay empty are not emitted. rng drives
// positional dither and may be nil to disable it.
func Synthesize(points []layout.Point, limit density.Limit, opts Options, rng *rand.Rand) []Cell {
	cells := make([]Cell, 0)
	if len(points) == 0 || limit == nil || opts.Sectors < 1 || opts.Rings < 1 {
		return cells
	}

	g := newPolarGrid(opts)
	acc := make([]rgbSum, g.size())
	counts := make([]int, g.size())
	for _, p := range points {
		i := g.locate(p, limit)
		acc[i].add(p.Sample.RGB, 1)
		counts[i]++
	}

	field := smoothGrid(g, fillGrid(g, acc, opts.FillSpan), opts)

	area := opts.Area
	if area <= 0 {
		area = limitArea(limit)
	}
	meanDensity := 0.0
	if area > 0 {
		meanDensity = float64(len(points)) / area
	}
	sectorRad := g.width * math.Pi / 180

	for ring := 0; ring < g.rings; ring++ {
		for sector := 0; sector < g.sectors; sector++ {
			i := g.index(sector, ring)
			if field[i].empty() {
				continue
			}

			hsl := colour.RGBToHSL(field[i].mean())
			hsl = colour.AdjustSaturation(hsl, opts.SaturationBoost)
			hsl = colour.ClampLightness(hsl, opts.LightnessFloor, opts.LightnessCeiling)

			angle := (float64(sector) + 0.5) * g.width
			frac := (float64(ring) + 0.5) / float64(g.rings)
			lim := limit.MaxRadius(angle)

			relative := 0.0
			inner, outer := float64(ring)/float64(g.rings), float64(ring+1)/float64(g.rings)
			cellArea := 0.5 * sectorRad * lim * lim * (outer*outer - inner*inner)
			if cellArea > 0 && meanDensity > 0 {
				relative = float64(counts[i]) / cellArea / meanDensity
			}
			size := opts.MinSize + (opts.MaxSize-opts.MinSize)*math.Min(relative/opts.DensityCap, 1)
			size *= edgeScale(frac, opts.EdgeFade)

			x, y := boundary.Point(angle, frac*lim)
			if rng != nil && opts.Jitter > 0 {
				x += (rng.Float64() - 0.5) * opts.Jitter
				y += (rng.Float64() - 0.5) * opts.Jitter
			}

			cells = append(cells, Cell{X: x, Y: y, Color: hsl.ToRGB(), Size: math.Max(0, size)})
		}
	}
	return cells
}

// fillGrid gives each empty cell the inverse-offset blend of the nearest
// filled cell on either side of it within span degrees. Only originally filled
// cells are consulted, so fills never cascade.
func fillGrid(g polarGrid, acc []rgbSum, span float64) []rgbSum {
	out := make([]rgbSum, len(acc))
	copy(out, acc)

	reach := min(int(span/g.width), g.sectors/2)
	for ring := 0; ring < g.rings; ring++ {
		for sector := 0; sector < g.sectors; sector++ {
			i := g.index(sector, ring)
			if !acc[i].empty() {
				continue
			}
			for _, dir := range []int{1, -1} {
				for k := 1; k <= reach; k++ {
					if n := acc[g.index(sector+dir*k, ring)]; !n.empty() {
						out[i].addSum(n, 1/float64(k))
						break
					}
				}
			}
		}
	}
	return out
}

// smoothGrid blends each coloured cell with its coloured angular and radial
// neighbours.
func smoothGrid(g polarGrid, field []rgbSum, opts Options) []rgbSum {
	out := make([]rgbSum, len(field))
	for ring := 0; ring < g.rings; ring++ {
		for sector := 0; sector < g.sectors; sector++ {
			i := g.index(sector, ring)
			if field[i].empty() {
				continue
			}
			out[i].addSum(field[i], opts.SelfWeight)
			out[i].addSum(field[g.index(sector-1, ring)], opts.NeighbourWeight)
			out[i].addSum(field[g.index(sector+1, ring)], opts.NeighbourWeight)
			if ring > 0 {
				out[i].addSum(field[g.index(sector, ring-1)], opts.NeighbourWeight)
			}
			if ring < g.rings-1 {
				out[i].addSum(field[g.index(sector, ring+1)], opts.NeighbourWeight)
			}
		}
	}
	return out
}

func edgeScale(frac, fade float64) float64 {
	if frac <= fade || fade >= 1 {
		return 1
	}
	return math.Max(0, (1-frac)/(1-fade))
}

// limitArea integrates the region under limit one degree at a time.
func limitArea(limit density.Limit) float64 {
	var area float64
	step := math.Pi / 180
	for d := 0; d < 360; d++ {
		r := limit.MaxRadius(float64(d) + 0.5)
		area += 0.5 * r * r * step
	}
	return area
}

package nebula

import (
	"github.com/colorsful/colorsful/internal/boundary"
	"github.com/colorsful/colorsful/internal/density"
)

type neighbour struct {
	index int
	d2    float64
}

// Refine resamples seeds onto a FineResolution x FineResolution lattice in
// scan-line order. Each lattice point inside limit takes the inverse squared
// distance blend of its IDWNeighbours nearest seeds.
func Refine(seeds []Cell, limit density.Limit, opts Options) []Cell {
	out := make([]Cell, 0)
	res := opts.FineResolution
	if len(seeds) == 0 || limit == nil || res <= 0 {
		return out
	}

	k := min(max(opts.IDWNeighbours, 1), len(seeds))
	pitch := 100 / float64(res)
	nearest := make([]neighbour, 0, k)

	for row := 0; row < res; row++ {
		y := (float64(row) + 0.5) * pitch
		for col := 0; col < res; col++ {
			x := (float64(col) + 0.5) * pitch
			angle, r := boundary.Polar(x, y)
			if r > limit.MaxRadius(angle) {
				continue
			}

			nearest = nearestSeeds(seeds, x, y, k, nearest[:0])
			var sum rgbSum
			for _, n := range nearest {
				sum.add(seeds[n.index].Color, 1/(n.d2+opts.IDWEpsilon))
			}
			out = append(out, Cell{X: x, Y: y, Color: sum.mean(), Size: pitch})
		}
	}
	return out
}

// nearestSeeds keeps the k closest seeds to (x, y) in dst, ordered by
// distance with ties broken by seed order.
func nearestSeeds(seeds []Cell, x, y float64, k int, dst []neighbour) []neighbour {
	for i, s := range seeds {
		dx, dy := s.X-x, s.Y-y
		d2 := dx*dx + dy*dy
		if len(dst) == k && d2 >= dst[k-1].d2 {
			continue
		}

		pos := len(dst)
		for pos > 0 && dst[pos-1].d2 > d2 {
			pos--
		}
		if len(dst) < k {
			dst = append(dst, neighbour{})
		}
		copy(dst[pos+1:], dst[pos:len(dst)-1])
		dst[pos] = neighbour{index: i, d2: d2}
	}
	return dst
}
